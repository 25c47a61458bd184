package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/tracking"
)

// Tracker resolves shipment tracking codes.
type Tracker interface {
	Track(ctx context.Context, code string) (*tracking.Info, error)
}

type TrackingHandler struct {
	tracker Tracker
	timeout time.Duration
}

func NewTrackingHandler(tracker Tracker, timeout time.Duration) *TrackingHandler {
	return &TrackingHandler{
		tracker: tracker,
		timeout: timeout,
	}
}

func (h *TrackingHandler) Track(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	code := chi.URLParam(r, "code")
	if code == "" {
		respondError(w, http.StatusBadRequest, "invalid_code", "tracking code is required")
		return
	}

	info, err := h.tracker.Track(ctx, code)
	if err != nil {
		if errors.Is(err, tracking.ErrTrackingNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "código de rastreamento não encontrado")
			return
		}
		respondError(w, http.StatusGatewayTimeout, "timeout", "tracking lookup was interrupted")
		return
	}

	respondJSON(w, http.StatusOK, info)
}
