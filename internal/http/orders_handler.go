package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	ordersdomain "github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/orders/domain"
)

// OrderReader lists recorded orders for account and admin views.
type OrderReader interface {
	ListByEmail(email string) []ordersdomain.Order
	ListAll() []ordersdomain.Order
	Stats() ordersdomain.Stats
}

type OrdersHandler struct {
	processor CheckoutProcessor
	orders    OrderReader
	sessions  SessionReader
	timeout   time.Duration
}

func NewOrdersHandler(processor CheckoutProcessor, orders OrderReader, sessions SessionReader, timeout time.Duration) *OrdersHandler {
	return &OrdersHandler{
		processor: processor,
		orders:    orders,
		sessions:  sessions,
		timeout:   timeout,
	}
}

// OrderStatus polls the simulated gateway for any order id.
func (h *OrdersHandler) OrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	orderID := chi.URLParam(r, "order_id")
	if orderID == "" {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order_id is required")
		return
	}

	status, err := h.processor.OrderStatus(ctx, orderID)
	if err != nil {
		respondError(w, http.StatusGatewayTimeout, "timeout", "status poll was interrupted")
		return
	}

	respondJSON(w, http.StatusOK, status)
}

// ListOrders returns the logged-in customer's orders.
func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	clientID := clientIDFromContext(r.Context())
	user, err := h.sessions.Current(ctx, clientID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to resolve session")
		return
	}
	if user == nil {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "login required")
		return
	}

	respondJSON(w, http.StatusOK, h.orders.ListByEmail(user.Email))
}
