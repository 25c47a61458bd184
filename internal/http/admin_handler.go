package http

import (
	"net/http"
	"time"
)

type AdminHandler struct {
	orders  OrderReader
	timeout time.Duration
}

func NewAdminHandler(orders OrderReader, timeout time.Duration) *AdminHandler {
	return &AdminHandler{
		orders:  orders,
		timeout: timeout,
	}
}

// ListAllOrders feeds the admin dashboard table. Route is admin-gated.
func (h *AdminHandler) ListAllOrders(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.orders.ListAll())
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.orders.Stats())
}
