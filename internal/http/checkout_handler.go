package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	checkoutdomain "github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/checkout/domain"
	ordersdomain "github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/orders/domain"
)

// CheckoutProcessor is the simulated payment gateway.
type CheckoutProcessor interface {
	Process(ctx context.Context, req *checkoutdomain.CheckoutRequest) (*checkoutdomain.CheckoutResponse, error)
	OrderStatus(ctx context.Context, orderID string) (*checkoutdomain.OrderStatusResponse, error)
}

// OrderRecorder is the slice of the order store checkout writes to.
type OrderRecorder interface {
	Record(order ordersdomain.Order)
}

type CheckoutHandler struct {
	processor CheckoutProcessor
	cart      CartService
	orders    OrderRecorder
	timeout   time.Duration
}

func NewCheckoutHandler(processor CheckoutProcessor, cart CartService, orders OrderRecorder, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		processor: processor,
		cart:      cart,
		orders:    orders,
		timeout:   timeout,
	}
}

type CheckoutRequestDTO struct {
	Customer      checkoutdomain.Customer        `json:"customer"`
	Shipping      checkoutdomain.ShippingAddress `json:"shipping"`
	PaymentMethod checkoutdomain.PaymentMethod   `json:"payment_method"`
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	clientID := clientIDFromContext(r.Context())

	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Customer.Name == "" || req.Customer.Email == "" {
		respondError(w, http.StatusBadRequest, "missing_fields", "customer name and email are required")
		return
	}
	if !req.PaymentMethod.Valid() {
		respondError(w, http.StatusBadRequest, "invalid_payment_method", "payment_method must be credit_card, pix or boleto")
		return
	}

	cart, err := h.cart.GetCart(ctx, clientID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to get cart")
		return
	}
	if len(cart.Items) == 0 {
		respondError(w, http.StatusBadRequest, "empty_cart", "cannot check out an empty cart")
		return
	}

	// Snapshot the cart; the total is computed server-side, never trusted
	// from the client.
	items := make([]checkoutdomain.CheckoutItem, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = checkoutdomain.CheckoutItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
	}
	checkoutReq := &checkoutdomain.CheckoutRequest{
		Customer:      req.Customer,
		Shipping:      req.Shipping,
		PaymentMethod: req.PaymentMethod,
		Items:         items,
		Total:         cart.Total(),
	}

	resp, err := h.processor.Process(ctx, checkoutReq)
	if err != nil {
		respondError(w, http.StatusGatewayTimeout, "timeout", "checkout processing was interrupted")
		return
	}

	if resp.Success {
		h.orders.Record(ordersdomain.Order{
			ID:            resp.OrderID,
			CustomerName:  req.Customer.Name,
			CustomerEmail: req.Customer.Email,
			Shipping:      req.Shipping,
			PaymentMethod: req.PaymentMethod,
			Items:         items,
			Total:         checkoutReq.Total,
			CreatedAt:     time.Now(),
		})

		// The cart is cleared only after the simulator reports success;
		// a failed checkout leaves it untouched.
		if err := h.cart.ClearCart(ctx, clientID); err != nil {
			log.Printf("failed to clear cart after checkout %s: %v", resp.OrderID, err)
		}
	}

	// The outcome is result-shaped either way; the UI renders the message
	respondJSON(w, http.StatusOK, resp)
}
