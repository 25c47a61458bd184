package domain

import (
	"time"

	checkout "github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/checkout/domain"
)

// Order is the record kept for a successful checkout. The prototype holds
// orders in memory only; there is no order database.
type Order struct {
	ID            string                  `json:"id"`
	CustomerName  string                  `json:"customer_name"`
	CustomerEmail string                  `json:"customer_email"`
	Shipping      checkout.ShippingAddress `json:"shipping"`
	PaymentMethod checkout.PaymentMethod  `json:"payment_method"`
	Items         []checkout.CheckoutItem `json:"items"`
	Total         float64                 `json:"total"`
	CreatedAt     time.Time               `json:"created_at"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalOrders int     `json:"total_orders"`
	Revenue     float64 `json:"revenue"`
}
