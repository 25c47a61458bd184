package domain

import "time"

type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentPix        PaymentMethod = "pix"
	PaymentBoleto     PaymentMethod = "boleto"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCreditCard, PaymentPix, PaymentBoleto:
		return true
	}
	return false
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ShippingAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

// CheckoutItem is one line of the cart snapshot captured at checkout time.
type CheckoutItem struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

type CheckoutRequest struct {
	Customer      Customer        `json:"customer"`
	Shipping      ShippingAddress `json:"shipping"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Items         []CheckoutItem  `json:"items"`
	Total         float64         `json:"total"`
}

// CheckoutResponse carries exactly one payment artifact on success,
// matching the requested method, or an error description on failure.
type CheckoutResponse struct {
	Success    bool   `json:"success"`
	OrderID    string `json:"order_id,omitempty"`
	PaymentURL string `json:"payment_url,omitempty"`
	PixCode    string `json:"pix_code,omitempty"`
	BoletoURL  string `json:"boleto_url,omitempty"`
	Error      string `json:"error,omitempty"`
}

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
)

// Shipped-or-later orders carry a tracking code.
func (s OrderStatus) HasTracking() bool {
	return s == StatusShipped || s == StatusDelivered
}

type OrderStatusResponse struct {
	OrderID      string      `json:"order_id"`
	Status       OrderStatus `json:"status"`
	UpdatedAt    time.Time   `json:"updated_at"`
	TrackingCode string      `json:"tracking_code,omitempty"`
}
