package domain

import "time"

// Cart holds one shopper context's intended purchases.
// ClientID identifies the browser context, not a logged-in user;
// guests keep a cart too.
type Cart struct {
	ClientID  string     `json:"client_id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ProductID int64     `json:"product_id"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"unit_price"`
	ImageURL  string    `json:"image_url"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// Total is recomputed from the items on every call so it can never
// drift from the item list.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

// ItemCount sums quantities across all items.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
