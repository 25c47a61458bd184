package domain

import "time"

type Product struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"original_price,omitempty"`
	Category      string    `json:"category"`
	ImageURL      string    `json:"image_url"`
	CreatedAt     time.Time `json:"created_at"`
}

// OnSale reports whether the product has a struck-through original price.
func (p *Product) OnSale() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price
}
