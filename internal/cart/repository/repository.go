package repository

import (
	"context"
	"errors"

	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/cart/domain"
)

var (
	ErrCartNotFound = errors.New("cart not found")
	ErrItemNotFound = errors.New("item not found in cart")
)

// CartRepository defines the interface for cart data operations.
// Consumers define this interface, not the storage implementation.
type CartRepository interface {
	GetCart(ctx context.Context, clientID string) (*domain.Cart, error)
	AddItem(ctx context.Context, clientID string, item domain.CartItem) error
	UpdateItemQuantity(ctx context.Context, clientID string, productID int64, quantity int) error
	RemoveItem(ctx context.Context, clientID string, productID int64) error
	DeleteCart(ctx context.Context, clientID string) error
}
