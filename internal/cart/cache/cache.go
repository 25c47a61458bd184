package cache

import (
	"context"
	"errors"

	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/cart/domain"
)

type CartCache interface {
	Get(ctx context.Context, clientID string) (*domain.Cart, error)
	Set(ctx context.Context, clientID string, cart *domain.Cart) error
	Delete(ctx context.Context, clientID string) error
}

var ErrCacheMiss = errors.New("cache miss")
