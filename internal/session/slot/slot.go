// Package slot persists the active session for a client context. Each
// context owns exactly one durable key; an absent key means unauthenticated.
package slot

import (
	"context"
	"errors"

	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/session/domain"
)

var ErrNoSession = errors.New("no session in slot")

type SessionSlot interface {
	Load(ctx context.Context, clientID string) (*domain.User, error)
	Save(ctx context.Context, clientID string, user *domain.User) error
	Clear(ctx context.Context, clientID string) error
}
