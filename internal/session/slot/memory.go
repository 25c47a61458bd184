package slot

import (
	"context"
	"sync"

	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/session/domain"
)

// MemorySlot is the non-durable fallback used in tests and when the
// process runs without redis.
type MemorySlot struct {
	mu       sync.RWMutex
	sessions map[string]domain.User
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{sessions: make(map[string]domain.User)}
}

func (m *MemorySlot) Load(_ context.Context, clientID string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, exists := m.sessions[clientID]
	if !exists {
		return nil, ErrNoSession
	}
	return &user, nil
}

func (m *MemorySlot) Save(_ context.Context, clientID string, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[clientID] = *user
	return nil
}

func (m *MemorySlot) Clear(_ context.Context, clientID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, clientID)
	return nil
}
