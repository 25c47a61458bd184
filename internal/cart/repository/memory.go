package repository

import (
	"context"
	"sync"
	"time"

	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/cart/domain"
)

// MemoryRepository keeps carts in process memory, keyed by client context.
// The prototype has no durable cart storage; a database-backed implementation
// can replace this behind CartRepository without touching the service layer.
type MemoryRepository struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart // clientID -> cart
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		carts: make(map[string]*domain.Cart),
	}
}

func (m *MemoryRepository) GetCart(_ context.Context, clientID string) (*domain.Cart, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cart, exists := m.carts[clientID]
	if !exists {
		return nil, ErrCartNotFound
	}
	return copyCart(cart), nil
}

// AddItem merges by product id: an existing entry has its quantity
// incremented, a new entry is appended at the end.
func (m *MemoryRepository) AddItem(_ context.Context, clientID string, item domain.CartItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	item.AddedAt = now

	cart, exists := m.carts[clientID]
	if !exists {
		m.carts[clientID] = &domain.Cart{
			ClientID:  clientID,
			Items:     []domain.CartItem{item},
			CreatedAt: now,
			UpdatedAt: now,
		}
		return nil
	}

	for i := range cart.Items {
		if cart.Items[i].ProductID == item.ProductID {
			cart.Items[i].Quantity += item.Quantity
			cart.UpdatedAt = now
			return nil
		}
	}

	cart.Items = append(cart.Items, item)
	cart.UpdatedAt = now
	return nil
}

func (m *MemoryRepository) UpdateItemQuantity(_ context.Context, clientID string, productID int64, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cart, exists := m.carts[clientID]
	if !exists {
		return ErrCartNotFound
	}

	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			cart.UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrItemNotFound
}

func (m *MemoryRepository) RemoveItem(_ context.Context, clientID string, productID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cart, exists := m.carts[clientID]
	if !exists {
		return ErrCartNotFound
	}

	for i, item := range cart.Items {
		if item.ProductID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			cart.UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrItemNotFound
}

func (m *MemoryRepository) DeleteCart(_ context.Context, clientID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.carts[clientID]; !exists {
		return ErrCartNotFound
	}
	delete(m.carts, clientID)
	return nil
}

// copyCart returns a snapshot so callers never share the guarded slice.
func copyCart(cart *domain.Cart) *domain.Cart {
	c := *cart
	c.Items = make([]domain.CartItem, len(cart.Items))
	copy(c.Items, cart.Items)
	return &c
}
