package store

import (
	"errors"
	"sync"
	"time"

	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/orders/domain"
)

var ErrOrderNotFound = errors.New("order not found")

// MemoryStore keeps completed orders in memory for the account and admin
// views. Orders are only ever appended; a checkout that fails records nothing.
type MemoryStore struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
	seq    []string // insertion order for listings
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		orders: make(map[string]*domain.Order),
	}
}

func (s *MemoryStore) Record(order domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	if _, exists := s.orders[order.ID]; !exists {
		s.seq = append(s.seq, order.ID)
	}
	s.orders[order.ID] = &order
}

func (s *MemoryStore) Get(orderID string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, exists := s.orders[orderID]
	if !exists {
		return nil, ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

// ListByEmail returns the customer's orders, oldest first.
func (s *MemoryStore) ListByEmail(email string) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Order, 0)
	for _, id := range s.seq {
		if s.orders[id].CustomerEmail == email {
			result = append(result, *s.orders[id])
		}
	}
	return result
}

// ListAll returns every order, oldest first. Admin view only.
func (s *MemoryStore) ListAll() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Order, 0, len(s.seq))
	for _, id := range s.seq {
		result = append(result, *s.orders[id])
	}
	return result
}

func (s *MemoryStore) Stats() domain.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.Stats{TotalOrders: len(s.seq)}
	for _, order := range s.orders {
		stats.Revenue += order.Total
	}
	return stats
}
