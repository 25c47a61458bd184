// Package tracking serves the shipment lookup screen from fixture data.
// There is no carrier integration; two seeded codes resolve and everything
// else is a not-found result.
package tracking

import (
	"context"
	"errors"
	"sync"

	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/pkg/latency"
)

var ErrTrackingNotFound = errors.New("tracking code not found")

type Update struct {
	Date     string `json:"date"`
	Status   string `json:"status"`
	Location string `json:"location"`
}

type Info struct {
	OrderID           string   `json:"order_id"`
	Status            string   `json:"status"`
	EstimatedDelivery string   `json:"estimated_delivery"`
	DeliveredDate     string   `json:"delivered_date,omitempty"`
	Updates           []Update `json:"updates"`
}

// Fixtures returns the two seeded shipments the Track screen knows about.
func Fixtures() map[string]Info {
	return map[string]Info{
		"BR123456789": {
			OrderID:           "ORD-001",
			Status:            "shipped",
			EstimatedDelivery: "2024-01-20",
			Updates: []Update{
				{Date: "2024-01-15 10:30", Status: "Pedido realizado", Location: "São Paulo, SP"},
				{Date: "2024-01-16 14:20", Status: "Pagamento confirmado", Location: "São Paulo, SP"},
				{Date: "2024-01-17 09:15", Status: "Produto separado", Location: "Centro de Distribuição - SP"},
				{Date: "2024-01-18 16:45", Status: "Produto enviado", Location: "Centro de Distribuição - SP"},
				{Date: "2024-01-19 08:30", Status: "Em trânsito", Location: "Rio de Janeiro, RJ"},
			},
		},
		"BR987654321": {
			OrderID:           "ORD-002",
			Status:            "delivered",
			EstimatedDelivery: "2024-01-18",
			DeliveredDate:     "2024-01-18",
			Updates: []Update{
				{Date: "2024-01-10 11:00", Status: "Pedido realizado", Location: "São Paulo, SP"},
				{Date: "2024-01-11 15:30", Status: "Pagamento confirmado", Location: "São Paulo, SP"},
				{Date: "2024-01-12 10:20", Status: "Produto separado", Location: "Centro de Distribuição - SP"},
				{Date: "2024-01-13 14:15", Status: "Produto enviado", Location: "Centro de Distribuição - SP"},
				{Date: "2024-01-18 16:30", Status: "Produto entregue", Location: "Rio de Janeiro, RJ"},
			},
		},
	}
}

type Service struct {
	mu        sync.RWMutex
	shipments map[string]Info
	delay     latency.Latency
}

func NewService(delay latency.Latency) *Service {
	return &Service{
		shipments: Fixtures(),
		delay:     delay,
	}
}

// Track looks up a shipment after the simulated carrier delay. An unknown
// code is a negative lookup, reported via ErrTrackingNotFound.
func (s *Service) Track(ctx context.Context, code string) (*Info, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	info, exists := s.shipments[code]
	if !exists {
		return nil, ErrTrackingNotFound
	}
	return &info, nil
}
