package service

import (
	"fmt"
	"math/rand"

	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/checkout/domain"
)

// StatusSource decides the outcome of an order status poll. The random
// implementation is a simulation artifact: it redraws on every poll instead
// of advancing monotonically, and a real tracking backend should replace it.
type StatusSource interface {
	Next() (domain.OrderStatus, string)
}

type RandomStatus struct{}

func (RandomStatus) Next() (domain.OrderStatus, string) {
	return pickStatus(rand.Intn(len(pollStatuses)), rand.Int63n(1_000_000_000))
}

var pollStatuses = []domain.OrderStatus{
	domain.StatusPending,
	domain.StatusProcessing,
	domain.StatusShipped,
	domain.StatusDelivered,
}

// pickStatus maps a status index and a tracking seed to a poll result.
// Only shipped and delivered orders carry a tracking code.
func pickStatus(idx int, trackingSeed int64) (domain.OrderStatus, string) {
	status := pollStatuses[idx]
	if !status.HasTracking() {
		return status, ""
	}
	return status, fmt.Sprintf("BR%09d", trackingSeed)
}
