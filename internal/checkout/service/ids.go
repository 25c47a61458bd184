package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderIDs isolates order identifier generation so tests can inject
// deterministic values.
type OrderIDs interface {
	New() string
}

// TimeRandomIDs produces ids like ORD-1718000000000-4f9a1c2b3, unique per
// call with overwhelming probability. Uniqueness across restarts is not
// required for the simulation.
type TimeRandomIDs struct{}

func (TimeRandomIDs) New() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}
