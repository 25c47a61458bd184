// Package latency models the artificial network delay the prototype inserts
// in place of real backend calls. Call sites depend on the Latency interface
// so a real client can replace the simulation without changing them.
package latency

import (
	"context"
	"time"
)

type Latency interface {
	// Wait blocks for the simulated delay or until ctx is done,
	// returning ctx.Err() in that case.
	Wait(ctx context.Context) error
}

// Fixed waits the same duration on every call.
type Fixed time.Duration

func (f Fixed) Wait(ctx context.Context) error {
	timer := time.NewTimer(time.Duration(f))
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// None returns immediately; used by tests.
type None struct{}

func (None) Wait(context.Context) error { return nil }
