package latency

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixed_WaitsAtLeastDuration(t *testing.T) {
	start := time.Now()
	err := Fixed(20 * time.Millisecond).Wait(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestFixed_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Fixed(time.Minute).Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNone_ReturnsImmediately(t *testing.T) {
	assert.NoError(t, None{}.Wait(context.Background()))
}
