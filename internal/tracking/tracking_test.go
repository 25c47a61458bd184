package tracking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/pkg/latency"
)

func TestTrack_SeededShippedCode(t *testing.T) {
	sut := NewService(latency.None{})

	info, err := sut.Track(context.Background(), "BR123456789")
	require.NoError(t, err)
	assert.Equal(t, "ORD-001", info.OrderID)
	assert.Equal(t, "shipped", info.Status)
	assert.Len(t, info.Updates, 5)
	assert.Empty(t, info.DeliveredDate)
}

func TestTrack_SeededDeliveredCode(t *testing.T) {
	sut := NewService(latency.None{})

	info, err := sut.Track(context.Background(), "BR987654321")
	require.NoError(t, err)
	assert.Equal(t, "delivered", info.Status)
	assert.Equal(t, "2024-01-18", info.DeliveredDate)
}

func TestTrack_UnknownCode(t *testing.T) {
	sut := NewService(latency.None{})

	info, err := sut.Track(context.Background(), "BR000000000")
	assert.ErrorIs(t, err, ErrTrackingNotFound)
	assert.Nil(t, info)
}

func TestTrack_CancelledContext(t *testing.T) {
	sut := NewService(latency.Fixed(time.Minute))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sut.Track(ctx, "BR123456789")
	assert.ErrorIs(t, err, context.Canceled)
}
