package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/cart/domain"
)

func TestMemoryRepository_AddItem_CreatesCart(t *testing.T) {
	repo := NewMemoryRepository()

	err := repo.AddItem(context.Background(), "client-1", domain.CartItem{
		ProductID: 1, Name: "Fone JBL", UnitPrice: 199.99, Quantity: 1,
	})
	require.NoError(t, err)

	cart, err := repo.GetCart(context.Background(), "client-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "client-1", cart.ClientID)
	assert.False(t, cart.Items[0].AddedAt.IsZero())
}

func TestMemoryRepository_AddItem_MergesByProductID(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.AddItem(ctx, "client-1", domain.CartItem{ProductID: 1, Quantity: 1}))
	require.NoError(t, repo.AddItem(ctx, "client-1", domain.CartItem{ProductID: 2, Quantity: 1}))
	require.NoError(t, repo.AddItem(ctx, "client-1", domain.CartItem{ProductID: 1, Quantity: 1}))

	cart, err := repo.GetCart(ctx, "client-1")
	require.NoError(t, err)

	// Same product twice yields one entry with summed quantity;
	// entry order is preserved.
	require.Len(t, cart.Items, 2)
	assert.Equal(t, int64(1), cart.Items[0].ProductID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, int64(2), cart.Items[1].ProductID)
	assert.Equal(t, 1, cart.Items[1].Quantity)
}

func TestMemoryRepository_UpdateItemQuantity_SetsExactValue(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.AddItem(ctx, "client-1", domain.CartItem{ProductID: 1, Quantity: 2}))
	require.NoError(t, repo.UpdateItemQuantity(ctx, "client-1", 1, 7))

	cart, _ := repo.GetCart(ctx, "client-1")
	assert.Equal(t, 7, cart.Items[0].Quantity)
}

func TestMemoryRepository_UpdateItemQuantity_UnknownItem(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.AddItem(ctx, "client-1", domain.CartItem{ProductID: 1, Quantity: 2}))

	err := repo.UpdateItemQuantity(ctx, "client-1", 999, 3)
	assert.ErrorIs(t, err, ErrItemNotFound)

	err = repo.UpdateItemQuantity(ctx, "missing-client", 1, 3)
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestMemoryRepository_RemoveItem(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.AddItem(ctx, "client-1", domain.CartItem{ProductID: 1, Quantity: 2}))
	require.NoError(t, repo.AddItem(ctx, "client-1", domain.CartItem{ProductID: 2, Quantity: 1}))

	require.NoError(t, repo.RemoveItem(ctx, "client-1", 1))

	cart, _ := repo.GetCart(ctx, "client-1")
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(2), cart.Items[0].ProductID)

	assert.ErrorIs(t, repo.RemoveItem(ctx, "client-1", 1), ErrItemNotFound)
}

func TestMemoryRepository_DeleteCart(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.AddItem(ctx, "client-1", domain.CartItem{ProductID: 1, Quantity: 2}))
	require.NoError(t, repo.DeleteCart(ctx, "client-1"))

	_, err := repo.GetCart(ctx, "client-1")
	assert.ErrorIs(t, err, ErrCartNotFound)

	assert.ErrorIs(t, repo.DeleteCart(ctx, "client-1"), ErrCartNotFound)
}

func TestMemoryRepository_GetCart_ReturnsSnapshot(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.AddItem(ctx, "client-1", domain.CartItem{ProductID: 1, Quantity: 2}))

	cart, _ := repo.GetCart(ctx, "client-1")
	cart.Items[0].Quantity = 99

	again, _ := repo.GetCart(ctx, "client-1")
	assert.Equal(t, 2, again.Items[0].Quantity, "stored cart must not share memory with snapshots")
}

func TestMemoryRepository_ConcurrentAdds(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.AddItem(ctx, "client-1", domain.CartItem{ProductID: 1, Quantity: 1})
		}()
	}
	wg.Wait()

	cart, err := repo.GetCart(ctx, "client-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 50, cart.Items[0].Quantity)
}
