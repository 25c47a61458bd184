package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	db "github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/catalog/repository"
)

func setupTestDB(t *testing.T) *db.Repository {
	// Use in-memory database for tests
	repo, err := db.NewRepository(":memory:")
	if err != nil {
		t.Fatalf("Failed to create test repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	// Run migrations
	if err := repo.RunMigrations("./migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return repo
}

func TestGetAllProducts_Returns8AfterMigrations(t *testing.T) {
	repo := setupTestDB(t)

	products, err := repo.GetAllProducts(context.Background())
	require.NoError(t, err)

	// The seed migration inserts the 8 featured products
	assert.Len(t, products, 8)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Smartphone Galaxy A54 128GB Câmera Tripla", products[0].Name)
	assert.Equal(t, 1299.99, products[0].Price)
}

func TestGetAllProducts_WithContext(t *testing.T) {
	repo := setupTestDB(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*1)
	defer cancel()

	products, err := repo.GetAllProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 8)
}

func TestGetProduct_ReturnsProduct(t *testing.T) {
	repo := setupTestDB(t)

	product, err := repo.GetProduct(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, product)

	assert.Equal(t, "Fone de Ouvido Bluetooth JBL Tune 510BT", product.Name)
	assert.Equal(t, 199.99, product.Price)
	t.Logf("Received product: %+v", *product)
}

func TestGetProduct_IncorrectId_ReturnsNotFound(t *testing.T) {
	repo := setupTestDB(t)

	product, err := repo.GetProduct(context.Background(), -1)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, db.ErrProductNotFound)
}

func TestGetByCategory_FiltersRows(t *testing.T) {
	repo := setupTestDB(t)

	products, err := repo.GetByCategory(context.Background(), "esportes")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Tênis Nike Air Max 270 Masculino", products[0].Name)

	none, err := repo.GetByCategory(context.Background(), "livros")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetDeals_OnlyDiscountedProducts(t *testing.T) {
	repo := setupTestDB(t)

	deals, err := repo.GetDeals(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, deals)

	for _, p := range deals {
		assert.True(t, p.OnSale(), "product %d should be on sale", p.ID)
	}
}
