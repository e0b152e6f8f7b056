package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/core/internal/domain/entities"
	"github.com/storefront/core/internal/ports"
)

func newProductRepo(t *testing.T) ports.ProductRepository {
	t.Helper()
	return NewProductRepository(filepath.Join(t.TempDir(), "products.json"))
}

func sampleProduct(title, code string) *entities.Product {
	return &entities.Product{
		Title:       title,
		Description: "desc",
		Code:        code,
		Price:       10,
		Status:      true,
		Stock:       5,
		Category:    "audio",
		Thumbnails:  []string{},
	}
}

func TestProductCreate_AssignsSequentialIDs(t *testing.T) {
	repo := newProductRepo(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, sampleProduct("Speaker", "C1"))
	require.NoError(t, err)
	second, err := repo.Create(ctx, sampleProduct("Headphones", "C2"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestProductCreate_IDsStayUniqueAfterDelete(t *testing.T) {
	repo := newProductRepo(t)
	ctx := context.Background()

	a, err := repo.Create(ctx, sampleProduct("A", "C1"))
	require.NoError(t, err)
	b, err := repo.Create(ctx, sampleProduct("B", "C2"))
	require.NoError(t, err)

	// Deleting a non-max id must not cause id reuse.
	removed, err := repo.Delete(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, removed)

	c, err := repo.Create(ctx, sampleProduct("C", "C3"))
	require.NoError(t, err)
	assert.Equal(t, b.ID+1, c.ID)

	products, err := repo.List(ctx, ports.ProductFilter{})
	require.NoError(t, err)

	seen := make(map[int64]bool, len(products))
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate product id %d", p.ID)
		seen[p.ID] = true
	}
}

func TestProductRoundTrip(t *testing.T) {
	repo := newProductRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleProduct("Speaker", "C1"))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestProductGetByID_NotFound(t *testing.T) {
	repo := newProductRepo(t)

	_, err := repo.GetByID(context.Background(), 9999)

	assert.ErrorIs(t, err, entities.ErrProductNotFound)
}

func TestProductUpdate_MergesOnlyProvidedFields(t *testing.T) {
	repo := newProductRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleProduct("Speaker", "C1"))
	require.NoError(t, err)

	newPrice := 25.5
	updated, err := repo.Update(ctx, created.ID, ports.UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, newPrice, updated.Price)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Code, updated.Code)
	assert.Equal(t, created.Stock, updated.Stock)
	assert.Equal(t, created.Category, updated.Category)
	assert.True(t, updated.Status)

	// Merge is persisted, not just returned.
	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestProductUpdate_NotFound(t *testing.T) {
	repo := newProductRepo(t)

	title := "nope"
	_, err := repo.Update(context.Background(), 42, ports.UpdateProductRequest{Title: &title})

	assert.ErrorIs(t, err, entities.ErrProductNotFound)
}

func TestProductDelete_IdempotentOnAbsentID(t *testing.T) {
	repo := newProductRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleProduct("Speaker", "C1"))
	require.NoError(t, err)

	removed, err := repo.Delete(ctx, 9999)
	require.NoError(t, err)
	assert.False(t, removed)

	products, err := repo.List(ctx, ports.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, created.ID, products[0].ID)
}

func TestProductList_Filtering(t *testing.T) {
	repo := newProductRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, sampleProduct("Speaker", "C1"))
	require.NoError(t, err)
	other := sampleProduct("Cable", "C2")
	other.Category = "accessories"
	_, err = repo.Create(ctx, other)
	require.NoError(t, err)
	_, err = repo.Create(ctx, sampleProduct("Soundbar", "C3"))
	require.NoError(t, err)

	t.Run("by category", func(t *testing.T) {
		category := "accessories"
		products, err := repo.List(ctx, ports.ProductFilter{Category: &category})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Cable", products[0].Title)
	})

	t.Run("limit and offset", func(t *testing.T) {
		products, err := repo.List(ctx, ports.ProductFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Cable", products[0].Title)
	})

	t.Run("offset past the end", func(t *testing.T) {
		products, err := repo.List(ctx, ports.ProductFilter{Offset: 10})
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestProductCount(t *testing.T) {
	repo := newProductRepo(t)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = repo.Create(ctx, sampleProduct("Speaker", "C1"))
	require.NoError(t, err)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
