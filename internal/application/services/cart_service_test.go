package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/core/internal/adapters/repository"
	"github.com/storefront/core/internal/domain/entities"
	"github.com/storefront/core/internal/infrastructure/logger"
)

func newCartService(t *testing.T) *CartService {
	t.Helper()
	repo := repository.NewCartRepository(filepath.Join(t.TempDir(), "carts.json"))
	return NewCartService(repo, logger.NewNop())
}

func TestCreateCart_StartsEmpty(t *testing.T) {
	svc := newCartService(t)

	cart, err := svc.CreateCart(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, cart.ID)
	assert.Empty(t, cart.Items)
}

func TestListItems_CartNotFound(t *testing.T) {
	svc := newCartService(t)

	_, err := svc.ListItems(context.Background(), "missing")

	assert.ErrorIs(t, err, entities.ErrCartNotFound)
}

func TestAddItem_QuantityAccumulates(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	cart, err := svc.CreateCart(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.AddItem(ctx, cart.ID, 1, 2))
	require.NoError(t, svc.AddItem(ctx, cart.ID, 1, 3))

	items, err := svc.ListItems(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].ProductID)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddItem_RejectsNonPositiveQuantity(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	cart, err := svc.CreateCart(ctx)
	require.NoError(t, err)

	for _, quantity := range []int{0, -1} {
		err := svc.AddItem(ctx, cart.ID, 1, quantity)
		assert.ErrorIs(t, err, entities.ErrInvalidQuantity)
	}

	// Rejected adds leave the cart unchanged.
	items, err := svc.ListItems(ctx, cart.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAddItem_CartNotFound(t *testing.T) {
	svc := newCartService(t)

	err := svc.AddItem(context.Background(), "missing", 1, 2)

	assert.ErrorIs(t, err, entities.ErrCartNotFound)
}

func TestRemoveItem(t *testing.T) {
	svc := newCartService(t)
	ctx := context.Background()

	cart, err := svc.CreateCart(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.AddItem(ctx, cart.ID, 1, 2))

	require.NoError(t, svc.RemoveItem(ctx, cart.ID, 1))

	items, err := svc.ListItems(ctx, cart.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	t.Run("absent item", func(t *testing.T) {
		err := svc.RemoveItem(ctx, cart.ID, 1)
		assert.ErrorIs(t, err, entities.ErrCartItemNotFound)
	})
}
