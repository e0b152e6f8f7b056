package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/storefront/core/internal/domain/entities"
	"github.com/storefront/core/internal/infrastructure/jsonfile"
	"github.com/storefront/core/internal/ports"
)

// CartRepositoryImpl implements the CartRepository interface on top of a
// flat-file JSON collection.
type CartRepositoryImpl struct {
	collection *jsonfile.Collection[entities.Cart]
}

// NewCartRepository creates a cart repository backed by the given file
func NewCartRepository(path string) ports.CartRepository {
	return &CartRepositoryImpl{
		collection: jsonfile.New[entities.Cart](path),
	}
}

func (r *CartRepositoryImpl) Create(ctx context.Context) (*entities.Cart, error) {
	cart := &entities.Cart{
		ID:    uuid.NewString(),
		Items: []entities.CartItem{},
	}

	err := r.collection.Update(ctx, func(carts []entities.Cart) ([]entities.Cart, error) {
		return append(carts, *cart), nil
	})
	if err != nil {
		return nil, fmt.Errorf("create cart: %w", err)
	}

	return cart, nil
}

func (r *CartRepositoryImpl) GetByID(ctx context.Context, id string) (*entities.Cart, error) {
	carts, err := r.collection.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("get cart by id: %w", err)
	}

	for i := range carts {
		if carts[i].ID == id {
			return &carts[i], nil
		}
	}

	return nil, entities.ErrCartNotFound
}

// AddItem increments the existing line item for the product by the requested
// quantity, or appends a new line item when the cart has none. The cart
// invariant holds: at most one line item per distinct product id.
func (r *CartRepositoryImpl) AddItem(ctx context.Context, cartID string, productID int64, quantity int) (*entities.Cart, error) {
	var updated *entities.Cart

	err := r.collection.Update(ctx, func(carts []entities.Cart) ([]entities.Cart, error) {
		for i := range carts {
			if carts[i].ID != cartID {
				continue
			}

			cart := &carts[i]
			if idx := cart.FindItem(productID); idx >= 0 {
				cart.Items[idx].Quantity += quantity
			} else {
				cart.Items = append(cart.Items, entities.CartItem{
					ProductID: productID,
					Quantity:  quantity,
				})
			}

			snapshot := *cart
			updated = &snapshot
			return carts, nil
		}

		return nil, entities.ErrCartNotFound
	})
	if err != nil {
		if err == entities.ErrCartNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("add item to cart: %w", err)
	}

	return updated, nil
}

func (r *CartRepositoryImpl) RemoveItem(ctx context.Context, cartID string, productID int64) (*entities.Cart, error) {
	var updated *entities.Cart

	err := r.collection.Update(ctx, func(carts []entities.Cart) ([]entities.Cart, error) {
		for i := range carts {
			if carts[i].ID != cartID {
				continue
			}

			cart := &carts[i]
			idx := cart.FindItem(productID)
			if idx < 0 {
				return nil, entities.ErrCartItemNotFound
			}

			cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)

			snapshot := *cart
			updated = &snapshot
			return carts, nil
		}

		return nil, entities.ErrCartNotFound
	})
	if err != nil {
		if err == entities.ErrCartNotFound || err == entities.ErrCartItemNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("remove item from cart: %w", err)
	}

	return updated, nil
}
