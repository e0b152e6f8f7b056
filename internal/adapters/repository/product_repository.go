package repository

import (
	"context"
	"fmt"

	"github.com/storefront/core/internal/domain/entities"
	"github.com/storefront/core/internal/infrastructure/jsonfile"
	"github.com/storefront/core/internal/ports"
)

// ProductRepositoryImpl implements the ProductRepository interface on top of
// a flat-file JSON collection.
type ProductRepositoryImpl struct {
	collection *jsonfile.Collection[entities.Product]
}

// NewProductRepository creates a product repository backed by the given file
func NewProductRepository(path string) ports.ProductRepository {
	return &ProductRepositoryImpl{
		collection: jsonfile.New[entities.Product](path),
	}
}

func (r *ProductRepositoryImpl) List(ctx context.Context, filter ports.ProductFilter) ([]entities.Product, error) {
	products, err := r.collection.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if filter.Category != nil {
		filtered := make([]entities.Product, 0, len(products))
		for _, p := range products {
			if p.Category == *filter.Category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	if filter.Offset > 0 {
		if filter.Offset >= len(products) {
			return []entities.Product{}, nil
		}
		products = products[filter.Offset:]
	}

	if filter.Limit > 0 && filter.Limit < len(products) {
		products = products[:filter.Limit]
	}

	return products, nil
}

func (r *ProductRepositoryImpl) GetByID(ctx context.Context, id int64) (*entities.Product, error) {
	products, err := r.collection.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("get product by id: %w", err)
	}

	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}

	return nil, entities.ErrProductNotFound
}

// Create appends the product to the collection. The id is assigned inside
// the locked read-modify-write cycle as max existing id + 1, so it stays
// unique even when ids below the maximum have been deleted.
func (r *ProductRepositoryImpl) Create(ctx context.Context, product *entities.Product) (*entities.Product, error) {
	err := r.collection.Update(ctx, func(products []entities.Product) ([]entities.Product, error) {
		var maxID int64
		for _, p := range products {
			if p.ID > maxID {
				maxID = p.ID
			}
		}

		product.ID = maxID + 1
		return append(products, *product), nil
	})
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	return product, nil
}

// Update merges the non-nil request fields onto the stored record inside the
// locked cycle; fields not present in the request are preserved.
func (r *ProductRepositoryImpl) Update(ctx context.Context, id int64, req ports.UpdateProductRequest) (*entities.Product, error) {
	var updated *entities.Product

	err := r.collection.Update(ctx, func(products []entities.Product) ([]entities.Product, error) {
		for i := range products {
			if products[i].ID != id {
				continue
			}

			p := &products[i]
			if req.Title != nil {
				p.Title = *req.Title
			}
			if req.Description != nil {
				p.Description = *req.Description
			}
			if req.Code != nil {
				p.Code = *req.Code
			}
			if req.Price != nil {
				p.Price = *req.Price
			}
			if req.Status != nil {
				p.Status = *req.Status
			}
			if req.Stock != nil {
				p.Stock = *req.Stock
			}
			if req.Category != nil {
				p.Category = *req.Category
			}
			if req.Thumbnails != nil {
				p.Thumbnails = *req.Thumbnails
			}

			snapshot := *p
			updated = &snapshot
			return products, nil
		}

		return nil, entities.ErrProductNotFound
	})
	if err != nil {
		if err == entities.ErrProductNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("update product: %w", err)
	}

	return updated, nil
}

func (r *ProductRepositoryImpl) Delete(ctx context.Context, id int64) (bool, error) {
	removed := false

	err := r.collection.Update(ctx, func(products []entities.Product) ([]entities.Product, error) {
		remaining := make([]entities.Product, 0, len(products))
		for _, p := range products {
			if p.ID == id && !removed {
				removed = true
				continue
			}
			remaining = append(remaining, p)
		}
		return remaining, nil
	})
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}

	return removed, nil
}

func (r *ProductRepositoryImpl) Count(ctx context.Context) (int, error) {
	products, err := r.collection.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}

	return len(products), nil
}
