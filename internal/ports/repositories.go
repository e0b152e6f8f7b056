package ports

import (
	"context"

	"github.com/storefront/core/internal/domain/entities"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]entities.Product, error)
	GetByID(ctx context.Context, id int64) (*entities.Product, error)
	Create(ctx context.Context, product *entities.Product) (*entities.Product, error)
	Update(ctx context.Context, id int64, req UpdateProductRequest) (*entities.Product, error)
	// Delete removes the product with the given id. Deleting an absent id is
	// a no-op at the store layer; the returned bool reports whether a record
	// was actually removed so callers can surface a 404.
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
}

// CartRepository defines the interface for cart data operations
type CartRepository interface {
	Create(ctx context.Context) (*entities.Cart, error)
	GetByID(ctx context.Context, id string) (*entities.Cart, error)
	AddItem(ctx context.Context, cartID string, productID int64, quantity int) (*entities.Cart, error)
	RemoveItem(ctx context.Context, cartID string, productID int64) (*entities.Cart, error)
}

// ProductFilter carries optional listing parameters. Zero Limit means no
// paging: the full catalog is returned.
type ProductFilter struct {
	Category *string
	Limit    int
	Offset   int
}

// CreateProductRequest carries the fields required to create a product.
type CreateProductRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Code        string   `json:"code" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Stock       int      `json:"stock" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required"`
	Thumbnails  []string `json:"thumbnails"`
}

// UpdateProductRequest carries a partial product update. Nil fields are left
// unchanged on the stored record (shallow merge).
type UpdateProductRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Code        *string   `json:"code"`
	Price       *float64  `json:"price" validate:"omitempty,gt=0"`
	Status      *bool     `json:"status"`
	Stock       *int      `json:"stock" validate:"omitempty,gte=0"`
	Category    *string   `json:"category"`
	Thumbnails  *[]string `json:"thumbnails"`
}
