package services

import (
	"context"
	"fmt"

	"github.com/storefront/core/internal/domain/entities"
	"github.com/storefront/core/internal/infrastructure/logger"
	"github.com/storefront/core/internal/ports"
)

// ProductService handles product-related operations
type ProductService struct {
	productRepo ports.ProductRepository
	logger      *logger.Logger
}

// NewProductService creates a new product service
func NewProductService(productRepo ports.ProductRepository, logger *logger.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// CreateProduct creates a new product. Required fields are checked by the
// handler's validator; defaults are applied here: status starts true and
// thumbnails is an empty list when omitted.
func (s *ProductService) CreateProduct(ctx context.Context, req ports.CreateProductRequest) (*entities.Product, error) {
	product := &entities.Product{
		Title:       req.Title,
		Description: req.Description,
		Code:        req.Code,
		Price:       req.Price,
		Status:      true,
		Stock:       req.Stock,
		Category:    req.Category,
		Thumbnails:  req.Thumbnails,
	}

	if product.Thumbnails == nil {
		product.Thumbnails = []string{}
	}

	created, err := s.productRepo.Create(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info("Product created successfully", "product_id", created.ID, "title", created.Title)

	return created, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*entities.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return product, nil
}

// ListProducts retrieves products with optional filtering
func (s *ProductService) ListProducts(ctx context.Context, filter ports.ProductFilter) ([]entities.Product, error) {
	products, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// UpdateProduct applies a partial update to a product. Fields absent from
// the request keep their stored values.
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, req ports.UpdateProductRequest) (*entities.Product, error) {
	updated, err := s.productRepo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Product updated successfully", "product_id", updated.ID, "title", updated.Title)

	return updated, nil
}

// DeleteProduct deletes a product. The store treats deleting an absent id as
// a no-op; the service reports it as not found so the API can answer 404.
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	removed, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if !removed {
		return entities.ErrProductNotFound
	}

	s.logger.Info("Product deleted successfully", "product_id", id)

	return nil
}
