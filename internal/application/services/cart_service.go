package services

import (
	"context"
	"fmt"

	"github.com/storefront/core/internal/domain/entities"
	"github.com/storefront/core/internal/infrastructure/logger"
	"github.com/storefront/core/internal/ports"
)

// CartService handles cart-related operations. Product references added to
// a cart are not checked against the product store; any product id is
// accepted.
type CartService struct {
	cartRepo ports.CartRepository
	logger   *logger.Logger
}

// NewCartService creates a new cart service
func NewCartService(cartRepo ports.CartRepository, logger *logger.Logger) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		logger:   logger,
	}
}

// CreateCart creates an empty cart with a fresh opaque id
func (s *CartService) CreateCart(ctx context.Context) (*entities.Cart, error) {
	cart, err := s.cartRepo.Create(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	s.logger.Info("Cart created successfully", "cart_id", cart.ID)

	return cart, nil
}

// ListItems returns the line items of a cart
func (s *CartService) ListItems(ctx context.Context, cartID string) ([]entities.CartItem, error) {
	cart, err := s.cartRepo.GetByID(ctx, cartID)
	if err != nil {
		return nil, err
	}

	if cart.Items == nil {
		return []entities.CartItem{}, nil
	}

	return cart.Items, nil
}

// AddItem adds the requested quantity of a product to a cart. When the cart
// already holds a line item for the product, its quantity grows by the
// requested amount.
func (s *CartService) AddItem(ctx context.Context, cartID string, productID int64, quantity int) error {
	if quantity <= 0 {
		return entities.ErrInvalidQuantity
	}

	_, err := s.cartRepo.AddItem(ctx, cartID, productID, quantity)
	if err != nil {
		return err
	}

	s.logger.Info("Product added to cart", "cart_id", cartID, "product_id", productID, "quantity", quantity)

	return nil
}

// RemoveItem removes a product's line item from a cart
func (s *CartService) RemoveItem(ctx context.Context, cartID string, productID int64) error {
	_, err := s.cartRepo.RemoveItem(ctx, cartID, productID)
	if err != nil {
		return err
	}

	s.logger.Info("Product removed from cart", "cart_id", cartID, "product_id", productID)

	return nil
}
