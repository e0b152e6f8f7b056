package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/core/internal/application/services"
	"github.com/storefront/core/internal/domain/entities"
	"github.com/storefront/core/internal/infrastructure/logger"
)

// CartHandler handles cart-related requests
type CartHandler struct {
	cartService *services.CartService
	logger      *logger.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *services.CartService, logger *logger.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

// CreateCart handles POST /api/carts
func (h *CartHandler) CreateCart(c echo.Context) error {
	cart, err := h.cartService.CreateCart(c.Request().Context())
	if err != nil {
		h.logger.Error("Create cart failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create cart")
	}

	return c.JSON(http.StatusCreated, CreateCartResponse{
		Message: "Cart created successfully",
		CartID:  cart.ID,
	})
}

// ListCartItems handles GET /api/carts/:cid
func (h *CartHandler) ListCartItems(c echo.Context) error {
	cartID := c.Param("cid")

	items, err := h.cartService.ListItems(c.Request().Context(), cartID)
	if err != nil {
		if errors.Is(err, entities.ErrCartNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Cart not found")
		}
		h.logger.Error("List cart items failed", "error", err, "cart_id", cartID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve cart items")
	}

	return c.JSON(http.StatusOK, items)
}

// AddCartItem handles POST /api/carts/:cid/product/:pid
func (h *CartHandler) AddCartItem(c echo.Context) error {
	cartID := c.Param("cid")

	productID, err := parseProductID(c.Param("pid"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid product ID")
	}

	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	err = h.cartService.AddItem(c.Request().Context(), cartID, productID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrInvalidQuantity):
			return echo.NewHTTPError(http.StatusBadRequest, "Quantity must be a positive integer")
		case errors.Is(err, entities.ErrCartNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Cart not found")
		default:
			h.logger.Error("Add cart item failed", "error", err, "cart_id", cartID, "product_id", productID)
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to add product to cart")
		}
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Product %d added to cart %s", productID, cartID),
	})
}

// RemoveCartItem handles DELETE /api/carts/:cid/product/:pid
func (h *CartHandler) RemoveCartItem(c echo.Context) error {
	cartID := c.Param("cid")

	productID, err := parseProductID(c.Param("pid"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid product ID")
	}

	err = h.cartService.RemoveItem(c.Request().Context(), cartID, productID)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrCartNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Cart not found")
		case errors.Is(err, entities.ErrCartItemNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Product not found in cart")
		default:
			h.logger.Error("Remove cart item failed", "error", err, "cart_id", cartID, "product_id", productID)
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to remove product from cart")
		}
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Product %d removed from cart %s", productID, cartID),
	})
}

// Request/Response types

type AddCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CreateCartResponse struct {
	Message string `json:"message"`
	CartID  string `json:"cartId"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
