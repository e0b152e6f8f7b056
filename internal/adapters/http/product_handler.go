package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/storefront/core/internal/application/services"
	"github.com/storefront/core/internal/domain/entities"
	"github.com/storefront/core/internal/infrastructure/logger"
	"github.com/storefront/core/internal/ports"
)

// ProductHandler handles product-related requests
type ProductHandler struct {
	productService *services.ProductService
	logger         *logger.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *services.ProductService, logger *logger.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// ListProducts handles GET /api/products
func (h *ProductHandler) ListProducts(c echo.Context) error {
	filter := ports.ProductFilter{}

	if category := c.QueryParam("category"); category != "" {
		filter.Category = &category
	}

	if limitStr := c.QueryParam("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid limit parameter")
		}
		filter.Limit = limit
	}

	if offsetStr := c.QueryParam("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid offset parameter")
		}
		filter.Offset = offset
	}

	products, err := h.productService.ListProducts(c.Request().Context(), filter)
	if err != nil {
		h.logger.Error("List products failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve products")
	}

	return c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/products/:pid
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := parseProductID(c.Param("pid"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid product ID")
	}

	product, err := h.productService.GetProduct(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, entities.ErrProductNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Product not found")
		}
		h.logger.Error("Get product failed", "error", err, "product_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve product")
	}

	return c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req ports.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "All required fields must be present")
	}

	product, err := h.productService.CreateProduct(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("Create product failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create product")
	}

	return c.JSON(http.StatusOK, product)
}

// UpdateProduct handles PUT /api/products/:pid
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := parseProductID(c.Param("pid"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid product ID")
	}

	var req ports.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.productService.UpdateProduct(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, entities.ErrProductNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Product not found")
		}
		h.logger.Error("Update product failed", "error", err, "product_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update product")
	}

	return c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/products/:pid
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := parseProductID(c.Param("pid"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid product ID")
	}

	if err := h.productService.DeleteProduct(c.Request().Context(), id); err != nil {
		if errors.Is(err, entities.ErrProductNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Product not found")
		}
		h.logger.Error("Delete product failed", "error", err, "product_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete product")
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Product deleted successfully"})
}

// parseProductID parses a route parameter into an integer product id, so
// lookups always compare ids with consistent typing.
func parseProductID(param string) (int64, error) {
	return strconv.ParseInt(param, 10, 64)
}
