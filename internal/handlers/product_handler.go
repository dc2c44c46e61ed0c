package handlers

import (
	"net/http"

	"github.com/emonterozo/MilkteaBackend/internal/models"
	"github.com/emonterozo/MilkteaBackend/internal/services"
	"github.com/labstack/echo/v4"
)

// ProductHandler обрабатывает запросы по меню магазина.
type ProductHandler struct {
	productService services.ProductService
}

// NewProductHandler создаёт новый экземпляр ProductHandler.
func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// AddProduct обрабатывает POST /seller/add_product.
func (h *ProductHandler) AddProduct(c echo.Context) error {
	var req models.ProductRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	product, err := h.productService.AddProduct(c.Request().Context(), req)
	if err != nil {
		return serviceError(c, err, "add product")
	}

	return c.JSON(http.StatusOK, product)
}

// UpdateProduct обрабатывает POST /seller/update_product.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req models.ProductRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.productService.UpdateProduct(c.Request().Context(), req); err != nil {
		return serviceError(c, err, "update product")
	}

	return c.NoContent(http.StatusOK)
}

// ListProducts обрабатывает GET /store/products?store=.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	storeID, err := queryUUID(c, "store")
	if err != nil {
		return err
	}

	products, err := h.productService.ListProducts(c.Request().Context(), storeID)
	if err != nil {
		return serviceError(c, err, "list products")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"products": products})
}

// SetAvailability обрабатывает POST /store/product_availability.
func (h *ProductHandler) SetAvailability(c echo.Context) error {
	var req models.ProductAvailabilityRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.productService.SetAvailability(c.Request().Context(), req); err != nil {
		return serviceError(c, err, "set product availability")
	}

	return c.NoContent(http.StatusOK)
}
