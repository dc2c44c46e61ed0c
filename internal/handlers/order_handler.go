package handlers

import (
	"net/http"

	"github.com/emonterozo/MilkteaBackend/internal/models"
	"github.com/emonterozo/MilkteaBackend/internal/services"
	"github.com/labstack/echo/v4"
)

// OrderHandler обрабатывает запросы кассы по заказам.
type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// AddOrder обрабатывает POST /store/add_order.
func (h *OrderHandler) AddOrder(c echo.Context) error {
	var req models.AddOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	order, err := h.orderService.AddOrder(c.Request().Context(), req)
	if err != nil {
		return serviceError(c, err, "add order")
	}

	return c.JSON(http.StatusOK, order)
}

// ListOrders обрабатывает GET /store/orders?store=&status=&timestamp=YYYY-MM-DD.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	storeID, err := queryUUID(c, "store")
	if err != nil {
		return err
	}

	status := models.OrderStatus(c.QueryParam("status"))
	orders, err := h.orderService.ListOrders(c.Request().Context(), storeID, status, c.QueryParam("timestamp"))
	if err != nil {
		return serviceError(c, err, "list orders")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"orders": orders})
}

// UpdateOrder обрабатывает POST /store/update_order.
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	var req models.UpdateOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.orderService.UpdateOrder(c.Request().Context(), req); err != nil {
		return serviceError(c, err, "update order")
	}

	return c.NoContent(http.StatusOK)
}
