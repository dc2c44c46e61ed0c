package handlers

import (
	"net/http"

	"github.com/emonterozo/MilkteaBackend/internal/calendar"
	"github.com/emonterozo/MilkteaBackend/internal/models"
	"github.com/emonterozo/MilkteaBackend/internal/services"
	"github.com/labstack/echo/v4"
)

// DashboardHandler отдаёт аналитику продаж.
type DashboardHandler struct {
	dashboardService services.DashboardService
}

// NewDashboardHandler создаёт новый экземпляр DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// storeSalesResponse - ответ store_sales; Data равен null, если продаж нет.
type storeSalesResponse struct {
	Data *models.StoreDashboard `json:"data"`
}

// OwnerDashboard обрабатывает GET /seller/dashboard?owner=&startDate=&endDate=.
// Некорректные даты не отклоняются: сводка получается пустой.
func (h *DashboardHandler) OwnerDashboard(c echo.Context) error {
	ownerID, err := queryUUID(c, "owner")
	if err != nil {
		return err
	}

	rng := calendar.NewRange(c.QueryParam("startDate"), c.QueryParam("endDate"))
	dashboard, err := h.dashboardService.OwnerDashboard(c.Request().Context(), ownerID, rng)
	if err != nil {
		return serviceError(c, err, "build owner dashboard")
	}

	return c.JSON(http.StatusOK, dashboard)
}

// StoreSales обрабатывает GET /seller/store_sales?store=&yearStartDate=&yearEndDate=&monthStartDate=&monthEndDate=.
func (h *DashboardHandler) StoreSales(c echo.Context) error {
	storeID, err := queryUUID(c, "store")
	if err != nil {
		return err
	}

	yearRange := calendar.NewRange(c.QueryParam("yearStartDate"), c.QueryParam("yearEndDate"))
	monthRange := calendar.NewRange(c.QueryParam("monthStartDate"), c.QueryParam("monthEndDate"))

	dashboard, err := h.dashboardService.StoreDashboard(c.Request().Context(), storeID, yearRange, monthRange)
	if err != nil {
		return serviceError(c, err, "build store dashboard")
	}

	return c.JSON(http.StatusOK, storeSalesResponse{Data: dashboard})
}
