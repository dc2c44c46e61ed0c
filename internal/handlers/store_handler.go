package handlers

import (
	"net/http"

	"github.com/emonterozo/MilkteaBackend/internal/models"
	"github.com/emonterozo/MilkteaBackend/internal/services"
	"github.com/labstack/echo/v4"
)

// StoreHandler обрабатывает запросы по магазинам.
type StoreHandler struct {
	storeService services.StoreService
}

// NewStoreHandler создаёт новый экземпляр StoreHandler.
func NewStoreHandler(storeService services.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// AddStore обрабатывает POST /seller/add_store.
func (h *StoreHandler) AddStore(c echo.Context) error {
	var req models.AddStoreRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	store, err := h.storeService.AddStore(c.Request().Context(), req)
	if err != nil {
		return serviceError(c, err, "add store")
	}

	return c.JSON(http.StatusOK, store)
}

// ListStores обрабатывает GET /seller/stores?owner=.
func (h *StoreHandler) ListStores(c echo.Context) error {
	ownerID, err := queryUUID(c, "owner")
	if err != nil {
		return err
	}

	stores, err := h.storeService.ListStores(c.Request().Context(), ownerID)
	if err != nil {
		return serviceError(c, err, "list stores")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"stores": stores})
}

// StoreDetails обрабатывает GET /seller/store?id=.
func (h *StoreHandler) StoreDetails(c echo.Context) error {
	storeID, err := queryUUID(c, "id")
	if err != nil {
		return err
	}

	details, err := h.storeService.StoreDetails(c.Request().Context(), storeID)
	if err != nil {
		return serviceError(c, err, "get store")
	}

	return c.JSON(http.StatusOK, details)
}

// Login обрабатывает POST /store/login.
func (h *StoreHandler) Login(c echo.Context) error {
	var req models.StoreLoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	resp, err := h.storeService.Login(c.Request().Context(), req)
	if err != nil {
		return serviceError(c, err, "login store")
	}

	setAuthToken(c, resp.Token)
	return c.JSON(http.StatusOK, resp)
}

// Rate обрабатывает POST /store/rate.
func (h *StoreHandler) Rate(c echo.Context) error {
	var req models.RateStoreRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.storeService.Rate(c.Request().Context(), req); err != nil {
		return serviceError(c, err, "rate store")
	}

	return c.NoContent(http.StatusOK)
}
