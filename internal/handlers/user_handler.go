package handlers

import (
	"net/http"

	"github.com/emonterozo/MilkteaBackend/internal/models"
	"github.com/emonterozo/MilkteaBackend/internal/services"
	"github.com/labstack/echo/v4"
)

// UserHandler обрабатывает регистрацию и вход продавцов.
type UserHandler struct {
	userService services.UserService
}

// NewUserHandler создаёт новый экземпляр UserHandler.
func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register обрабатывает POST /seller/register.
func (h *UserHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	resp, err := h.userService.Register(c.Request().Context(), req)
	if err != nil {
		return serviceError(c, err, "register seller")
	}

	setAuthToken(c, resp.Token)
	return c.JSON(http.StatusOK, resp)
}

// Login обрабатывает POST /seller/login.
func (h *UserHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	resp, err := h.userService.Login(c.Request().Context(), req)
	if err != nil {
		return serviceError(c, err, "login seller")
	}

	setAuthToken(c, resp.Token)
	return c.JSON(http.StatusOK, resp)
}

// SocialLogin обрабатывает POST /seller/social.
func (h *UserHandler) SocialLogin(c echo.Context) error {
	var req models.SocialLoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	resp, err := h.userService.SocialLogin(c.Request().Context(), req)
	if err != nil {
		return serviceError(c, err, "login seller via provider")
	}

	setAuthToken(c, resp.Token)
	return c.JSON(http.StatusOK, resp)
}
