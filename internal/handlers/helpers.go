package handlers

import (
	"errors"
	"net/http"

	"github.com/emonterozo/MilkteaBackend/internal/services"
	"github.com/emonterozo/MilkteaBackend/internal/storage"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// queryUUID разбирает обязательный идентификатор из query-параметра.
func queryUUID(c echo.Context, name string) (uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, name+" is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// bind разбирает JSON тело запроса.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	return nil
}

// serviceError переводит ошибку сервиса в HTTP-ответ. Неизвестные ошибки
// пишутся в лог и отдаются клиенту без деталей.
func serviceError(c echo.Context, err error, action string) error {
	switch {
	case errors.Is(err, services.ErrInvalidRequest):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrAccountNotFound):
		return echo.NewHTTPError(http.StatusUnauthorized, "account does not exist")
	case errors.Is(err, services.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, storage.ErrEmailExists):
		return echo.NewHTTPError(http.StatusConflict, "email already exists")
	case errors.Is(err, storage.ErrUsernameExists):
		return echo.NewHTTPError(http.StatusConflict, "username already exists")
	case errors.Is(err, storage.ErrStoreNotFound),
		errors.Is(err, storage.ErrProductNotFound),
		errors.Is(err, storage.ErrOrderNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}

	log.Error().Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msgf("failed to %s", action)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}

// setAuthToken устанавливает токен в cookie и заголовок ответа.
func setAuthToken(c echo.Context, token string) {
	cookie := &http.Cookie{
		Name:     "Authorization",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   86400, // 24 часа
	}
	c.SetCookie(cookie)

	c.Response().Header().Set("Authorization", "Bearer "+token)
}
