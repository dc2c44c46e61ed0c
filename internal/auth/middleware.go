package auth

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey - тип для ключей контекста.
type ContextKey string

const (
	// PrincipalIDKey - ключ для ID продавца или магазина в контексте.
	PrincipalIDKey ContextKey = "principal_id"
	// PrincipalRoleKey - ключ для роли владельца токена.
	PrincipalRoleKey ContextKey = "principal_role"
)

// JWTMiddleware пропускает запросы с валидным токеном роли role.
func JWTMiddleware(secret string, role Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractTokenFromHeader(c)

			if token == "" {
				token = extractTokenFromCookie(c)
			}

			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid token")
			}

			claims, err := ValidateToken(token, secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if claims.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, "token is not valid for this resource")
			}

			c.Set(string(PrincipalIDKey), claims.SubjectID)
			c.Set(string(PrincipalRoleKey), claims.Role)

			return next(c)
		}
	}
}

// extractTokenFromHeader извлекает токен из заголовка Authorization.
func extractTokenFromHeader(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	// Формат "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
		return parts[1]
	}

	return ""
}

// extractTokenFromCookie извлекает токен из cookie.
func extractTokenFromCookie(c echo.Context) string {
	cookie, err := c.Cookie("Authorization")
	if err != nil {
		return ""
	}
	return cookie.Value
}

// GetPrincipalIDFromContext извлекает ID владельца токена из контекста.
func GetPrincipalIDFromContext(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get(string(PrincipalIDKey)).(uuid.UUID)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "principal not found in context")
	}
	return id, nil
}
