package auth

import (
	"errors"
	"time"

	"github.com/emonterozo/MilkteaBackend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Role различает владельцев токенов: продавца и кассу магазина.
type Role string

const (
	RoleSeller Role = "seller"
	RoleStore  Role = "store"
)

// Principal - тот, кому выдаётся токен.
type Principal struct {
	ID   uuid.UUID
	Role Role
	Name string
}

// SellerPrincipal строит Principal продавца.
func SellerPrincipal(user *models.User) Principal {
	return Principal{ID: user.ID, Role: RoleSeller, Name: user.Email}
}

// StorePrincipal строит Principal магазина.
func StorePrincipal(store *models.Store) Principal {
	return Principal{ID: store.ID, Role: RoleStore, Name: store.Username}
}

// Claims содержит информацию о владельце JWT токена.
type Claims struct {
	SubjectID uuid.UUID `json:"sub_id"`
	Role      Role      `json:"role"`
	Name      string    `json:"name"`
	jwt.RegisteredClaims
}

var (
	// ErrInvalidToken возвращается при невалидном токене.
	ErrInvalidToken = errors.New("invalid token")
)

// GenerateToken генерирует JWT токен для продавца или магазина.
func GenerateToken(p Principal, secret string, expiration time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		SubjectID: p.ID,
		Role:      p.Role,
		Name:      p.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken валидирует JWT токен и возвращает claims.
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
