package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// ProviderEmail - провайдер учётных записей с паролем.
const ProviderEmail = "email"

// User представляет продавца - владельца магазинов.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash *string   `db:"password_hash" json:"-"`
	Provider     string    `db:"provider" json:"provider"`
	Identifier   *string   `db:"identifier" json:"identifier"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// RegisterRequest - запрос на регистрацию продавца.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// LoginRequest - запрос на аутентификацию продавца.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// SocialLoginRequest - вход через внешнего провайдера; неизвестный продавец создаётся.
type SocialLoginRequest struct {
	Identifier string `json:"identifier"`
	Provider   string `json:"provider"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

func (r SocialLoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Identifier, validation.Required),
		validation.Field(&r.Provider, validation.Required, validation.NotIn(ProviderEmail)),
	)
}

// UserAuthResponse - ответ на регистрацию и вход.
type UserAuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
