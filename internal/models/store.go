package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// RatingBuckets - число звёзд в гистограмме оценок магазина.
const RatingBuckets = 5

// Store представляет точку продаж продавца.
type Store struct {
	ID            uuid.UUID        `db:"id" json:"id"`
	OwnerID       uuid.UUID        `db:"owner_id" json:"owner"`
	Username      string           `db:"username" json:"username"`
	PasswordHash  string           `db:"password_hash" json:"-"`
	Banner        string           `db:"banner" json:"banner"`
	Name          string           `db:"store_name" json:"store_name"`
	ContactNumber string           `db:"store_contact_number" json:"store_contact_number"`
	Address       string           `db:"store_address" json:"store_address"`
	Latitude      float64          `db:"latitude" json:"latitude"`
	Longitude     float64          `db:"longitude" json:"longitude"`
	Ratings       []StoreRating    `json:"store_ratings"`
	RateBy        []CustomerRating `json:"rate_by"`
	CreatedAt     time.Time        `db:"created_at" json:"created_at"`
}

// StoreRating - корзина гистограммы: сколько покупателей поставили Rating звёзд.
type StoreRating struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

// CustomerRating - оценка одного покупателя.
type CustomerRating struct {
	Customer string `json:"customer"`
	Rate     int    `json:"rate"`
}

// EmptyRatings возвращает гистограмму из пяти нулевых корзин.
func EmptyRatings() []StoreRating {
	ratings := make([]StoreRating, RatingBuckets)
	for i := range ratings {
		ratings[i] = StoreRating{Rating: i + 1}
	}
	return ratings
}

// AddStoreRequest - запрос продавца на создание магазина.
type AddStoreRequest struct {
	Username           string    `json:"username"`
	Password           string    `json:"password"`
	StoreName          string    `json:"storeName"`
	StoreContactNumber string    `json:"storeContactNumber"`
	StoreAddress       string    `json:"storeAddress"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	Owner              uuid.UUID `json:"owner"`
	Banner             string    `json:"banner"`
}

func (r AddStoreRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(3, 64)),
		validation.Field(&r.Password, validation.Required),
		validation.Field(&r.StoreName, validation.Required),
		validation.Field(&r.Latitude, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&r.Longitude, validation.Min(-180.0), validation.Max(180.0)),
		validation.Field(&r.Owner, validation.By(notNilUUID)),
	)
}

// StoreLoginRequest - вход кассира магазина.
type StoreLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r StoreLoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// StoreAuthResponse - ответ на вход магазина.
type StoreAuthResponse struct {
	Store *Store `json:"store"`
	Token string `json:"token"`
}

// RateStoreRequest - оценка магазина покупателем.
type RateStoreRequest struct {
	Store    uuid.UUID `json:"store"`
	Customer string    `json:"customer"`
	Rate     int       `json:"rate"`
}

func (r RateStoreRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Store, validation.By(notNilUUID)),
		validation.Field(&r.Customer, validation.Required),
		validation.Field(&r.Rate, validation.Required, validation.Min(1), validation.Max(RatingBuckets)),
	)
}

// RatingHistogram раскладывает оценки покупателей по пяти корзинам.
// Оценки вне 1..5 не учитываются.
func RatingHistogram(rates []CustomerRating) []StoreRating {
	ratings := EmptyRatings()
	for _, r := range rates {
		if r.Rate < 1 || r.Rate > RatingBuckets {
			continue
		}
		ratings[r.Rate-1].Count++
	}
	return ratings
}
