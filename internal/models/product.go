package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceEntry - цена товара для одного размера.
type PriceEntry struct {
	Size        string          `json:"size"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// Product представляет напиток в меню магазина.
type Product struct {
	ID          uuid.UUID    `db:"id" json:"id"`
	StoreID     uuid.UUID    `db:"store_id" json:"store"`
	Name        string       `db:"name" json:"name"`
	Description string       `db:"description" json:"description"`
	Image       string       `db:"image" json:"image"`
	Available   bool         `db:"available" json:"available"`
	PriceList   []PriceEntry `db:"price_list" json:"price_list"`
}

// StandardPriceList строит прайс-лист из трёх стандартных размеров стакана.
func StandardPriceList(small, medium, large decimal.Decimal) []PriceEntry {
	return []PriceEntry{
		{Size: "Small", Description: "12oz", Price: small},
		{Size: "Medium", Description: "16oz", Price: medium},
		{Size: "Large", Description: "24oz", Price: large},
	}
}

// ProductRequest - создание и обновление товара.
type ProductRequest struct {
	ProductID   uuid.UUID       `json:"productId"`
	StoreID     uuid.UUID       `json:"storeId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Available   bool            `json:"available"`
	Small       decimal.Decimal `json:"small"`
	Medium      decimal.Decimal `json:"medium"`
	Large       decimal.Decimal `json:"large"`
}

func (r ProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Small, validation.By(nonNegative)),
		validation.Field(&r.Medium, validation.By(nonNegative)),
		validation.Field(&r.Large, validation.By(nonNegative)),
	)
}

// ProductAvailabilityRequest - включение или выключение товара в меню.
type ProductAvailabilityRequest struct {
	Product   uuid.UUID `json:"product"`
	Available bool      `json:"available"`
}

func (r ProductAvailabilityRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Product, validation.By(notNilUUID)),
	)
}

// StoreDetails - магазин вместе с его меню.
type StoreDetails struct {
	Store    *Store     `json:"store"`
	Products []*Product `json:"products"`
}
