package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus описывает этап жизненного цикла заказа.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusCompleted  OrderStatus = "Completed"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// OrderStatuses - допустимые статусы заказа.
var OrderStatuses = []interface{}{OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled}

// Order представляет продажу в магазине. После создания меняется только Status.
type Order struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	CustomerID *uuid.UUID      `db:"customer_id" json:"customer"`
	OwnerID    uuid.UUID       `db:"owner_id" json:"owner"`
	StoreID    uuid.UUID       `db:"store_id" json:"store"`
	ProductID  uuid.UUID       `db:"product_id" json:"product"`
	Size       string          `db:"size" json:"size"`
	Quantity   int             `db:"quantity" json:"quantity"`
	UnitPrice  decimal.Decimal `db:"unit_price" json:"unit_price"`
	Amount     decimal.Decimal `db:"amount" json:"amount"`
	Status     OrderStatus     `db:"status" json:"status"`
	Timestamp  time.Time       `db:"timestamp" json:"timestamp"`
}

// OrderView - заказ вместе с витринными данными товара.
type OrderView struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Size        string          `json:"size"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
	Status      OrderStatus     `json:"status"`
}

// AddOrderRequest - запрос кассира на создание заказа.
// Amount принимается как есть и не пересчитывается из Price * Quantity.
type AddOrderRequest struct {
	Owner     uuid.UUID       `json:"owner"`
	Store     uuid.UUID       `json:"store"`
	Product   uuid.UUID       `json:"product"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
}

func (r AddOrderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Owner, validation.By(notNilUUID)),
		validation.Field(&r.Store, validation.By(notNilUUID)),
		validation.Field(&r.Product, validation.By(notNilUUID)),
		validation.Field(&r.Size, validation.Required),
		validation.Field(&r.Quantity, validation.Required, validation.Min(1)),
		validation.Field(&r.Timestamp, validation.Required),
	)
}

// UpdateOrderRequest - смена статуса заказа.
type UpdateOrderRequest struct {
	Order  uuid.UUID   `json:"order"`
	Status OrderStatus `json:"status"`
}

func (r UpdateOrderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Order, validation.By(notNilUUID)),
		validation.Field(&r.Status, validation.Required, validation.In(OrderStatuses...)),
	)
}
