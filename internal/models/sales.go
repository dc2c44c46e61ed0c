package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyRevenue - корзина помесячной выручки.
// Revenue - сумма amount, где каждое значение усечено до целого до суммирования.
type MonthlyRevenue struct {
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Label   string `json:"label"`
	Revenue int64  `json:"revenue"`
}

// ProductSales - продажи одного товара за период.
type ProductSales struct {
	ProductID     uuid.UUID       `json:"productId"`
	Name          string          `json:"name"`
	TotalQuantity int64           `json:"totalQuantity"`
	TotalSales    decimal.Decimal `json:"totalSales"`
}

// SalesTotals - итоги продаж за календарный год диапазона (без заполнения пропусков).
type SalesTotals struct {
	Year     int             `json:"year"`
	Revenue  decimal.Decimal `json:"revenue"`
	Quantity int64           `json:"quantity"`
}

// SalesFilter отбирает заказы из журнала. Нулевые OwnerID/StoreID не фильтруют.
type SalesFilter struct {
	OwnerID uuid.UUID
	StoreID uuid.UUID
	Status  OrderStatus
	From    time.Time
	To      time.Time
}

// OwnerDashboard - сводка продавца по всем магазинам.
type OwnerDashboard struct {
	StoreCount int64                    `json:"storeCount"`
	Stores     []SalesTotals            `json:"stores"`
	Sales      map[int][]MonthlyRevenue `json:"sales"`
}

// StoreDashboard - продажи одного магазина: помесячно и по товарам.
type StoreDashboard struct {
	StoreMonthlySales   []MonthlyRevenue `json:"store_monthly_sales"`
	ProductMonthlySales []ProductSales   `json:"product_monthly_sales"`
}
