// Package sales строит помесячные ряды выручки из журнала заказов.
package sales

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/emonterozo/MilkteaBackend/internal/calendar"
	"github.com/emonterozo/MilkteaBackend/internal/models"
	"github.com/google/uuid"
)

// RevenueSource отдаёт сырые группы (год, месяц) -> сумма усечённых amount.
type RevenueSource interface {
	MonthlyRevenue(ctx context.Context, filter models.SalesFilter) ([]models.MonthlyRevenue, error)
}

// ProductSalesSource отдаёт продажи товаров магазина за период.
type ProductSalesSource interface {
	ProductSales(ctx context.Context, storeID uuid.UUID, from, to time.Time) ([]models.ProductSales, error)
}

// Scope выбирает раздел журнала: все магазины продавца или один магазин.
type Scope struct {
	OwnerID uuid.UUID
	StoreID uuid.UUID
}

// OwnerScope - раздел продавца.
func OwnerScope(ownerID uuid.UUID) Scope {
	return Scope{OwnerID: ownerID}
}

// StoreScope - раздел магазина.
func StoreScope(storeID uuid.UUID) Scope {
	return Scope{StoreID: storeID}
}

// Engine считает ряды выручки по завершённым заказам.
type Engine struct {
	revenue  RevenueSource
	products ProductSalesSource
	status   models.OrderStatus
}

// NewEngine создаёт движок. В ряды попадают только заказы в статусе Completed.
func NewEngine(revenue RevenueSource, products ProductSalesSource) *Engine {
	return &Engine{
		revenue:  revenue,
		products: products,
		status:   models.OrderStatusCompleted,
	}
}

// Monthly возвращает плотный помесячный ряд выручки раздела scope за диапазон rng.
// Для невалидного диапазона журнал не запрашивается, ряд пустой.
func (e *Engine) Monthly(ctx context.Context, scope Scope, rng calendar.Range) ([]models.MonthlyRevenue, error) {
	groups, err := e.groups(ctx, scope, rng)
	if err != nil {
		return nil, err
	}
	return Fill(groups, rng), nil
}

func (e *Engine) groups(ctx context.Context, scope Scope, rng calendar.Range) ([]models.MonthlyRevenue, error) {
	if !rng.Valid() {
		return nil, nil
	}

	from, to := rng.Bounds()
	groups, err := e.revenue.MonthlyRevenue(ctx, models.SalesFilter{
		OwnerID: scope.OwnerID,
		StoreID: scope.StoreID,
		Status:  e.status,
		From:    from,
		To:      to,
	})
	if err != nil {
		return nil, fmt.Errorf("monthly revenue %s..%s: %w",
			rng.Start.Format(calendar.DateLayout), rng.End.Format(calendar.DateLayout), err)
	}
	return groups, nil
}

// Fill подписывает сырые группы, добавляет нулевые корзины для месяцев диапазона
// без продаж и сортирует результат по (год, месяц). Входной срез не меняется.
func Fill(groups []models.MonthlyRevenue, rng calendar.Range) []models.MonthlyRevenue {
	labeled := make([]models.MonthlyRevenue, 0, len(groups))
	seen := make(map[calendar.Month]bool, len(groups))
	for _, g := range groups {
		g.Label = calendar.Label(time.Month(g.Month))
		labeled = append(labeled, g)
		seen[calendar.Month{Year: g.Year, Month: time.Month(g.Month)}] = true
	}

	var missing []models.MonthlyRevenue
	for _, m := range rng.Months() {
		if seen[m] {
			continue
		}
		missing = append(missing, models.MonthlyRevenue{
			Year:  m.Year,
			Month: int(m.Month),
			Label: m.Label(),
		})
	}

	buckets := append(labeled, missing...)
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Year != buckets[j].Year {
			return buckets[i].Year < buckets[j].Year
		}
		return buckets[i].Month < buckets[j].Month
	})
	return buckets
}

// Total - сумма выручки ряда.
func Total(buckets []models.MonthlyRevenue) int64 {
	var total int64
	for _, b := range buckets {
		total += b.Revenue
	}
	return total
}
