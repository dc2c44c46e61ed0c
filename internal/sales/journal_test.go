package sales

import (
	"context"
	"sync"
	"time"

	"github.com/emonterozo/MilkteaBackend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// memJournal - журнал заказов в памяти с той же семантикой группировки, что и SQL.
type memJournal struct {
	mu       sync.Mutex
	orders   []models.Order
	products map[uuid.UUID]string
	filters  []models.SalesFilter
}

func newMemJournal() *memJournal {
	return &memJournal{products: map[uuid.UUID]string{}}
}

func (j *memJournal) add(o models.Order) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	j.orders = append(j.orders, o)
}

func (j *memJournal) matches(o models.Order, f models.SalesFilter) bool {
	if f.OwnerID != uuid.Nil && o.OwnerID != f.OwnerID {
		return false
	}
	if f.StoreID != uuid.Nil && o.StoreID != f.StoreID {
		return false
	}
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	return !o.Timestamp.Before(f.From) && !o.Timestamp.After(f.To)
}

func (j *memJournal) MonthlyRevenue(_ context.Context, f models.SalesFilter) ([]models.MonthlyRevenue, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.filters = append(j.filters, f)

	type key struct{ year, month int }
	sums := map[key]int64{}
	var order []key
	for _, o := range j.orders {
		if !j.matches(o, f) {
			continue
		}
		k := key{o.Timestamp.Year(), int(o.Timestamp.Month())}
		if _, ok := sums[k]; !ok {
			order = append(order, k)
		}
		sums[k] += o.Amount.Truncate(0).IntPart()
	}

	// Обратный порядок: движок не должен полагаться на порядок строк.
	var groups []models.MonthlyRevenue
	for i := len(order) - 1; i >= 0; i-- {
		k := order[i]
		groups = append(groups, models.MonthlyRevenue{Year: k.year, Month: k.month, Revenue: sums[k]})
	}
	return groups, nil
}

func (j *memJournal) ProductSales(_ context.Context, storeID uuid.UUID, from, to time.Time) ([]models.ProductSales, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	f := models.SalesFilter{StoreID: storeID, Status: models.OrderStatusCompleted, From: from, To: to}
	byProduct := map[uuid.UUID]*models.ProductSales{}
	var rows []models.ProductSales
	var ids []uuid.UUID
	for _, o := range j.orders {
		name, ok := j.products[o.ProductID]
		if !ok || !j.matches(o, f) {
			continue
		}
		ps, ok := byProduct[o.ProductID]
		if !ok {
			ps = &models.ProductSales{ProductID: o.ProductID, Name: name, TotalSales: decimal.Zero}
			byProduct[o.ProductID] = ps
			ids = append(ids, o.ProductID)
		}
		ps.TotalQuantity += int64(o.Quantity)
		ps.TotalSales = ps.TotalSales.Add(o.Amount)
	}
	for _, id := range ids {
		rows = append(rows, *byProduct[id])
	}
	return rows, nil
}

func completed(owner, store uuid.UUID, amount string, ts time.Time) models.Order {
	return models.Order{
		OwnerID:   owner,
		StoreID:   store,
		ProductID: uuid.New(),
		Quantity:  1,
		Amount:    decimal.RequireFromString(amount),
		Status:    models.OrderStatusCompleted,
		Timestamp: ts,
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}
