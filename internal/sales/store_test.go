package sales

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/emonterozo/MilkteaBackend/internal/calendar"
	"github.com/emonterozo/MilkteaBackend/internal/models"
	"github.com/emonterozo/MilkteaBackend/internal/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_StoreSales(t *testing.T) {
	owner := uuid.New()
	store := uuid.New()
	taro := uuid.New()
	okinawa := uuid.New()
	unsold := uuid.New()

	j := newMemJournal()
	j.products[taro] = "Taro"
	j.products[okinawa] = "Okinawa"
	j.products[unsold] = "Matcha"

	add := func(product uuid.UUID, qty int, amount string, ts time.Time) {
		o := completed(owner, store, amount, ts)
		o.ProductID = product
		o.Quantity = qty
		j.add(o)
	}
	add(taro, 2, "180.50", day(2024, time.April, 3))
	add(taro, 1, "90", day(2024, time.April, 20))
	add(okinawa, 3, "300", day(2024, time.April, 21))
	add(okinawa, 1, "100", day(2024, time.June, 1))

	yearRange := calendar.NewRange("2024-01-01", "2024-12-31")
	monthRange := calendar.NewRange("2024-04-01", "2024-04-30")

	got, err := NewEngine(j, j).StoreSales(context.Background(), store, yearRange, monthRange)
	require.NoError(t, err)
	require.NotNil(t, got)

	require.Len(t, got.StoreMonthlySales, 12)
	assert.Equal(t, int64(570), got.StoreMonthlySales[3].Revenue)
	assert.Equal(t, "APR", got.StoreMonthlySales[3].Label)
	assert.Equal(t, int64(100), got.StoreMonthlySales[5].Revenue)
	assert.Equal(t, int64(670), Total(got.StoreMonthlySales))

	require.Len(t, got.ProductMonthlySales, 2)
	byName := map[string]models.ProductSales{}
	for _, ps := range got.ProductMonthlySales {
		byName[ps.Name] = ps
	}
	assert.NotContains(t, byName, "Matcha")
	assert.Equal(t, int64(3), byName["Taro"].TotalQuantity)
	assert.True(t, byName["Taro"].TotalSales.Equal(decimal.RequireFromString("270.50")))
	assert.Equal(t, int64(3), byName["Okinawa"].TotalQuantity)
}

func TestEngine_StoreSales_NoData(t *testing.T) {
	store := uuid.New()
	product := uuid.New()
	j := newMemJournal()
	j.products[product] = "Taro"

	// Товарный срез есть, но в годовом диапазоне продаж нет.
	o := completed(uuid.New(), store, "50", day(2023, time.December, 5))
	o.ProductID = product
	j.add(o)

	got, err := NewEngine(j, j).StoreSales(context.Background(), store,
		calendar.NewRange("2024-01-01", "2024-12-31"),
		calendar.NewRange("2023-12-01", "2023-12-31"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestEngine_StoreSales_InvalidYearRange(t *testing.T) {
	j := newMemJournal()
	j.add(completed(uuid.New(), uuid.New(), "50", day(2024, time.January, 5)))

	got, err := NewEngine(j, j).StoreSales(context.Background(), uuid.New(),
		calendar.NewRange("2024/01/01", "2024-12-31"),
		calendar.NewRange("2024-01-01", "2024-01-31"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestEngine_StoreSales_EmptyProductsNotNil(t *testing.T) {
	src := &storage.MockSalesStorage{
		MonthlyRevenueFunc: func(ctx context.Context, filter models.SalesFilter) ([]models.MonthlyRevenue, error) {
			return []models.MonthlyRevenue{{Year: 2024, Month: 2, Revenue: 10}}, nil
		},
		ProductSalesFunc: func(ctx context.Context, storeID uuid.UUID, from, to time.Time) ([]models.ProductSales, error) {
			return nil, nil
		},
	}

	got, err := NewEngine(src, src).StoreSales(context.Background(), uuid.New(),
		calendar.NewRange("2024-01-01", "2024-03-31"),
		calendar.NewRange("2024-02-01", "2024-02-29"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.NotNil(t, got.ProductMonthlySales)
	assert.Empty(t, got.ProductMonthlySales)
	assert.Len(t, got.StoreMonthlySales, 3)
}

func TestEngine_StoreSales_ProductQueryError(t *testing.T) {
	dbErr := errors.New("join failed")
	src := &storage.MockSalesStorage{
		MonthlyRevenueFunc: func(ctx context.Context, filter models.SalesFilter) ([]models.MonthlyRevenue, error) {
			return []models.MonthlyRevenue{{Year: 2024, Month: 2, Revenue: 10}}, nil
		},
		ProductSalesFunc: func(ctx context.Context, storeID uuid.UUID, from, to time.Time) ([]models.ProductSales, error) {
			return nil, dbErr
		},
	}

	got, err := NewEngine(src, src).StoreSales(context.Background(), uuid.New(),
		calendar.NewRange("2024-01-01", "2024-03-31"),
		calendar.NewRange("2024-02-01", "2024-02-29"))
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, got)
}
