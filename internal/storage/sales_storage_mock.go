package storage

import (
	"context"
	"time"

	"github.com/emonterozo/MilkteaBackend/internal/models"
	"github.com/google/uuid"
)

// MockSalesStorage - мок агрегирующих запросов.
type MockSalesStorage struct {
	MonthlyRevenueFunc func(ctx context.Context, filter models.SalesFilter) ([]models.MonthlyRevenue, error)
	SalesTotalsFunc    func(ctx context.Context, filter models.SalesFilter) ([]models.SalesTotals, error)
	ProductSalesFunc   func(ctx context.Context, storeID uuid.UUID, from, to time.Time) ([]models.ProductSales, error)
}

func (m *MockSalesStorage) MonthlyRevenue(ctx context.Context, filter models.SalesFilter) ([]models.MonthlyRevenue, error) {
	if m.MonthlyRevenueFunc != nil {
		return m.MonthlyRevenueFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockSalesStorage) SalesTotals(ctx context.Context, filter models.SalesFilter) ([]models.SalesTotals, error) {
	if m.SalesTotalsFunc != nil {
		return m.SalesTotalsFunc(ctx, filter)
	}
	return []models.SalesTotals{}, nil
}

func (m *MockSalesStorage) ProductSales(ctx context.Context, storeID uuid.UUID, from, to time.Time) ([]models.ProductSales, error) {
	if m.ProductSalesFunc != nil {
		return m.ProductSalesFunc(ctx, storeID, from, to)
	}
	return []models.ProductSales{}, nil
}
