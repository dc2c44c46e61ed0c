package services

import (
	"context"

	"github.com/emonterozo/MilkteaBackend/internal/calendar"
	"github.com/emonterozo/MilkteaBackend/internal/models"
	"github.com/google/uuid"
)

// Analytics - помесячные ряды выручки (реализуется sales.Engine).
type Analytics interface {
	YearOverYear(ctx context.Context, ownerID uuid.UUID, rng calendar.Range) (map[int][]models.MonthlyRevenue, error)
	StoreSales(ctx context.Context, storeID uuid.UUID, yearRange, monthRange calendar.Range) (*models.StoreDashboard, error)
}

// SalesTotalsSource - годовые итоги продаж для плиток сводки.
type SalesTotalsSource interface {
	SalesTotals(ctx context.Context, filter models.SalesFilter) ([]models.SalesTotals, error)
}

// StoreCounter считает магазины продавца.
type StoreCounter interface {
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}
