package services

import (
	"context"
	"fmt"

	"github.com/emonterozo/MilkteaBackend/internal/calendar"
	"github.com/emonterozo/MilkteaBackend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DashboardService определяет интерфейс аналитики продавца и магазина.
type DashboardService interface {
	OwnerDashboard(ctx context.Context, ownerID uuid.UUID, rng calendar.Range) (*models.OwnerDashboard, error)
	StoreDashboard(ctx context.Context, storeID uuid.UUID, yearRange, monthRange calendar.Range) (*models.StoreDashboard, error)
}

// DashboardServiceImpl реализует DashboardService.
type DashboardServiceImpl struct {
	analytics Analytics
	totals    SalesTotalsSource
	stores    StoreCounter
}

// NewDashboardService создаёт сервис аналитики.
func NewDashboardService(analytics Analytics, totals SalesTotalsSource, stores StoreCounter) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		analytics: analytics,
		totals:    totals,
		stores:    stores,
	}
}

// OwnerDashboard собирает сводку продавца: число магазинов, годовые итоги
// и ряды выручки за диапазон и за тот же диапазон годом раньше.
// Запросы идут параллельно; отключение клиента их не прерывает.
func (s *DashboardServiceImpl) OwnerDashboard(ctx context.Context, ownerID uuid.UUID, rng calendar.Range) (*models.OwnerDashboard, error) {
	dashboard := &models.OwnerDashboard{
		Stores: []models.SalesTotals{},
	}

	g, gctx := errgroup.WithContext(context.WithoutCancel(ctx))
	g.Go(func() error {
		sales, err := s.analytics.YearOverYear(gctx, ownerID, rng)
		if err != nil {
			return fmt.Errorf("year over year: %w", err)
		}
		dashboard.Sales = sales
		return nil
	})
	g.Go(func() error {
		if !rng.Valid() {
			return nil
		}
		from, to := rng.Bounds()
		totals, err := s.totals.SalesTotals(gctx, models.SalesFilter{
			OwnerID: ownerID,
			Status:  models.OrderStatusCompleted,
			From:    from,
			To:      to,
		})
		if err != nil {
			return fmt.Errorf("sales totals: %w", err)
		}
		if totals != nil {
			dashboard.Stores = totals
		}
		return nil
	})
	g.Go(func() error {
		count, err := s.stores.CountByOwner(gctx, ownerID)
		if err != nil {
			return fmt.Errorf("count stores: %w", err)
		}
		dashboard.StoreCount = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if dashboard.Sales == nil {
		dashboard.Sales = map[int][]models.MonthlyRevenue{}
	}
	return dashboard, nil
}

// StoreDashboard возвращает продажи магазина или nil, если за yearRange продаж нет.
func (s *DashboardServiceImpl) StoreDashboard(ctx context.Context, storeID uuid.UUID, yearRange, monthRange calendar.Range) (*models.StoreDashboard, error) {
	dashboard, err := s.analytics.StoreSales(context.WithoutCancel(ctx), storeID, yearRange, monthRange)
	if err != nil {
		return nil, fmt.Errorf("store sales: %w", err)
	}
	return dashboard, nil
}
