package sales

import (
	"context"
	"fmt"

	"github.com/emonterozo/MilkteaBackend/internal/calendar"
	"github.com/emonterozo/MilkteaBackend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// StoreSales собирает продажи магазина: помесячный ряд за yearRange и продажи
// товаров за monthRange. Если за yearRange нет ни одного завершённого заказа,
// возвращает nil без ошибки, даже когда товарный срез не пуст.
func (e *Engine) StoreSales(ctx context.Context, storeID uuid.UUID, yearRange, monthRange calendar.Range) (*models.StoreDashboard, error) {
	var (
		groups   []models.MonthlyRevenue
		products []models.ProductSales
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		groups, err = e.groups(gctx, StoreScope(storeID), yearRange)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = e.productSales(gctx, storeID, monthRange)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(groups) == 0 {
		return nil, nil
	}

	return &models.StoreDashboard{
		StoreMonthlySales:   Fill(groups, yearRange),
		ProductMonthlySales: products,
	}, nil
}

func (e *Engine) productSales(ctx context.Context, storeID uuid.UUID, rng calendar.Range) ([]models.ProductSales, error) {
	if !rng.Valid() {
		return []models.ProductSales{}, nil
	}

	from, to := rng.Bounds()
	rows, err := e.products.ProductSales(ctx, storeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("product sales: %w", err)
	}
	if rows == nil {
		rows = []models.ProductSales{}
	}
	return rows, nil
}
