package sales

import (
	"context"

	"github.com/emonterozo/MilkteaBackend/internal/calendar"
	"github.com/emonterozo/MilkteaBackend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// YearOverYear строит ряды продавца за диапазон rng и за тот же диапазон годом раньше.
// Оба ряда считаются параллельно; первая ошибка отменяет второй запрос.
func (e *Engine) YearOverYear(ctx context.Context, ownerID uuid.UUID, rng calendar.Range) (map[int][]models.MonthlyRevenue, error) {
	if !rng.Valid() {
		return map[int][]models.MonthlyRevenue{}, nil
	}

	prior := rng.PriorYear()
	scope := OwnerScope(ownerID)

	var current, previous []models.MonthlyRevenue
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = e.Monthly(gctx, scope, rng)
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = e.Monthly(gctx, scope, prior)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Compare(rng.Year(), current, prior.Year(), previous), nil
}

// Compare раскладывает два ряда по годам. Текущий ряд пишется первым,
// при совпадении годов остаётся прошлогодний.
func Compare(currentYear int, current []models.MonthlyRevenue, priorYear int, prior []models.MonthlyRevenue) map[int][]models.MonthlyRevenue {
	result := make(map[int][]models.MonthlyRevenue, 2)
	result[currentYear] = current
	result[priorYear] = prior
	return result
}
