package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/emonterozo/MilkteaBackend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrUnscopedFilter возвращается для фильтра без владельца и без магазина.
var ErrUnscopedFilter = errors.New("sales filter requires owner or store")

// SalesStorage - агрегирующие запросы к журналу заказов.
type SalesStorage interface {
	MonthlyRevenue(ctx context.Context, filter models.SalesFilter) ([]models.MonthlyRevenue, error)
	SalesTotals(ctx context.Context, filter models.SalesFilter) ([]models.SalesTotals, error)
	ProductSales(ctx context.Context, storeID uuid.UUID, from, to time.Time) ([]models.ProductSales, error)
}

// PostgresSalesStorage реализует SalesStorage для PostgreSQL.
type PostgresSalesStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresSalesStorage создаёт новый экземпляр PostgresSalesStorage.
func NewPostgresSalesStorage(pool *pgxpool.Pool) *PostgresSalesStorage {
	return &PostgresSalesStorage{pool: pool}
}

// MonthlyRevenue группирует подходящие заказы по (год, месяц) timestamp.
// Каждое значение amount усекается до целого до суммирования.
// Строки возвращаются без меток и без заполнения пропусков, порядок не гарантируется.
func (s *PostgresSalesStorage) MonthlyRevenue(ctx context.Context, filter models.SalesFilter) ([]models.MonthlyRevenue, error) {
	where, args, err := filterClause(filter)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT
			EXTRACT(YEAR FROM "timestamp")::INT AS year,
			EXTRACT(MONTH FROM "timestamp")::INT AS month,
			COALESCE(SUM(TRUNC(amount)::BIGINT), 0) AS revenue
		FROM orders
		WHERE ` + where + `
		GROUP BY 1, 2
	`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly revenue: %w", err)
	}
	defer rows.Close()

	var groups []models.MonthlyRevenue
	for rows.Next() {
		var g models.MonthlyRevenue
		if err := rows.Scan(&g.Year, &g.Month, &g.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan monthly revenue: %w", err)
		}
		groups = append(groups, g)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}

	return groups, nil
}

// SalesTotals возвращает выручку и количество по годам диапазона.
func (s *PostgresSalesStorage) SalesTotals(ctx context.Context, filter models.SalesFilter) ([]models.SalesTotals, error) {
	where, args, err := filterClause(filter)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT
			EXTRACT(YEAR FROM "timestamp")::INT AS year,
			COALESCE(SUM(amount), 0) AS revenue,
			COALESCE(SUM(quantity), 0)::BIGINT AS quantity
		FROM orders
		WHERE ` + where + `
		GROUP BY 1
		ORDER BY 1
	`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales totals: %w", err)
	}
	defer rows.Close()

	totals := []models.SalesTotals{}
	for rows.Next() {
		var t models.SalesTotals
		if err := rows.Scan(&t.Year, &t.Revenue, &t.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan sales totals: %w", err)
		}
		totals = append(totals, t)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}

	return totals, nil
}

// ProductSales соединяет товары магазина с их завершёнными заказами за период.
// Товары без заказов в периоде в результат не попадают.
func (s *PostgresSalesStorage) ProductSales(ctx context.Context, storeID uuid.UUID, from, to time.Time) ([]models.ProductSales, error) {
	if storeID == uuid.Nil {
		return nil, ErrUnscopedFilter
	}

	query := `
		SELECT
			p.id,
			p.name,
			SUM(o.quantity)::BIGINT AS total_quantity,
			SUM(o.amount) AS total_sales
		FROM products p
		JOIN orders o ON o.product_id = p.id
		WHERE p.store_id = $1
			AND o.status = $2
			AND o."timestamp" >= $3
			AND o."timestamp" <= $4
		GROUP BY p.id, p.name
		ORDER BY p.name
	`

	rows, err := s.pool.Query(ctx, query, storeID, models.OrderStatusCompleted, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query product sales: %w", err)
	}
	defer rows.Close()

	sales := []models.ProductSales{}
	for rows.Next() {
		var ps models.ProductSales
		if err := rows.Scan(&ps.ProductID, &ps.Name, &ps.TotalQuantity, &ps.TotalSales); err != nil {
			return nil, fmt.Errorf("failed to scan product sales: %w", err)
		}
		sales = append(sales, ps)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}

	return sales, nil
}

// filterClause собирает WHERE по фильтру: владелец/магазин, статус, границы timestamp.
// Фильтр без владельца и магазина отклоняется.
func filterClause(filter models.SalesFilter) (string, []any, error) {
	if filter.OwnerID == uuid.Nil && filter.StoreID == uuid.Nil {
		return "", nil, ErrUnscopedFilter
	}

	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.OwnerID != uuid.Nil {
		add("owner_id = $%d", filter.OwnerID)
	}
	if filter.StoreID != uuid.Nil {
		add("store_id = $%d", filter.StoreID)
	}
	if filter.Status != "" {
		add("status = $%d", filter.Status)
	}
	add(`"timestamp" >= $%d`, filter.From)
	add(`"timestamp" <= $%d`, filter.To)

	return strings.Join(conds, " AND "), args, nil
}
