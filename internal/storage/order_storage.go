package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/emonterozo/MilkteaBackend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrOrderNotFound = errors.New("order not found")
)

// OrderStorage определяет интерфейс для работы с заказами.
type OrderStorage interface {
	Create(ctx context.Context, order *models.Order) error
	ListByStoreAndStatus(ctx context.Context, storeID uuid.UUID, status models.OrderStatus, from, to time.Time) ([]*models.OrderView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error
}

// PostgresOrderStorage реализует OrderStorage для PostgreSQL.
type PostgresOrderStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresOrderStorage создаёт новый экземпляр PostgresOrderStorage.
func NewPostgresOrderStorage(pool *pgxpool.Pool) *PostgresOrderStorage {
	return &PostgresOrderStorage{pool: pool}
}

// Create добавляет заказ в журнал.
func (s *PostgresOrderStorage) Create(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (id, customer_id, owner_id, store_id, product_id, size, quantity, unit_price, amount, status, "timestamp")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}

	_, err := s.pool.Exec(ctx, query,
		order.ID,
		order.CustomerID,
		order.OwnerID,
		order.StoreID,
		order.ProductID,
		order.Size,
		order.Quantity,
		order.UnitPrice,
		order.Amount,
		order.Status,
		order.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

// ListByStoreAndStatus возвращает заказы магазина в статусе status за период
// вместе с названием, описанием и картинкой товара.
func (s *PostgresOrderStorage) ListByStoreAndStatus(ctx context.Context, storeID uuid.UUID, status models.OrderStatus, from, to time.Time) ([]*models.OrderView, error) {
	query := `
		SELECT o.id, COALESCE(p.name, ''), COALESCE(p.description, ''), COALESCE(p.image, ''),
			o.size, o.quantity, o.unit_price, o.amount, o.status
		FROM orders o
		LEFT JOIN products p ON p.id = o.product_id
		WHERE o.store_id = $1
			AND o.status = $2
			AND o."timestamp" >= $3
			AND o."timestamp" <= $4
		ORDER BY o."timestamp" ASC
	`

	rows, err := s.pool.Query(ctx, query, storeID, status, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query store orders: %w", err)
	}
	defer rows.Close()

	orders := []*models.OrderView{}
	for rows.Next() {
		var o models.OrderView
		err := rows.Scan(
			&o.ID,
			&o.Name,
			&o.Description,
			&o.Image,
			&o.Size,
			&o.Quantity,
			&o.UnitPrice,
			&o.Amount,
			&o.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, &o)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}

	return orders, nil
}

// UpdateStatus меняет статус заказа.
func (s *PostgresOrderStorage) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	query := `UPDATE orders SET status = $1 WHERE id = $2`

	result, err := s.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return nil
}
