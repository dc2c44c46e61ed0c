package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/emonterozo/MilkteaBackend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductStorage определяет интерфейс для работы с товарами.
type ProductStorage interface {
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*models.Product, error)
}

// PostgresProductStorage реализует ProductStorage для PostgreSQL.
type PostgresProductStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresProductStorage создаёт новый экземпляр PostgresProductStorage.
func NewPostgresProductStorage(pool *pgxpool.Pool) *PostgresProductStorage {
	return &PostgresProductStorage{pool: pool}
}

// Create добавляет товар в меню магазина. Прайс-лист хранится в JSONB.
func (s *PostgresProductStorage) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (id, store_id, name, description, image, available, price_list)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}

	_, err := s.pool.Exec(ctx, query,
		product.ID,
		product.StoreID,
		product.Name,
		product.Description,
		product.Image,
		product.Available,
		product.PriceList,
	)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// Update перезаписывает витринные поля и прайс-лист товара.
func (s *PostgresProductStorage) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products
		SET name = $1, description = $2, image = $3, available = $4, price_list = $5
		WHERE id = $6
	`

	result, err := s.pool.Exec(ctx, query,
		product.Name,
		product.Description,
		product.Image,
		product.Available,
		product.PriceList,
		product.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// SetAvailability включает или выключает товар.
func (s *PostgresProductStorage) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	result, err := s.pool.Exec(ctx, `UPDATE products SET available = $1 WHERE id = $2`, available, id)
	if err != nil {
		return fmt.Errorf("failed to update product availability: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// ListByStore возвращает меню магазина.
func (s *PostgresProductStorage) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*models.Product, error) {
	query := `
		SELECT id, store_id, name, description, image, available, price_list
		FROM products
		WHERE store_id = $1
		ORDER BY name
	`

	rows, err := s.pool.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query store products: %w", err)
	}
	defer rows.Close()

	products := []*models.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}

	return products, nil
}

func scanProduct(row pgx.Row) (*models.Product, error) {
	product := &models.Product{}
	err := row.Scan(
		&product.ID,
		&product.StoreID,
		&product.Name,
		&product.Description,
		&product.Image,
		&product.Available,
		&product.PriceList,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}
	return product, nil
}
