package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/emonterozo/MilkteaBackend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrStoreNotFound  = errors.New("store not found")
	ErrUsernameExists = errors.New("username already exists")
)

// StoreStorage определяет интерфейс для работы с магазинами.
type StoreStorage interface {
	Create(ctx context.Context, store *models.Store) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Store, error)
	GetByUsername(ctx context.Context, username string) (*models.Store, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Store, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	Rate(ctx context.Context, storeID uuid.UUID, customer string, rate int) error
}

// PostgresStoreStorage реализует StoreStorage для PostgreSQL.
type PostgresStoreStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresStoreStorage создаёт новый экземпляр PostgresStoreStorage.
func NewPostgresStoreStorage(pool *pgxpool.Pool) *PostgresStoreStorage {
	return &PostgresStoreStorage{pool: pool}
}

const storeColumns = `id, owner_id, username, password_hash, banner, store_name,
	store_contact_number, store_address, latitude, longitude, created_at`

// Create создаёт магазин. Имя пользователя магазина уникально.
func (s *PostgresStoreStorage) Create(ctx context.Context, store *models.Store) error {
	query := `
		INSERT INTO stores (` + storeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING created_at
	`

	if store.ID == uuid.Nil {
		store.ID = uuid.New()
	}

	err := s.pool.QueryRow(ctx, query,
		store.ID,
		store.OwnerID,
		store.Username,
		store.PasswordHash,
		store.Banner,
		store.Name,
		store.ContactNumber,
		store.Address,
		store.Latitude,
		store.Longitude,
	).Scan(&store.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return ErrUsernameExists
		}
		return fmt.Errorf("failed to create store: %w", err)
	}

	store.Ratings = models.EmptyRatings()
	store.RateBy = []models.CustomerRating{}
	return nil
}

// GetByID возвращает магазин вместе с оценками.
func (s *PostgresStoreStorage) GetByID(ctx context.Context, id uuid.UUID) (*models.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE id = $1`
	return s.getOne(ctx, query, id)
}

// GetByUsername возвращает магазин по имени пользователя.
func (s *PostgresStoreStorage) GetByUsername(ctx context.Context, username string) (*models.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE username = $1`
	return s.getOne(ctx, query, username)
}

func (s *PostgresStoreStorage) getOne(ctx context.Context, query string, arg any) (*models.Store, error) {
	store, err := scanStore(s.pool.QueryRow(ctx, query, arg))
	if err != nil {
		return nil, err
	}

	if err := s.loadRatings(ctx, []*models.Store{store}); err != nil {
		return nil, err
	}
	return store, nil
}

// ListByOwner возвращает магазины продавца.
func (s *PostgresStoreStorage) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE owner_id = $1 ORDER BY created_at`

	rows, err := s.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query owner stores: %w", err)
	}
	defer rows.Close()

	stores := []*models.Store{}
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			return nil, err
		}
		stores = append(stores, store)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}

	if err := s.loadRatings(ctx, stores); err != nil {
		return nil, err
	}
	return stores, nil
}

// CountByOwner возвращает число магазинов продавца.
func (s *PostgresStoreStorage) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM stores WHERE owner_id = $1`, ownerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count stores: %w", err)
	}
	return count, nil
}

// Rate записывает оценку покупателя. Повторная оценка того же покупателя заменяет прежнюю.
func (s *PostgresStoreStorage) Rate(ctx context.Context, storeID uuid.UUID, customer string, rate int) error {
	query := `
		INSERT INTO store_ratings (store_id, customer, rate, rated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (store_id, customer) DO UPDATE SET rate = EXCLUDED.rate, rated_at = NOW()
	`

	_, err := s.pool.Exec(ctx, query, storeID, customer, rate)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return ErrStoreNotFound
		}
		return fmt.Errorf("failed to rate store: %w", err)
	}
	return nil
}

// loadRatings заполняет rate_by и гистограмму оценок одним запросом на все магазины.
func (s *PostgresStoreStorage) loadRatings(ctx context.Context, stores []*models.Store) error {
	if len(stores) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*models.Store, len(stores))
	ids := make([]string, 0, len(stores))
	for _, st := range stores {
		st.RateBy = []models.CustomerRating{}
		byID[st.ID] = st
		ids = append(ids, st.ID.String())
	}

	rows, err := s.pool.Query(ctx, `
		SELECT store_id, customer, rate
		FROM store_ratings
		WHERE store_id = ANY($1::uuid[])
		ORDER BY rated_at
	`, ids)
	if err != nil {
		return fmt.Errorf("failed to query store ratings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			storeID uuid.UUID
			r       models.CustomerRating
		)
		if err := rows.Scan(&storeID, &r.Customer, &r.Rate); err != nil {
			return fmt.Errorf("failed to scan store rating: %w", err)
		}
		if st, ok := byID[storeID]; ok {
			st.RateBy = append(st.RateBy, r)
		}
	}

	if rows.Err() != nil {
		return fmt.Errorf("rows error: %w", rows.Err())
	}

	for _, st := range stores {
		st.Ratings = models.RatingHistogram(st.RateBy)
	}
	return nil
}

func scanStore(row pgx.Row) (*models.Store, error) {
	store := &models.Store{}
	err := row.Scan(
		&store.ID,
		&store.OwnerID,
		&store.Username,
		&store.PasswordHash,
		&store.Banner,
		&store.Name,
		&store.ContactNumber,
		&store.Address,
		&store.Latitude,
		&store.Longitude,
		&store.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to scan store: %w", err)
	}
	return store, nil
}
