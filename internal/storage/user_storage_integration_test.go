//go:build integration
// +build integration

package storage

import (
	"context"
	"os"
	"testing"

	"github.com/emonterozo/MilkteaBackend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func getTestDBPool(t *testing.T) *pgxpool.Pool {
	dbURI := os.Getenv("DATABASE_URI")
	if dbURI == "" {
		t.Skip("DATABASE_URI not set, skipping integration tests")
	}

	pool, err := pgxpool.New(context.Background(), dbURI)
	if err != nil {
		t.Fatalf("Unable to connect to database: %v", err)
	}

	return pool
}

func createTestUser(t *testing.T, s *PostgresUserStorage) *models.User {
	t.Helper()
	hash := "hashed_password"
	user := &models.User{
		ID:           uuid.New(),
		Name:         "Seller",
		Email:        "seller_" + uuid.New().String() + "@example.com",
		PasswordHash: &hash,
		Provider:     models.ProviderEmail,
	}
	if err := s.Create(context.Background(), user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return user
}

func TestPostgresUserStorage_Create(t *testing.T) {
	pool := getTestDBPool(t)
	defer pool.Close()

	storage := NewPostgresUserStorage(pool)
	ctx := context.Background()

	t.Run("successful create", func(t *testing.T) {
		user := createTestUser(t, storage)

		retrieved, err := storage.GetByEmail(ctx, user.Email)
		if err != nil {
			t.Fatalf("GetByEmail() error = %v", err)
		}

		if retrieved.ID != user.ID {
			t.Errorf("ID mismatch: got %v, want %v", retrieved.ID, user.ID)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		user := createTestUser(t, storage)

		hash := "hash2"
		dup := &models.User{
			ID:           uuid.New(),
			Email:        user.Email,
			PasswordHash: &hash,
			Provider:     models.ProviderEmail,
		}

		if err := storage.Create(ctx, dup); err != ErrEmailExists {
			t.Errorf("Expected ErrEmailExists, got %v", err)
		}
	})
}

func TestPostgresUserStorage_GetByIdentifier(t *testing.T) {
	pool := getTestDBPool(t)
	defer pool.Close()

	storage := NewPostgresUserStorage(pool)
	ctx := context.Background()

	identifier := uuid.New().String()
	user := &models.User{
		ID:         uuid.New(),
		Name:       "Social Seller",
		Email:      "social_" + identifier + "@example.com",
		Provider:   "google",
		Identifier: &identifier,
	}
	if err := storage.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("existing user", func(t *testing.T) {
		retrieved, err := storage.GetByIdentifier(ctx, "google", identifier)
		if err != nil {
			t.Fatalf("GetByIdentifier() error = %v", err)
		}
		if retrieved.ID != user.ID {
			t.Errorf("ID mismatch: got %v, want %v", retrieved.ID, user.ID)
		}
	})

	t.Run("non-existing user", func(t *testing.T) {
		_, err := storage.GetByIdentifier(ctx, "google", "missing")
		if err != ErrUserNotFound {
			t.Errorf("Expected ErrUserNotFound, got %v", err)
		}
	})
}
