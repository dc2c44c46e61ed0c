package storage

import (
	"context"

	"github.com/emonterozo/MilkteaBackend/internal/models"
	"github.com/google/uuid"
)

// MockStoreStorage - мок для тестов.
type MockStoreStorage struct {
	CreateFunc        func(ctx context.Context, store *models.Store) error
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*models.Store, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*models.Store, error)
	ListByOwnerFunc   func(ctx context.Context, ownerID uuid.UUID) ([]*models.Store, error)
	CountByOwnerFunc  func(ctx context.Context, ownerID uuid.UUID) (int64, error)
	RateFunc          func(ctx context.Context, storeID uuid.UUID, customer string, rate int) error
}

func (m *MockStoreStorage) Create(ctx context.Context, store *models.Store) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, store)
	}
	return nil
}

func (m *MockStoreStorage) GetByID(ctx context.Context, id uuid.UUID) (*models.Store, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, ErrStoreNotFound
}

func (m *MockStoreStorage) GetByUsername(ctx context.Context, username string) (*models.Store, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, ErrStoreNotFound
}

func (m *MockStoreStorage) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Store, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return []*models.Store{}, nil
}

func (m *MockStoreStorage) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	if m.CountByOwnerFunc != nil {
		return m.CountByOwnerFunc(ctx, ownerID)
	}
	return 0, nil
}

func (m *MockStoreStorage) Rate(ctx context.Context, storeID uuid.UUID, customer string, rate int) error {
	if m.RateFunc != nil {
		return m.RateFunc(ctx, storeID, customer, rate)
	}
	return nil
}
