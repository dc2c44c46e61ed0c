package storage

import (
	"context"

	"github.com/emonterozo/MilkteaBackend/internal/models"
	"github.com/google/uuid"
)

// MockProductStorage - мок для тестов.
type MockProductStorage struct {
	CreateFunc          func(ctx context.Context, product *models.Product) error
	UpdateFunc          func(ctx context.Context, product *models.Product) error
	SetAvailabilityFunc func(ctx context.Context, id uuid.UUID, available bool) error
	ListByStoreFunc     func(ctx context.Context, storeID uuid.UUID) ([]*models.Product, error)
}

func (m *MockProductStorage) Create(ctx context.Context, product *models.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, product)
	}
	return nil
}

func (m *MockProductStorage) Update(ctx context.Context, product *models.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, product)
	}
	return nil
}

func (m *MockProductStorage) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	if m.SetAvailabilityFunc != nil {
		return m.SetAvailabilityFunc(ctx, id, available)
	}
	return nil
}

func (m *MockProductStorage) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*models.Product, error) {
	if m.ListByStoreFunc != nil {
		return m.ListByStoreFunc(ctx, storeID)
	}
	return []*models.Product{}, nil
}
