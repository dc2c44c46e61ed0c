package storage

import (
	"context"
	"time"

	"github.com/emonterozo/MilkteaBackend/internal/models"
	"github.com/google/uuid"
)

// MockOrderStorage - мок для тестов.
type MockOrderStorage struct {
	CreateFunc               func(ctx context.Context, order *models.Order) error
	ListByStoreAndStatusFunc func(ctx context.Context, storeID uuid.UUID, status models.OrderStatus, from, to time.Time) ([]*models.OrderView, error)
	UpdateStatusFunc         func(ctx context.Context, id uuid.UUID, status models.OrderStatus) error
}

func (m *MockOrderStorage) Create(ctx context.Context, order *models.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, order)
	}
	return nil
}

func (m *MockOrderStorage) ListByStoreAndStatus(ctx context.Context, storeID uuid.UUID, status models.OrderStatus, from, to time.Time) ([]*models.OrderView, error) {
	if m.ListByStoreAndStatusFunc != nil {
		return m.ListByStoreAndStatusFunc(ctx, storeID, status, from, to)
	}
	return []*models.OrderView{}, nil
}

func (m *MockOrderStorage) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}
