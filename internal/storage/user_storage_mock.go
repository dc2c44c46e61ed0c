package storage

import (
	"context"

	"github.com/emonterozo/MilkteaBackend/internal/models"
)

// MockUserStorage - мок для тестирования (экспортируемый для использования в других пакетах)
type MockUserStorage struct {
	CreateFunc          func(ctx context.Context, user *models.User) error
	GetByEmailFunc      func(ctx context.Context, email string) (*models.User, error)
	GetByIdentifierFunc func(ctx context.Context, provider, identifier string) (*models.User, error)
}

func (m *MockUserStorage) Create(ctx context.Context, user *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserStorage) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound
}

func (m *MockUserStorage) GetByIdentifier(ctx context.Context, provider, identifier string) (*models.User, error) {
	if m.GetByIdentifierFunc != nil {
		return m.GetByIdentifierFunc(ctx, provider, identifier)
	}
	return nil, ErrUserNotFound
}
