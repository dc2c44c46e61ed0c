package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/emonterozo/MilkteaBackend/internal/auth"
	"github.com/emonterozo/MilkteaBackend/internal/models"
	"github.com/emonterozo/MilkteaBackend/internal/storage"
	"github.com/google/uuid"
)

// StoreService определяет интерфейс для работы с магазинами.
type StoreService interface {
	AddStore(ctx context.Context, req models.AddStoreRequest) (*models.Store, error)
	ListStores(ctx context.Context, ownerID uuid.UUID) ([]*models.Store, error)
	StoreDetails(ctx context.Context, storeID uuid.UUID) (*models.StoreDetails, error)
	Login(ctx context.Context, req models.StoreLoginRequest) (*models.StoreAuthResponse, error)
	Rate(ctx context.Context, req models.RateStoreRequest) error
}

// StoreServiceImpl реализует StoreService.
type StoreServiceImpl struct {
	storeStorage   storage.StoreStorage
	productStorage storage.ProductStorage
	tokens         tokenIssuer
}

// NewStoreService создаёт новый экземпляр StoreService.
func NewStoreService(storeStorage storage.StoreStorage, productStorage storage.ProductStorage, jwtSecret string, tokenExpiration time.Duration) *StoreServiceImpl {
	return &StoreServiceImpl{
		storeStorage:   storeStorage,
		productStorage: productStorage,
		tokens:         tokenIssuer{secret: jwtSecret, expiration: tokenExpiration},
	}
}

// AddStore создаёт магазин продавца с пустой гистограммой оценок.
func (s *StoreServiceImpl) AddStore(ctx context.Context, req models.AddStoreRequest) (*models.Store, error) {
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, invalid(err)
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	store := &models.Store{
		ID:            uuid.New(),
		OwnerID:       req.Owner,
		Username:      req.Username,
		PasswordHash:  passwordHash,
		Banner:        req.Banner,
		Name:          req.StoreName,
		ContactNumber: req.StoreContactNumber,
		Address:       req.StoreAddress,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
	}

	if err := s.storeStorage.Create(ctx, store); err != nil {
		if errors.Is(err, storage.ErrUsernameExists) {
			return nil, storage.ErrUsernameExists
		}
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return store, nil
}

// ListStores возвращает магазины продавца.
func (s *StoreServiceImpl) ListStores(ctx context.Context, ownerID uuid.UUID) ([]*models.Store, error) {
	stores, err := s.storeStorage.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	return stores, nil
}

// StoreDetails возвращает магазин вместе с меню.
func (s *StoreServiceImpl) StoreDetails(ctx context.Context, storeID uuid.UUID) (*models.StoreDetails, error) {
	store, err := s.storeStorage.GetByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, storage.ErrStoreNotFound) {
			return nil, storage.ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to get store: %w", err)
	}

	products, err := s.productStorage.ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return &models.StoreDetails{Store: store, Products: products}, nil
}

// Login аутентифицирует кассира магазина.
func (s *StoreServiceImpl) Login(ctx context.Context, req models.StoreLoginRequest) (*models.StoreAuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}

	store, err := s.storeStorage.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrStoreNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get store: %w", err)
	}

	if !auth.CheckPassword(req.Password, store.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.issue(auth.StorePrincipal(store))
	if err != nil {
		return nil, err
	}

	return &models.StoreAuthResponse{Store: store, Token: token}, nil
}

// Rate записывает оценку покупателя.
func (s *StoreServiceImpl) Rate(ctx context.Context, req models.RateStoreRequest) error {
	if err := req.Validate(); err != nil {
		return invalid(err)
	}

	if err := s.storeStorage.Rate(ctx, req.Store, req.Customer, req.Rate); err != nil {
		if errors.Is(err, storage.ErrStoreNotFound) {
			return storage.ErrStoreNotFound
		}
		return fmt.Errorf("failed to rate store: %w", err)
	}
	return nil
}
