package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/emonterozo/MilkteaBackend/internal/models"
	"github.com/emonterozo/MilkteaBackend/internal/storage"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// ProductService определяет интерфейс для работы с меню.
type ProductService interface {
	AddProduct(ctx context.Context, req models.ProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, req models.ProductRequest) error
	SetAvailability(ctx context.Context, req models.ProductAvailabilityRequest) error
	ListProducts(ctx context.Context, storeID uuid.UUID) ([]*models.Product, error)
}

// ProductServiceImpl реализует ProductService.
type ProductServiceImpl struct {
	productStorage storage.ProductStorage
}

// NewProductService создаёт новый экземпляр ProductService.
func NewProductService(productStorage storage.ProductStorage) *ProductServiceImpl {
	return &ProductServiceImpl{productStorage: productStorage}
}

// AddProduct добавляет товар со стандартным прайс-листом.
func (s *ProductServiceImpl) AddProduct(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	if err := validation.Validate(req.StoreID, validation.By(requireID)); err != nil {
		return nil, invalid(fmt.Errorf("storeId: %w", err))
	}
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}

	product := productFromRequest(req)
	product.ID = uuid.New()

	if err := s.productStorage.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// UpdateProduct перезаписывает витринные поля и прайс-лист.
func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, req models.ProductRequest) error {
	if err := validation.Validate(req.ProductID, validation.By(requireID)); err != nil {
		return invalid(fmt.Errorf("productId: %w", err))
	}
	if err := req.Validate(); err != nil {
		return invalid(err)
	}

	product := productFromRequest(req)
	product.ID = req.ProductID

	if err := s.productStorage.Update(ctx, product); err != nil {
		if errors.Is(err, storage.ErrProductNotFound) {
			return storage.ErrProductNotFound
		}
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// SetAvailability включает или выключает товар.
func (s *ProductServiceImpl) SetAvailability(ctx context.Context, req models.ProductAvailabilityRequest) error {
	if err := req.Validate(); err != nil {
		return invalid(err)
	}

	if err := s.productStorage.SetAvailability(ctx, req.Product, req.Available); err != nil {
		if errors.Is(err, storage.ErrProductNotFound) {
			return storage.ErrProductNotFound
		}
		return fmt.Errorf("failed to set availability: %w", err)
	}
	return nil
}

// ListProducts возвращает меню магазина.
func (s *ProductServiceImpl) ListProducts(ctx context.Context, storeID uuid.UUID) ([]*models.Product, error) {
	products, err := s.productStorage.ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func productFromRequest(req models.ProductRequest) *models.Product {
	return &models.Product{
		StoreID:     req.StoreID,
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Available:   req.Available,
		PriceList:   models.StandardPriceList(req.Small, req.Medium, req.Large),
	}
}

var errMissingID = errors.New("is required")

func requireID(value interface{}) error {
	if id, ok := value.(uuid.UUID); !ok || id == uuid.Nil {
		return errMissingID
	}
	return nil
}
