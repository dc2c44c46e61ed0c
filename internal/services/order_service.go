package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/emonterozo/MilkteaBackend/internal/calendar"
	"github.com/emonterozo/MilkteaBackend/internal/models"
	"github.com/emonterozo/MilkteaBackend/internal/storage"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// OrderService определяет интерфейс работы с заказами магазина.
type OrderService interface {
	AddOrder(ctx context.Context, req models.AddOrderRequest) (*models.Order, error)
	ListOrders(ctx context.Context, storeID uuid.UUID, status models.OrderStatus, day string) ([]*models.OrderView, error)
	UpdateOrder(ctx context.Context, req models.UpdateOrderRequest) error
}

// OrderServiceImpl реализует OrderService.
type OrderServiceImpl struct {
	orderStorage storage.OrderStorage
}

// NewOrderService создаёт новый сервис заказов.
func NewOrderService(orderStorage storage.OrderStorage) *OrderServiceImpl {
	return &OrderServiceImpl{orderStorage: orderStorage}
}

// AddOrder записывает продажу в журнал в статусе Processing.
// Amount сохраняется как передан кассой.
func (s *OrderServiceImpl) AddOrder(ctx context.Context, req models.AddOrderRequest) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, invalid(err)
	}

	order := &models.Order{
		ID:        uuid.New(),
		OwnerID:   req.Owner,
		StoreID:   req.Store,
		ProductID: req.Product,
		Size:      req.Size,
		Quantity:  req.Quantity,
		UnitPrice: req.Price,
		Amount:    req.Amount,
		Status:    models.OrderStatusProcessing,
		Timestamp: req.Timestamp.UTC(),
	}

	if err := s.orderStorage.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// ListOrders возвращает заказы магазина в статусе status за календарный день day.
// Некорректная дата даёт пустой список.
func (s *OrderServiceImpl) ListOrders(ctx context.Context, storeID uuid.UUID, status models.OrderStatus, day string) ([]*models.OrderView, error) {
	if err := validation.Validate(status, validation.Required, validation.In(models.OrderStatuses...)); err != nil {
		return nil, invalid(fmt.Errorf("status: %w", err))
	}

	rng := calendar.DayRange(day)
	if !rng.Valid() {
		return []*models.OrderView{}, nil
	}

	from, to := rng.Bounds()
	orders, err := s.orderStorage.ListByStoreAndStatus(ctx, storeID, status, from, to)
	if err != nil {
		return nil, fmt.Errorf("list store orders: %w", err)
	}
	return orders, nil
}

// UpdateOrder меняет статус заказа.
func (s *OrderServiceImpl) UpdateOrder(ctx context.Context, req models.UpdateOrderRequest) error {
	if err := req.Validate(); err != nil {
		return invalid(err)
	}

	if err := s.orderStorage.UpdateStatus(ctx, req.Order, req.Status); err != nil {
		if errors.Is(err, storage.ErrOrderNotFound) {
			return storage.ErrOrderNotFound
		}
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}
