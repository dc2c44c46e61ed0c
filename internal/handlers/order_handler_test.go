package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/emonterozo/MilkteaBackend/internal/models"
	"github.com/emonterozo/MilkteaBackend/internal/services"
	"github.com/emonterozo/MilkteaBackend/internal/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestOrderHandler_AddOrder(t *testing.T) {
	body := fmt.Sprintf(`{"owner":%q,"store":%q,"product":%q,"size":"Large","quantity":2,"price":"130","amount":"260","timestamp":"2024-05-01T09:00:00Z"}`,
		uuid.New(), uuid.New(), uuid.New())

	tests := []struct {
		name           string
		body           string
		mockService    *mockOrderService
		expectedStatus int
	}{
		{
			name: "created",
			body: body,
			mockService: &mockOrderService{
				AddOrderFunc: func(ctx context.Context, req models.AddOrderRequest) (*models.Order, error) {
					if !req.Amount.Equal(decimal.NewFromInt(260)) || req.Quantity != 2 {
						return nil, errors.New("unexpected request")
					}
					return &models.Order{ID: uuid.New(), Status: models.OrderStatusProcessing}, nil
				},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid JSON",
			body:           `{"owner":`,
			mockService:    &mockOrderService{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "validation error",
			body: body,
			mockService: &mockOrderService{
				AddOrderFunc: func(ctx context.Context, req models.AddOrderRequest) (*models.Order, error) {
					return nil, fmt.Errorf("%w: quantity: must be no less than 1", services.ErrInvalidRequest)
				},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "internal error",
			body: body,
			mockService: &mockOrderService{
				AddOrderFunc: func(ctx context.Context, req models.AddOrderRequest) (*models.Order, error) {
					return nil, errors.New("database error")
				},
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(http.MethodPost, "/store/add_order", tt.body)

			err := NewOrderHandler(tt.mockService).AddOrder(c)
			if status := statusOf(err, rec); status != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, status)
			}
		})
	}
}

func TestOrderHandler_ListOrders(t *testing.T) {
	store := uuid.New()

	t.Run("query forwarded", func(t *testing.T) {
		svc := &mockOrderService{
			ListOrdersFunc: func(ctx context.Context, storeID uuid.UUID, status models.OrderStatus, day string) ([]*models.OrderView, error) {
				if storeID != store || status != models.OrderStatusCompleted || day != "2024-05-01" {
					return nil, errors.New("unexpected query")
				}
				return []*models.OrderView{{ID: uuid.New(), Name: "Taro"}}, nil
			},
		}

		c, rec := newContext(http.MethodGet, "/store/orders?store="+store.String()+"&status=Completed&timestamp=2024-05-01", "")
		if err := NewOrderHandler(svc).ListOrders(c); err != nil {
			t.Fatalf("ListOrders() error = %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", rec.Code)
		}
	})

	t.Run("invalid store id", func(t *testing.T) {
		c, rec := newContext(http.MethodGet, "/store/orders?store=123&status=Completed&timestamp=2024-05-01", "")
		err := NewOrderHandler(&mockOrderService{}).ListOrders(c)
		if status := statusOf(err, rec); status != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", status)
		}
	})
}

func TestOrderHandler_UpdateOrder(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{name: "updated", expectedStatus: http.StatusOK},
		{name: "not found", err: storage.ErrOrderNotFound, expectedStatus: http.StatusNotFound},
		{name: "invalid status", err: services.ErrInvalidRequest, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockOrderService{
				UpdateOrderFunc: func(ctx context.Context, req models.UpdateOrderRequest) error {
					return tt.err
				},
			}
			c, rec := newContext(http.MethodPost, "/store/update_order", fmt.Sprintf(`{"order":%q,"status":"Completed"}`, uuid.New()))

			err := NewOrderHandler(svc).UpdateOrder(c)
			if status := statusOf(err, rec); status != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, status)
			}
		})
	}
}
