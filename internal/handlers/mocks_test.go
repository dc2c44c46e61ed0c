package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/emonterozo/MilkteaBackend/internal/calendar"
	"github.com/emonterozo/MilkteaBackend/internal/models"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// newContext собирает echo.Context для вызова обработчика напрямую.
func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// statusOf возвращает код ответа: из HTTPError или из рекордера.
func statusOf(err error, rec *httptest.ResponseRecorder) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return rec.Code
}

type mockUserService struct {
	RegisterFunc    func(ctx context.Context, req models.RegisterRequest) (*models.UserAuthResponse, error)
	LoginFunc       func(ctx context.Context, req models.LoginRequest) (*models.UserAuthResponse, error)
	SocialLoginFunc func(ctx context.Context, req models.SocialLoginRequest) (*models.UserAuthResponse, error)
}

func (m *mockUserService) Register(ctx context.Context, req models.RegisterRequest) (*models.UserAuthResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return &models.UserAuthResponse{}, nil
}

func (m *mockUserService) Login(ctx context.Context, req models.LoginRequest) (*models.UserAuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return &models.UserAuthResponse{}, nil
}

func (m *mockUserService) SocialLogin(ctx context.Context, req models.SocialLoginRequest) (*models.UserAuthResponse, error) {
	if m.SocialLoginFunc != nil {
		return m.SocialLoginFunc(ctx, req)
	}
	return &models.UserAuthResponse{}, nil
}

type mockStoreService struct {
	AddStoreFunc     func(ctx context.Context, req models.AddStoreRequest) (*models.Store, error)
	ListStoresFunc   func(ctx context.Context, ownerID uuid.UUID) ([]*models.Store, error)
	StoreDetailsFunc func(ctx context.Context, storeID uuid.UUID) (*models.StoreDetails, error)
	LoginFunc        func(ctx context.Context, req models.StoreLoginRequest) (*models.StoreAuthResponse, error)
	RateFunc         func(ctx context.Context, req models.RateStoreRequest) error
}

func (m *mockStoreService) AddStore(ctx context.Context, req models.AddStoreRequest) (*models.Store, error) {
	if m.AddStoreFunc != nil {
		return m.AddStoreFunc(ctx, req)
	}
	return &models.Store{}, nil
}

func (m *mockStoreService) ListStores(ctx context.Context, ownerID uuid.UUID) ([]*models.Store, error) {
	if m.ListStoresFunc != nil {
		return m.ListStoresFunc(ctx, ownerID)
	}
	return []*models.Store{}, nil
}

func (m *mockStoreService) StoreDetails(ctx context.Context, storeID uuid.UUID) (*models.StoreDetails, error) {
	if m.StoreDetailsFunc != nil {
		return m.StoreDetailsFunc(ctx, storeID)
	}
	return &models.StoreDetails{}, nil
}

func (m *mockStoreService) Login(ctx context.Context, req models.StoreLoginRequest) (*models.StoreAuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return &models.StoreAuthResponse{}, nil
}

func (m *mockStoreService) Rate(ctx context.Context, req models.RateStoreRequest) error {
	if m.RateFunc != nil {
		return m.RateFunc(ctx, req)
	}
	return nil
}

type mockProductService struct {
	AddProductFunc      func(ctx context.Context, req models.ProductRequest) (*models.Product, error)
	UpdateProductFunc   func(ctx context.Context, req models.ProductRequest) error
	SetAvailabilityFunc func(ctx context.Context, req models.ProductAvailabilityRequest) error
	ListProductsFunc    func(ctx context.Context, storeID uuid.UUID) ([]*models.Product, error)
}

func (m *mockProductService) AddProduct(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	if m.AddProductFunc != nil {
		return m.AddProductFunc(ctx, req)
	}
	return &models.Product{}, nil
}

func (m *mockProductService) UpdateProduct(ctx context.Context, req models.ProductRequest) error {
	if m.UpdateProductFunc != nil {
		return m.UpdateProductFunc(ctx, req)
	}
	return nil
}

func (m *mockProductService) SetAvailability(ctx context.Context, req models.ProductAvailabilityRequest) error {
	if m.SetAvailabilityFunc != nil {
		return m.SetAvailabilityFunc(ctx, req)
	}
	return nil
}

func (m *mockProductService) ListProducts(ctx context.Context, storeID uuid.UUID) ([]*models.Product, error) {
	if m.ListProductsFunc != nil {
		return m.ListProductsFunc(ctx, storeID)
	}
	return []*models.Product{}, nil
}

type mockOrderService struct {
	AddOrderFunc    func(ctx context.Context, req models.AddOrderRequest) (*models.Order, error)
	ListOrdersFunc  func(ctx context.Context, storeID uuid.UUID, status models.OrderStatus, day string) ([]*models.OrderView, error)
	UpdateOrderFunc func(ctx context.Context, req models.UpdateOrderRequest) error
}

func (m *mockOrderService) AddOrder(ctx context.Context, req models.AddOrderRequest) (*models.Order, error) {
	if m.AddOrderFunc != nil {
		return m.AddOrderFunc(ctx, req)
	}
	return &models.Order{}, nil
}

func (m *mockOrderService) ListOrders(ctx context.Context, storeID uuid.UUID, status models.OrderStatus, day string) ([]*models.OrderView, error) {
	if m.ListOrdersFunc != nil {
		return m.ListOrdersFunc(ctx, storeID, status, day)
	}
	return []*models.OrderView{}, nil
}

func (m *mockOrderService) UpdateOrder(ctx context.Context, req models.UpdateOrderRequest) error {
	if m.UpdateOrderFunc != nil {
		return m.UpdateOrderFunc(ctx, req)
	}
	return nil
}

type mockDashboardService struct {
	OwnerDashboardFunc func(ctx context.Context, ownerID uuid.UUID, rng calendar.Range) (*models.OwnerDashboard, error)
	StoreDashboardFunc func(ctx context.Context, storeID uuid.UUID, yearRange, monthRange calendar.Range) (*models.StoreDashboard, error)
}

func (m *mockDashboardService) OwnerDashboard(ctx context.Context, ownerID uuid.UUID, rng calendar.Range) (*models.OwnerDashboard, error) {
	if m.OwnerDashboardFunc != nil {
		return m.OwnerDashboardFunc(ctx, ownerID, rng)
	}
	return &models.OwnerDashboard{}, nil
}

func (m *mockDashboardService) StoreDashboard(ctx context.Context, storeID uuid.UUID, yearRange, monthRange calendar.Range) (*models.StoreDashboard, error) {
	if m.StoreDashboardFunc != nil {
		return m.StoreDashboardFunc(ctx, storeID, yearRange, monthRange)
	}
	return nil, nil
}
