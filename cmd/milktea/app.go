package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/emonterozo/MilkteaBackend/internal/auth"
	"github.com/emonterozo/MilkteaBackend/internal/config"
	"github.com/emonterozo/MilkteaBackend/internal/handlers"
	"github.com/emonterozo/MilkteaBackend/internal/logging"
	"github.com/emonterozo/MilkteaBackend/internal/migrations"
	"github.com/emonterozo/MilkteaBackend/internal/sales"
	"github.com/emonterozo/MilkteaBackend/internal/services"
	"github.com/emonterozo/MilkteaBackend/internal/storage"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

// App структура для управления приложением и его зависимостями.
type App struct {
	cfg    *config.Config
	dbPool *pgxpool.Pool
	echo   *echo.Echo

	// Handlers
	userHandler      *handlers.UserHandler
	storeHandler     *handlers.StoreHandler
	productHandler   *handlers.ProductHandler
	orderHandler     *handlers.OrderHandler
	dashboardHandler *handlers.DashboardHandler
}

// NewApp создаёт и инициализирует новое приложение.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{
		cfg: cfg,
	}

	if err := app.initDatabase(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	app.initDependencies()
	app.initServer()

	return app, nil
}

// initDatabase инициализирует подключение к базе данных и выполняет миграции.
func (app *App) initDatabase(ctx context.Context) error {
	if app.cfg.DatabaseURI == "" {
		return fmt.Errorf("DATABASE_URI is required")
	}

	log.Info().Msg("Running database migrations")
	sqlDB, err := sql.Open("pgx", app.cfg.DatabaseURI)
	if err != nil {
		return fmt.Errorf("unable to open database connection: %w", err)
	}
	defer sqlDB.Close()

	if err := migrations.Run(ctx, sqlDB); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if version, err := migrations.Version(ctx, sqlDB); err == nil {
		log.Info().Int64("version", version).Msg("Migrations completed")
	}

	dbPool, err := pgxpool.New(ctx, app.cfg.DatabaseURI)
	if err != nil {
		return fmt.Errorf("unable to connect to database: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return fmt.Errorf("unable to ping database: %w", err)
	}

	app.dbPool = dbPool
	log.Info().Msg("Connected to database")

	return nil
}

// initDependencies собирает storage, движок продаж, сервисы и хендлеры.
func (app *App) initDependencies() {
	// Storage layer
	userStorage := storage.NewPostgresUserStorage(app.dbPool)
	storeStorage := storage.NewPostgresStoreStorage(app.dbPool)
	productStorage := storage.NewPostgresProductStorage(app.dbPool)
	orderStorage := storage.NewPostgresOrderStorage(app.dbPool)
	salesStorage := storage.NewPostgresSalesStorage(app.dbPool)

	engine := sales.NewEngine(salesStorage, salesStorage)

	// Service layer
	userService := services.NewUserService(userStorage, app.cfg.JWTSecret, app.cfg.TokenExpiration)
	storeService := services.NewStoreService(storeStorage, productStorage, app.cfg.JWTSecret, app.cfg.TokenExpiration)
	productService := services.NewProductService(productStorage)
	orderService := services.NewOrderService(orderStorage)
	dashboardService := services.NewDashboardService(engine, salesStorage, storeStorage)

	// Handler layer
	app.userHandler = handlers.NewUserHandler(userService)
	app.storeHandler = handlers.NewStoreHandler(storeService)
	app.productHandler = handlers.NewProductHandler(productService)
	app.orderHandler = handlers.NewOrderHandler(orderService)
	app.dashboardHandler = handlers.NewDashboardHandler(dashboardService)
}

// initServer инициализирует HTTP-сервер и настраивает маршруты.
func (app *App) initServer() {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(logging.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
	}))

	// Публичные маршруты (не требуют аутентификации)
	e.POST("/seller/register", app.userHandler.Register)
	e.POST("/seller/login", app.userHandler.Login)
	e.POST("/seller/social", app.userHandler.SocialLogin)
	e.POST("/store/login", app.storeHandler.Login)

	// Маршруты продавца
	seller := e.Group("/seller")
	seller.Use(auth.JWTMiddleware(app.cfg.JWTSecret, auth.RoleSeller))
	seller.POST("/add_store", app.storeHandler.AddStore)
	seller.GET("/stores", app.storeHandler.ListStores)
	seller.GET("/store", app.storeHandler.StoreDetails)
	seller.POST("/add_product", app.productHandler.AddProduct)
	seller.POST("/update_product", app.productHandler.UpdateProduct)
	seller.GET("/dashboard", app.dashboardHandler.OwnerDashboard)
	seller.GET("/store_sales", app.dashboardHandler.StoreSales)

	// Маршруты магазина
	store := e.Group("/store")
	store.Use(auth.JWTMiddleware(app.cfg.JWTSecret, auth.RoleStore))
	store.GET("/products", app.productHandler.ListProducts)
	store.POST("/product_availability", app.productHandler.SetAvailability)
	store.POST("/add_order", app.orderHandler.AddOrder)
	store.GET("/orders", app.orderHandler.ListOrders)
	store.POST("/update_order", app.orderHandler.UpdateOrder)
	store.POST("/rate", app.storeHandler.Rate)

	app.echo = e
}

// Start запускает HTTP-сервер.
func (app *App) Start() error {
	log.Info().Str("address", app.cfg.RunAddress).Msg("Starting server")
	if err := app.echo.Start(app.cfg.RunAddress); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped: %w", err)
	}

	return nil
}

// Shutdown корректно завершает работу приложения.
func (app *App) Shutdown(ctx context.Context) error {
	log.Info().Msg("Shutting down server")

	if err := app.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	if app.dbPool != nil {
		app.dbPool.Close()
	}

	log.Info().Msg("Server gracefully stopped")
	return nil
}
