package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/stockdesk/inventory-system/docs"
	"github.com/stockdesk/inventory-system/internal/api/handler"
	"github.com/stockdesk/inventory-system/internal/core/service"
	"github.com/stockdesk/inventory-system/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	// --- Dependencies ---
	authRepo := postgres.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, log)
	authHandler := handler.NewAuthHandler(authService)

	inventoryRepo := postgres.NewInventoryRepository(db)
	inventoryService := service.NewInventoryService(inventoryRepo, log)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)

	orderRepo := postgres.NewOrderRepository(db)
	orderService := service.NewOrderService(orderRepo, log)
	orderHandler := handler.NewOrderHandler(orderService)

	// --- API routes ---
	g := e.Group("/api")
	g.POST("/register", authHandler.Register)
	g.POST("/login", authHandler.Login)
	g.GET("/inventory", inventoryHandler.List)
	g.POST("/inventory", inventoryHandler.Create)
	g.PUT("/inventory/:id", inventoryHandler.Update)
	g.DELETE("/inventory/:id", inventoryHandler.Delete)
	g.GET("/orders", orderHandler.List)
	g.GET("/orders/search", orderHandler.Search)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the database up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
