package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sareeMarket/app/echo-server/router"
	"sareeMarket/business/auth"
	"sareeMarket/business/cart"
	"sareeMarket/business/catalog"
	"sareeMarket/business/orders"
	"sareeMarket/internal/middleware"
	"sareeMarket/internal/repository/jsonfile"
	"sareeMarket/internal/rest"
	"sareeMarket/pkg/config"
	"sareeMarket/pkg/logger"
	"sareeMarket/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting SareeMarket", "version", cfg.App.Version)

	store, err := jsonfile.Open(cfg.Store.DataFile)
	if err != nil {
		logger.Fatal("Failed to open data store", "error", err)
	}

	logger.Info("Data store ready", "file", cfg.Store.DataFile)

	metrics.Init()

	// Init validate
	validate := validator.New()

	// Init service
	authService := auth.NewAuthService(store, validate, cfg.JWT.SecretKey, cfg.Admin.Mobiles)
	catalogService := catalog.NewCatalogService(store)
	cartService := cart.NewCartService(store)
	ordersService := orders.NewOrdersService(store, validate)

	if err := seedProducts(store); err != nil {
		logger.Fatal("Failed to seed products", "error", err)
	}

	// Init handler
	authHandler := rest.NewAuthHandler(authService)
	productHandler := rest.NewProductHandler(catalogService)
	cartHandler := rest.NewCartHandler(cartService)
	ordersHandler := rest.NewOrdersHandler(ordersService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, middleware.HeaderAdminSecret},
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddleware(cfg.JWT.SecretKey)
	adminOnly := middleware.AdminCheck(cfg.Admin.Secret, cfg.JWT.SecretKey)

	// Setup routes
	api := e.Group("/api")
	router.SetupAuthRoutes(api, authHandler)
	router.SetupProductRoutes(api, productHandler, adminOnly)
	router.SetupCartRoutes(api, cartHandler, authRequired)
	router.SetupOrderRoutes(api, ordersHandler, authRequired, adminOnly)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
