package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirhossein-jamali/catalog-service/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/catalog-service/internal/domain/port/core"
	categoryUseCase "github.com/amirhossein-jamali/catalog-service/internal/domain/usecase/category"
	commentUseCase "github.com/amirhossein-jamali/catalog-service/internal/domain/usecase/comment"
	"github.com/amirhossein-jamali/catalog-service/internal/domain/usecase/editlock"
	productUseCase "github.com/amirhossein-jamali/catalog-service/internal/domain/usecase/product"
	voucherUseCase "github.com/amirhossein-jamali/catalog-service/internal/domain/usecase/voucher"

	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/catalog-service/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/catalog-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.IsProduction() || cfg.Logger.Format == "json")
	appLogger.SetLevel(coreport.ParseLogLevel(cfg.Logger.Level))
	defer appLogger.Flush()

	dbConfig := database.CreateConfigFromViperConfig(cfg)
	if err := dbConfig.Validate(); err != nil {
		appLogger.Error("Invalid database configuration", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	tp := timeProvider.NewRealTimeProvider()

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	uow := dbManager.CreateUnitOfWork()

	productLocks := editlock.NewManager(entity.KindProduct, uow, tp, appLogger)
	categoryLocks := editlock.NewManager(entity.KindCategory, uow, tp, appLogger)

	products := productUseCase.NewService(uow, productLocks, appLogger,
		cfg.Catalog.DefaultPageSize, cfg.Catalog.MaxPageSize)
	categories := categoryUseCase.NewService(uow, categoryLocks, appLogger,
		cfg.Catalog.DefaultPageSize, cfg.Catalog.MaxPageSize)
	vouchers := voucherUseCase.NewService(uow, appLogger, cfg.Catalog.VoucherCodeRetries)
	comments := commentUseCase.NewService(uow, appLogger,
		cfg.Catalog.DefaultPageSize, cfg.Catalog.MaxPageSize)

	if cfg.Catalog.SeedDemoData {
		if err := migration.SeedDemoCatalog(context.Background(), categories, products); err != nil {
			appLogger.Error("Failed to seed demo catalog", map[string]any{
				"error": err.Error(),
			})
		}
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, cfg.Server.AllowedOrigins)
	routes.SetupRoutes(router, routes.Handlers{
		ProductLocks:  handler.NewEditLockHandler(productLocks, appLogger),
		CategoryLocks: handler.NewEditLockHandler(categoryLocks, appLogger),
		Products:      handler.NewProductHandler(products, appLogger),
		Categories:    handler.NewCategoryHandler(categories, appLogger),
		Vouchers:      handler.NewVoucherHandler(vouchers, appLogger),
		Comments:      handler.NewCommentHandler(comments, appLogger),
		Health:        handler.NewHealthHandler(dbManager, appLogger),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":   server.Addr,
			"env":    cfg.Environment,
			"driver": dbManager.Driver(),
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
