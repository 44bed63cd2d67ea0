package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/hardware_shop_erp/internal/core/ports/repositories"
	"github.com/SscSPs/hardware_shop_erp/internal/core/services"
	"github.com/SscSPs/hardware_shop_erp/internal/handlers"
	"github.com/SscSPs/hardware_shop_erp/internal/middleware"
	"github.com/SscSPs/hardware_shop_erp/internal/platform/config"
	"github.com/SscSPs/hardware_shop_erp/internal/repositories/database/pgsql"
	"github.com/SscSPs/hardware_shop_erp/internal/repositories/memory"
	"github.com/SscSPs/hardware_shop_erp/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// @title Hardware Shop ERP API
// @version 1.0
// @description Inventory and sales backend: catalog, parties, purchases, sales, payments and derived stock.

// @host localhost:8080
// @BasePath /
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Quantities and money go out as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	repos, closeStore := setupStore(cfg, logger)
	defer closeStore()

	container := services.NewServiceContainer(repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}

	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	limiterInstance, err := middleware.NewRateLimiter(cfg.RateLimit, newRedisClient(cfg, logger))
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, middleware.RateLimit(limiterInstance))

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store", cfg.StoreDriver))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setupStore builds the repository provider for the configured driver and
// returns a function releasing its resources.
func setupStore(cfg *config.Config, logger *slog.Logger) (repositories.RepositoryProvider, func()) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.Warn("Using in-memory store; data is lost on restart")
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Database migrations failed", slog.String("error", err.Error()))
		dbPool.Close()
		os.Exit(1)
	}

	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }
}

// newRedisClient returns nil when REDIS_URL is unset or unreachable, which
// keeps rate limit counters in process memory.
func newRedisClient(cfg *config.Config, logger *slog.Logger) *redis.Client {
	if cfg.RedisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Warn("Invalid REDIS_URL, using in-memory rate limiting", slog.String("error", err.Error()))
		return nil
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unreachable, using in-memory rate limiting", slog.String("error", err.Error()))
		_ = client.Close()
		return nil
	}

	logger.Info("Rate limiting backed by Redis")
	return client
}
