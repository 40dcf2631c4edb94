package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"portfolio_backend/database"
	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/config"
	"portfolio_backend/internal/handlers"
	"portfolio_backend/internal/idempotency"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/middleware"
	"portfolio_backend/internal/routes"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/storage"
	"portfolio_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Dependencies - внешние ресурсы, которые собирает Run (или тест)
type Dependencies struct {
	DB      *gorm.DB
	Storage storage.Storage
	Tokens  *auth.TokenManager
	// IdempotencyCache - nil отключает защиту повторных create
	IdempotencyCache idempotency.Cache
}

// Run поднимает HTTP сервер и останавливает его при отмене ctx
func Run(ctx context.Context, cfg *config.Config) error {
	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Open(cfg.Database, cfg.Server.Env)
	if err != nil {
		return err
	}
	defer database.Close(gormDB)
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	store, err := storage.NewStorage(cfg.Storage)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	logger.Info("Storage initialized", "type", store.Provider())

	deps := Dependencies{
		DB:      gormDB,
		Storage: store,
		Tokens:  auth.NewTokenManager(cfg.JWT),
	}
	if cfg.JWT.Secret == "" {
		logger.Warn("JWT secret is empty: every mutating request will be rejected")
	}

	cache, redisClient := idempotency.NewRedisCache(cfg.Redis)
	if redisClient != nil {
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("Redis unavailable, idempotency keys will be ignored until it recovers", "error", err)
		}
		deps.IdempotencyCache = cache
		logger.Info("Idempotency cache enabled", "addr", cfg.Redis.Addr)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           SetupRouter(cfg, deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server startup error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return <-errCh
}

// Migrate создает схему и строку personal info
func Migrate(cfg *config.Config) error {
	gormDB, err := database.Open(cfg.Database, cfg.Server.Env)
	if err != nil {
		return err
	}
	defer database.Close(gormDB)

	if err := database.AutoMigrate(gormDB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Info("Migration completed")
	return nil
}

func SetupRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	v := validator.New()

	serviceContainer := services.NewServiceContainer(cfg, deps.Storage, deps.Tokens, v)

	var guard *idempotency.Guard
	if deps.IdempotencyCache != nil {
		guard = idempotency.NewGuard(
			deps.IdempotencyCache,
			time.Duration(cfg.Redis.IdempotencyTTL)*time.Second,
			idempotency.WithPendingTTL(time.Duration(cfg.Redis.PendingTTL)*time.Second),
		)
	}

	base := handlers.NewBaseHandler(v, middleware.AuthMiddleware(deps.Tokens, cfg.JWT.CookieName))
	appHandlers := handlers.NewAppHandlers(base, serviceContainer, guard, cfg.Upload.MaxSize)

	ginRouter := initializeGinRouter(cfg, deps.DB)

	opts := routes.Options{Swagger: cfg.Server.Env != "production"}
	if local, ok := deps.Storage.(*storage.LocalStorage); ok {
		opts.FilesRoot = local.BasePath()
		opts.FilesPath = storage.PublicFilesPath
	}
	routes.RegisterRoutes(ginRouter, appHandlers, opts)

	return ginRouter
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router
}
