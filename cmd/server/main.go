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
	"time"

	"github.com/nutriplan/backend/config"
	httpDelivery "github.com/nutriplan/backend/internal/delivery/http"
	"github.com/nutriplan/backend/internal/domain"
	"github.com/nutriplan/backend/internal/infrastructure/cache"
	"github.com/nutriplan/backend/internal/infrastructure/postgres"
	"github.com/nutriplan/backend/internal/logger"
	"github.com/nutriplan/backend/internal/metrics"
	"github.com/nutriplan/backend/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Server.Environment, cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync(zl)

	if err := run(cfg, zl); err != nil {
		zl.Error("server exited with error", zap.Error(err))
		logger.Sync(zl)
		os.Exit(1)
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	zl.Info("starting NutriPlan backend",
		zap.String("version", httpDelivery.Version),
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("cache_type", cfg.Cache.Type),
		zap.Duration("cache_ttl", cfg.Cache.TTL),
		zap.Bool("profiles_enabled", cfg.ProfilesEnabled()))

	metrics.Register()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize infrastructure dependencies
	profileCache, closeCache, err := newCache(ctx, cfg, zl)
	if err != nil {
		return err
	}
	defer closeCache()

	var profiles domain.ProfileRepository
	if cfg.ProfilesEnabled() {
		pool, err := postgres.NewPool(ctx, cfg.Database.URL, cfg.Database.MaxConns)
		if err != nil {
			return fmt.Errorf("connect to profile store: %w", err)
		}
		defer pool.Close()
		profiles = postgres.NewProfileRepository(pool, zl)
	} else {
		zl.Warn("no database configured, profile endpoints will return 501")
	}

	// Initialize usecase layer
	profileService := usecase.NewProfileService(profileCache, profiles, zl, usecase.ProfileServiceConfig{
		CacheTTL: cfg.Cache.TTL,
	})

	limiter := httpDelivery.NewIPRateLimiter(cfg.RateLimit.PerIP, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL)
	limiter.StartEviction(cfg.RateLimit.IdleTTL, ctx.Done())

	handler := httpDelivery.NewHandler(profileService, zl)
	router := httpDelivery.SetupRouter(cfg, handler, limiter, zl)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		zl.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
		zl.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	zl.Info("server stopped")
	return nil
}

// newCache builds the configured cache backend and its closer
func newCache(ctx context.Context, cfg *config.Config, zl *zap.Logger) (domain.CacheRepository, func(), error) {
	if cfg.Cache.Type == "redis" {
		rc, err := cache.NewRedisCache(cfg.Cache.RedisURL, cfg.Cache.RedisPoolSize)
		if err != nil {
			return nil, nil, fmt.Errorf("create redis cache: %w", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rc.Ping(pingCtx); err != nil {
			// The service degrades to uncached reads
			zl.Warn("redis not reachable at startup", zap.Error(err))
		}
		return rc, func() { _ = rc.Close() }, nil
	}

	mc := cache.NewMemoryCache()
	return mc, func() { _ = mc.Close() }, nil
}
