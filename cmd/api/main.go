package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/catalogbase/catalog-api/api/routes"
	"github.com/catalogbase/catalog-api/internal/auth"
	"github.com/catalogbase/catalog-api/internal/items"
	"github.com/catalogbase/catalog-api/pkg/config"
	"github.com/catalogbase/catalog-api/pkg/db"
	"github.com/catalogbase/catalog-api/pkg/logger"
	"github.com/catalogbase/catalog-api/pkg/redis"
	"github.com/joho/godotenv"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if cfg.FeatureFlags.AutoInitSchema {
		if err := dbClient.InitSchema(context.Background()); err != nil {
			logg.Error(context.Background(), "failed to initialize schema", err)
			os.Exit(1)
		}
	}

	deps := routes.Dependencies{
		Config:        cfg,
		Logger:        logg,
		AuthService:   auth.NewService(dbClient, cfg.JWT, cfg.Password, logg),
		ItemService:   items.NewService(dbClient, logg),
		SchemaManager: dbClient,
		DBPinger:      dbClient,
	}

	if cfg.Redis.Enabled() {
		redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		deps.RedisPinger = redisClient
		deps.RateLimitStore = redisClient
	}

	addr := cfg.App.Addr()
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.New(deps),
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-shutdownCtx.Done():
		logg.Info(ctx, "shutdown signal received")

		drainCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(drainCtx); err != nil {
			logg.Error(ctx, "error draining api server", err)
		}

		// Disposable-environment mode: start the next run from an empty database.
		if cfg.FeatureFlags.WipeDataOnShutdown {
			if err := dbClient.WipeData(context.Background()); err != nil {
				logg.Error(ctx, "failed to wipe data on shutdown", err)
			} else {
				logg.Warn(ctx, "data wiped on shutdown")
			}
		}
	}

	logg.Info(ctx, "api server stopped")
}
