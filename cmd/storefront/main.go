package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/tair/storefront/internal/catalog"
	"github.com/tair/storefront/internal/config"
	"github.com/tair/storefront/internal/i18n"
	"github.com/tair/storefront/internal/storage"
	httpDelivery "github.com/tair/storefront/internal/storefront/delivery/http"
	"github.com/tair/storefront/internal/storefront/store"
	"github.com/tair/storefront/internal/storefront/usecase/command"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/tracing"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.ServiceName, cfg.LogLevel, cfg.IsDevelopment())

	tp, err := tracing.InitTracer(cfg.ServiceName, cfg.JaegerEndpoint)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Tracing disabled")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Warn().Err(err).Msg("Failed to shut down tracer")
			}
		}()
	}

	st := newStorage(cfg)

	// The state store: exactly one shared mutable instance per process,
	// restored from storage before the persister starts mirroring.
	productStore := store.NewMemoryStoreWithTracing()
	persister := store.NewPersister(st)
	persister.Restore(context.Background(), productStore.MemoryStore)
	persister.Attach(productStore.MemoryStore)

	catalogClient := catalog.NewClient(cfg.CatalogURL)
	preference := i18n.NewPreference(st)

	handler := httpDelivery.NewStoreHandler(productStore, &httpDelivery.CatalogClients{
		Seeder: catalogClient,
		Detail: catalogClient,
	}, preference)

	if cfg.SeedOnStartup {
		// One-shot seed: the empty-collection guard means a restored
		// store skips the remote call entirely
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()

			seed := command.NewSeedCatalogHandler(catalogClient, productStore)
			applied, err := seed.Handle(ctx, command.SeedCatalogCommand{})
			if err != nil {
				logger.Logger.Warn().Err(err).Msg("Catalog seed failed, continuing with stored products")
				return
			}
			logger.Logger.Info().Bool("applied", applied).Msg("Catalog seed finished")
		}()
	}

	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	router.Handle("/metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	chain := httpDelivery.TracingMiddleware("storefront",
		httpDelivery.RequestIDMiddleware(
			httpDelivery.LoggingMiddleware(
				c.Handler(router),
			),
		),
	)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: chain,
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("storage", cfg.StorageBackend).
			Msg("HTTP server starting")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server shutdown failed")
	}
}

// newStorage selects the storage backend. Failures are non-fatal: the
// store keeps operating in memory and writes stay best-effort.
func newStorage(cfg *config.Config) storage.Storage {
	if cfg.StorageBackend == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Logger.Warn().Err(err).Msg("Redis unreachable, persistence is best-effort")
		}

		return storage.NewRedisStorage(client)
	}

	st, err := storage.NewFileStorage(cfg.StorageDir)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("File storage unavailable, running in memory only")
		return noopStorage{}
	}
	return st
}

// noopStorage satisfies storage.Storage when no backend is usable
type noopStorage struct{}

func (noopStorage) Get(ctx context.Context, key string) (string, error) {
	return "", storage.ErrNotFound
}

func (noopStorage) Set(ctx context.Context, key, value string) error {
	return nil
}
