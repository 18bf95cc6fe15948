package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	enrichmentapp "github.com/marketledger/backend/internal/application/enrichment"
	settlementapp "github.com/marketledger/backend/internal/application/settlement"
	"github.com/marketledger/backend/internal/infrastructure/cache"
	"github.com/marketledger/backend/internal/infrastructure/catalog"
	"github.com/marketledger/backend/internal/infrastructure/config"
	"github.com/marketledger/backend/internal/infrastructure/logger"
	"github.com/marketledger/backend/internal/infrastructure/persistence"
	"github.com/marketledger/backend/internal/interfaces/http/handler"
	"github.com/marketledger/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(&cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting MarketLedger Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
	)

	// Database
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to migrate database schema", zap.Error(err))
	}

	// Catalog client, optionally fronted by the Redis reference cache
	catalogClient, err := catalog.NewClient(&catalog.Config{
		BaseURL:        cfg.Catalog.BaseURL,
		APIKey:         cfg.Catalog.APIKey,
		TimeoutSeconds: cfg.Catalog.TimeoutSeconds,
		BatchSize:      cfg.Catalog.BatchSize,
	})
	if err != nil {
		log.Fatal("Failed to create catalog client", zap.Error(err))
	}

	var fetcher enrichmentapp.ReferenceFetcher = catalogClient
	if cfg.Redis.Enabled {
		cachedFetcher, err := cache.NewCachedFetcher(catalogClient, cache.RedisOptions{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.Redis.TTL,
		}, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			_ = cachedFetcher.Close()
		}()
		fetcher = cachedFetcher
		log.Info("Reference cache enabled", zap.String("addr", cfg.Redis.Addr()))
	}

	// Application services
	enrichmentService := enrichmentapp.NewService(fetcher, log)
	settlementService, err := settlementapp.NewService(persistence.NewGormInvoiceRepository(db.DB), log)
	if err != nil {
		log.Fatal("Fee table validation failed", zap.Error(err))
	}

	// HTTP surface
	engine := router.New(
		router.Config{Env: cfg.App.Env, MaxBodySize: cfg.HTTP.MaxBodySize},
		log,
		handler.NewEnrichmentHandler(enrichmentService, cfg.Warehouse.Prefixes),
		handler.NewSettlementHandler(settlementService),
		handler.NewSystemHandler(cfg.App.Name, db),
	)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
