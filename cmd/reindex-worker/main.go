package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/folio-org/search-indexer/internal/adapter"
	"github.com/folio-org/search-indexer/internal/api"
	"github.com/folio-org/search-indexer/internal/auth"
	"github.com/folio-org/search-indexer/internal/config"
	"github.com/folio-org/search-indexer/internal/inventory"
	"github.com/folio-org/search-indexer/internal/logger"
	"github.com/folio-org/search-indexer/internal/reindex"
	"github.com/folio-org/search-indexer/internal/search"
	"github.com/folio-org/search-indexer/internal/store"
)

var (
	configPath = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "", "Path to environment file directory")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadReindexWorkerConfig(*configPath, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags:      map[string]string{"service": "reindex-worker"},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.Info("Starting Reindex Worker")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db,
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
		cfg.Database.ConnMaxLifetime,
		cfg.Database.ConnMaxIdleTime,
	); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	if err := store.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}
	logger.Info("Connected to database")

	dataStore := store.NewPGStore(db)

	// Initialize adapters and clients
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()
	httpClient := adapter.NewHTTPClient(30 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tokens := auth.NewTokenProvider(auth.Config{
		BaseURL:  cfg.Okapi.BaseURL,
		Tenant:   cfg.Okapi.Tenant,
		Username: cfg.Okapi.Username,
		Password: cfg.Okapi.Password,
	}, httpClient, clock)
	if err := tokens.Initialize(ctx); err != nil {
		logger.Fatal("Failed to log in system user", zap.Error(err))
	}

	inventoryClient := inventory.NewClient(inventory.Config{BaseURL: cfg.Okapi.BaseURL}, httpClient, tokens)
	searchClient := search.NewClient(search.Config{BaseURL: cfg.Search.BaseURL}, httpClient)

	orchestrator := reindex.NewOrchestrator(
		reindex.Config{
			MergeRangeSize:  cfg.Reindex.MergeRangeSize,
			UploadBatchSize: cfg.Reindex.UploadBatchSize,
			RetryAttempts:   cfg.Reindex.RetryAttempts,
			Workers:         cfg.Reindex.Workers,
		},
		dataStore,
		inventoryClient,
		searchClient,
		jsonAdapter,
		clock,
	)

	server := api.New(api.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}, api.NewHandler(orchestrator))

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.Error(err, zap.String("component", "server"))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error(err)
	}

	logger.Info("Reindex Worker stopped")
}
