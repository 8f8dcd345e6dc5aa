package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/folio-org/search-indexer/internal/adapter"
	"github.com/folio-org/search-indexer/internal/config"
	"github.com/folio-org/search-indexer/internal/extract"
	"github.com/folio-org/search-indexer/internal/logger"
	"github.com/folio-org/search-indexer/internal/metadata"
	"github.com/folio-org/search-indexer/internal/pipeline"
	"github.com/folio-org/search-indexer/internal/preprocess"
	"github.com/folio-org/search-indexer/internal/store"
)

var (
	configPath = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "", "Path to environment file directory")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadEventConsumerConfig(*configPath, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags:      map[string]string{"service": "event-consumer"},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.Info("Starting Event Consumer")

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

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()
	natsJS := adapter.NewNatsJetStream()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load field metadata before consuming
	provider := metadata.NewFileProvider(cfg.Pipeline.ResourceDescriptionPath)
	if err := provider.Initialize(ctx); err != nil {
		logger.Fatal("Failed to load resource descriptions", zap.Error(err))
	}

	// Build the preprocessing registry
	extractors := extract.NewAll(dataStore)
	registry := preprocess.NewRegistry(
		preprocess.NewInstancePreprocessor(extractors, cfg.Pipeline.CentralTenant),
		preprocess.NewAuthorityPreprocessor(provider),
	)

	filters := pipeline.NewFilterChain(
		pipeline.NewDeleteAllFilter(dataStore),
		pipeline.NewStaleAuthorityDeleteFilter(),
	)
	stager := pipeline.NewInstanceStager(dataStore, jsonAdapter, clock, cfg.Pipeline.CentralTenant)

	consumer, err := pipeline.NewConsumer(
		pipeline.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			ConsumerName:   cfg.NATS.ConsumerName,
			FilterSubjects: cfg.NATS.FilterSubjects,
			ConnectionName: cfg.NATS.ConnectionName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			AckWaitTimeout: cfg.NATS.AckWait,
			MaxDeliver:     cfg.NATS.MaxDeliver,
			BatchSize:      cfg.Pipeline.BatchSize,
			FlushInterval:  cfg.Pipeline.FlushInterval,
			TenantWorkers:  cfg.Pipeline.TenantWorkers,
		},
		natsJS,
		jsonAdapter,
		clock,
		registry,
		filters,
		stager,
	)
	if err != nil {
		logger.Fatal("Failed to create event consumer", zap.Error(err))
	}
	defer consumer.Close()

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	select {
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.Error(err, zap.String("component", "consumer"))
		cancel()
	}

	// Give some time for graceful shutdown
	time.Sleep(time.Second)

	logger.Info("Event Consumer stopped")
}
