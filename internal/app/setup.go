package app

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/manifoldbot/quoter/internal/manifold"
	"github.com/manifoldbot/quoter/internal/markets"
	"github.com/manifoldbot/quoter/internal/quoter"
	"github.com/manifoldbot/quoter/internal/storage"
	"github.com/manifoldbot/quoter/pkg/cache"
	"github.com/manifoldbot/quoter/pkg/config"
	"github.com/manifoldbot/quoter/pkg/healthprobe"
	"github.com/manifoldbot/quoter/pkg/httpserver"
	"go.uber.org/zap"
)

// New creates a new application instance.
func New(cfg *config.Config, logger *zap.Logger, opts *Options) (*App, error) {
	if opts == nil {
		opts = &Options{}
	}

	runID := uuid.NewString()

	marketCache, err := setupCache(logger)
	if err != nil {
		return nil, fmt.Errorf("setup cache: %w", err)
	}

	journal, err := setupJournal(cfg, logger)
	if err != nil {
		marketCache.Close()
		return nil, fmt.Errorf("setup journal: %w", err)
	}

	client := setupClient(cfg, logger)
	marketSvc := setupMarketService(client, marketCache, logger)
	quoterSvc := setupQuoter(cfg, logger, client, marketSvc, journal, runID)

	healthChecker := healthprobe.New()
	healthChecker.SetMode(cfg.RunMode)

	var httpServer *httpserver.Server
	if cfg.MetricsEnabled {
		httpServer = httpserver.New(&httpserver.Config{
			Port:          cfg.HTTPPort,
			Logger:        logger,
			HealthChecker: healthChecker,
		})
	}

	return &App{
		cfg:           cfg,
		logger:        logger,
		opts:          opts,
		client:        client,
		marketSvc:     marketSvc,
		quoter:        quoterSvc,
		journal:       journal,
		marketCache:   marketCache,
		healthChecker: healthChecker,
		httpServer:    httpServer,
		runID:         runID,
	}, nil
}

func setupCache(logger *zap.Logger) (cache.Cache, error) {
	return cache.NewRistrettoCache(&cache.RistrettoConfig{
		NumCounters: 100000, // 10x expected max items (10k markets)
		MaxCost:     10000,
		BufferItems: 64,
		Logger:      logger,
	})
}

func setupJournal(cfg *config.Config, logger *zap.Logger) (storage.Storage, error) {
	if cfg.StorageMode == config.StoragePostgres {
		return storage.NewPostgresStorage(&storage.PostgresConfig{
			Host:     cfg.PostgresHost,
			Port:     cfg.PostgresPort,
			User:     cfg.PostgresUser,
			Password: cfg.PostgresPass,
			Database: cfg.PostgresDB,
			SSLMode:  cfg.PostgresSSL,
			Logger:   logger,
		})
	}

	return storage.NewConsoleStorage(logger), nil
}

func setupClient(cfg *config.Config, logger *zap.Logger) *manifold.Client {
	return manifold.NewClient(&manifold.ClientConfig{
		BaseURL:  cfg.ManifoldAPIURL,
		APIKey:   cfg.ManifoldAPIKey,
		PageSize: cfg.PageSize,
		Timeout:  cfg.HTTPTimeout,
		Logger:   logger,
	})
}

func setupMarketService(client *manifold.Client, marketCache cache.Cache, logger *zap.Logger) *markets.Service {
	return markets.New(&markets.Config{
		Client: client,
		Cache:  marketCache,
		Logger: logger,
	})
}

func setupQuoter(
	cfg *config.Config,
	logger *zap.Logger,
	client *manifold.Client,
	marketSvc *markets.Service,
	journal storage.Storage,
	runID string,
) *quoter.Quoter {
	return quoter.New(&quoter.Config{
		Markets:    marketSvc,
		Orders:     client,
		Journal:    journal,
		Logger:     logger,
		RunID:      runID,
		MinTrades:  cfg.QuoteMinTrades,
		StakeBase:  cfg.QuoteStakeBase,
		StakeSlope: cfg.QuoteStakeSlope,
		DryRun:     cfg.DryRun,
	})
}
