package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/galero/internal/config"
	"github.com/riskibarqy/galero/internal/domain/placement"
	snapshotcache "github.com/riskibarqy/galero/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/galero/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/galero/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/galero/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/galero/internal/platform/cache"
	idgen "github.com/riskibarqy/galero/internal/platform/id"
	"github.com/riskibarqy/galero/internal/platform/logging"
	"github.com/riskibarqy/galero/internal/platform/metrics"
	"github.com/riskibarqy/galero/internal/platform/resilience"
	"github.com/riskibarqy/galero/internal/usecase"
)

// NewHTTPServer wires storage, services and the router. The returned cleanup
// releases the database pool and must be called after the server stops.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	reader, cleanup, err := newSnapshotReader(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	var recorder *metrics.Recorder
	var metricsHandler http.Handler
	if cfg.MetricsEnabled {
		recorder = metrics.New()
		metricsHandler = recorder.Handler()
	}

	championSvc := usecase.NewChampionService(reader, recorder, logger, cfg.OverviewWorkers)
	historySvc := usecase.NewPlayerHistoryService(reader, recorder, logger)
	editionSvc := usecase.NewEditionService(reader)

	handler := httpapi.NewHandler(
		championSvc,
		historySvc,
		editionSvc,
		httpapi.LimitConfig{
			Default: cfg.LeaderboardDefaultLimit,
			Max:     cfg.LeaderboardMaxLimit,
		},
		logger,
	)

	opts := httpapi.RouterOptions{
		Logger:             logger,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RequestIDs:         idgen.NewUUIDGenerator(),
		MetricsHandler:     metricsHandler,
	}
	if recorder != nil {
		opts.Observer = recorder
	}

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, opts),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func newSnapshotReader(ctx context.Context, cfg config.Config, logger *logging.Logger) (placement.SnapshotReader, func() error, error) {
	var (
		source  placement.SnapshotReader
		cleanup = func() error { return nil }
	)

	switch cfg.StorageDriver {
	case config.StorageMemory, "":
		source = memory.NewSnapshotRepository(memory.SeedSnapshot())
		logger.Info("storage ready", "driver", config.StorageMemory)
	case config.StoragePostgres:
		db, err := openDatabase(cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("ping database: %w", err)
		}
		if cfg.DBBootstrapSeed {
			seeded, err := postgres.BootstrapSeed(ctx, db, memory.SeedSnapshot())
			if err != nil {
				_ = db.Close()
				return nil, nil, fmt.Errorf("bootstrap seed: %w", err)
			}
			logger.Info("bootstrap seed checked", "seeded", seeded)
		}
		source = postgres.NewSnapshotRepository(db)
		cleanup = db.Close
		logger.Info("storage ready", "driver", config.StoragePostgres, "db_name", dsnDatabase(cfg.DBURL))
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}

	breaker := resilience.NewCircuitBreakerFromConfig(cfg.SnapshotCircuit)

	var store *basecache.Store[placement.Snapshot]
	if cfg.SnapshotCacheTTL > 0 {
		store = basecache.NewStore[placement.Snapshot](cfg.SnapshotCacheTTL)
		logger.Info("snapshot cache enabled", "ttl", cfg.SnapshotCacheTTL)
	}
	if breaker == nil && store == nil {
		return source, cleanup, nil
	}

	return snapshotcache.NewSnapshotReader(source, store, breaker), cleanup, nil
}

func openDatabase(cfg config.Config) (*sqlx.DB, error) {
	if cfg.DBURL == "" {
		return nil, errors.New("DB_URL is required for the postgres storage driver")
	}

	sqlDB, err := openTracedSQL(dsnWithApplicationName(cfg.DBURL, cfg.DBApplicationName), dsnDatabase(cfg.DBURL))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db := sqlx.NewDb(sqlDB, "postgres")
	if cfg.DBMaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.DBMaxOpenConns)
		db.SetMaxIdleConns(cfg.DBMaxOpenConns)
	}
	return db, nil
}
