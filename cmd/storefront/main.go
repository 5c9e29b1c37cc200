package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-settlement/config"
	"storefront-settlement/internal/adapter/backend"
	httpHandler "storefront-settlement/internal/adapter/http/handler"
	"storefront-settlement/internal/adapter/processor"
	memStorage "storefront-settlement/internal/adapter/storage/memory"
	pgStorage "storefront-settlement/internal/adapter/storage/postgres"
	redisStorage "storefront-settlement/internal/adapter/storage/redis"
	sqliteStorage "storefront-settlement/internal/adapter/storage/sqlite"
	"storefront-settlement/internal/core/ports"
	"storefront-settlement/internal/service"
	"storefront-settlement/pkg/apperror"
	"storefront-settlement/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("STF_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("store", cfg.Store.Driver).
		Msg("Starting storefront")

	ctx := context.Background()

	// Initialize store backend
	kvBackend, checkers, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("Failed to open store")
	}
	defer closeStore()
	store := service.NewSoftStore(kvBackend, logger.Component(log, "store"))

	// Initialize processor and backend
	var proc ports.Processor = processor.Unavailable{}
	if cfg.Processor.Mode == config.ProcessorModeSimulated {
		outcome, err := processor.ParseOutcome(cfg.Processor.Outcome)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid processor outcome")
		}
		proc = processor.NewSimulated(outcome)
	}
	be := backend.NewSimulated(logger.Component(log, "backend"))

	// Initialize core services
	hashSvc := service.NewArgon2HashService()
	accounts := service.NewAccountService(store, hashSvc, logger.Component(log, "accounts"))
	if err := accounts.Open(ctx, seedMerchants(cfg.Seed)); err != nil {
		if !apperror.IsWarning(err) {
			log.Fatal().Err(err).Msg("Failed to open merchant directory")
		}
		log.Warn().Err(err).Msg("Merchant directory opened with warnings")
	}
	be.RestoreSubAccounts(accounts.ProvisionedSubAccounts())
	if m, err := accounts.RestoreSession(ctx); err != nil {
		log.Warn().Err(err).Msg("Session restored with warnings")
	} else if m != nil {
		log.Info().Str("username", m.Username).Msg("Session restored")
	}

	engine, err := service.NewSettlementEngine(
		cfg.Settlement.FeeRateBasisPoints,
		cfg.Settlement.RequireOnboarding,
		logger.Component(log, "settlement"),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize settlement engine")
	}
	provisioner := service.NewProvisioner(proc, be, service.ProvisionerConfig{
		Country:  cfg.Settlement.Country,
		Currency: cfg.Settlement.Currency,
	}, logger.Component(log, "provisioner"))
	transfers := service.NewTransferOrchestrator(be, cfg.Settlement.Currency, logger.Component(log, "transfers"))
	onboarding := service.NewOnboardingService(accounts, provisioner, logger.Component(log, "onboarding"))
	checkout := service.NewCheckoutService(accounts, engine, proc, be, transfers, service.CheckoutConfig{
		Currency:            cfg.Settlement.Currency,
		MerchantDisplayName: cfg.Settlement.MerchantDisplayName,
	}, logger.Component(log, "checkout"))

	// Setup Gin router with all routes
	gin.SetMode(ginMode(cfg.Server.Mode))
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Accounts:       accounts,
		Onboarding:     onboarding,
		Checkout:       checkout,
		HealthCheckers: checkers,
		Logger:         logger.Component(log, "http"),
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// openStore connects the configured key-value backend.
func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.KVBackend, []ports.HealthChecker, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		log.Warn().Msg("In-memory store: merchants and sessions are lost on exit")
		return memStorage.NewKVStore(), nil, func() {}, nil

	case config.StoreDriverSQLite:
		db, err := sqliteStorage.Open(ctx, cfg.Store.SQLitePath, log)
		if err != nil {
			return nil, nil, nil, err
		}
		return sqliteStorage.NewKVStore(db),
			[]ports.HealthChecker{sqliteStorage.NewHealthCheck(db)},
			func() { _ = db.Close() },
			nil

	case config.StoreDriverRedis:
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			return nil, nil, nil, err
		}
		return redisStorage.NewKVStore(rdb, cfg.Store.KeyPrefix),
			[]ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
			func() { _ = rdb.Close() },
			nil

	case config.StoreDriverPostgres:
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, nil, err
		}
		return pgStorage.NewKVStore(pool),
			[]ports.HealthChecker{pgStorage.NewHealthCheck(pool)},
			pool.Close,
			nil
	}
	return nil, nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

func seedMerchants(cfg config.SeedConfig) []ports.SeedMerchant {
	seeds := make([]ports.SeedMerchant, 0, len(cfg.Merchants))
	for _, s := range cfg.Merchants {
		seeds = append(seeds, ports.SeedMerchant{
			Username:     s.Username,
			Password:     s.Password,
			MerchantName: s.MerchantName,
		})
	}
	return seeds
}

func ginMode(mode string) string {
	switch mode {
	case gin.DebugMode, gin.TestMode:
		return mode
	default:
		return gin.ReleaseMode
	}
}
