package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/finvo/transferd/internal/adapter/http"
	"github.com/finvo/transferd/internal/adapter/http/handler"
	"github.com/finvo/transferd/internal/adapter/rates"
	postgresRepo "github.com/finvo/transferd/internal/adapter/repository/postgres"
	"github.com/finvo/transferd/internal/infrastructure/config"
	"github.com/finvo/transferd/internal/infrastructure/logger"
	"github.com/finvo/transferd/internal/infrastructure/metrics"
	"github.com/finvo/transferd/internal/infrastructure/postgres"
	"github.com/finvo/transferd/internal/infrastructure/redis"
	"github.com/finvo/transferd/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger
	zerolog.SetGlobalLevel(appLogger.GetLevel())

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations and seed data
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	if err := postgres.Seed(ctx, pool, cfg.SeedFile); err != nil {
		log.Fatal().Err(err).Msg("failed to seed database")
	}

	// Prometheus metrics
	m := metrics.New()
	go reportPoolStats(ctx, pool, m)

	// Exchange rate provider; Redis only caches rates, so a missing
	// cache degrades to direct lookups instead of failing startup.
	var rateProvider usecase.RateProvider = rates.NewAPIClient(
		cfg.ExchangeAPIURL, cfg.ExchangeAPIKey, cfg.ExchangeAPITimeout, appLogger,
	)

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, rate caching disabled")
	} else {
		defer redisClient.Close()
		rateProvider = rates.NewCachedProvider(redisClient, rateProvider, cfg.RateCacheTTL, m, appLogger)
		log.Info().Msg("connected to redis")
	}

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool, cfg.SettlementCurrency)
	txnRepo := postgresRepo.NewTransactionRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(m, appLogger)

	// Initialize use cases
	normalizer := usecase.NewCurrencyNormalizer(rateProvider, cfg.SettlementCurrency)
	accountUC := usecase.NewAccountUseCase(accountRepo)
	transferUC := usecase.NewTransferUseCase(txManager, accountRepo, txnRepo, normalizer, idGen, m, appLogger)

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(accountUC)
	transferHandler := handler.NewTransferHandler(transferUC, retrier, cfg.SupportedCurrencySet())
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:  accountHandler,
		TransferHandler: transferHandler,
		HealthHandler:   healthHandler,
		Logger:          appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func reportPoolStats(ctx context.Context, pool *pgxpool.Pool, m *metrics.Metrics) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.DBConnections.Set(float64(pool.Stat().TotalConns()))
		}
	}
}
