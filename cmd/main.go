package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "adpilot/internal/adapter/http"
	"adpilot/internal/adapter/memory"
	"adpilot/internal/adapter/platform"
	"adpilot/internal/adapter/platformapi"
	"adpilot/internal/adapter/postgres"
	s3adapter "adpilot/internal/adapter/s3"
	"adpilot/internal/adapter/usecase"
	"adpilot/internal/breaker"
	"adpilot/internal/config"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/db"
	"adpilot/internal/scheduler"
)

// main is the entry point of the adpilot service. It loads configuration,
// optionally runs database migrations, initializes the database pool,
// repositories and the control-loop components, then starts the HTTP
// server and the background scheduler. On receiving a termination signal
// it gracefully shuts down.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.RunSeed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	campaigns := postgres.NewCampaignRepository(pool)
	strategies := postgres.NewStrategyRepository(pool)
	performance := postgres.NewPerformanceRepository(pool)
	reviews := postgres.NewReviewRepository(pool)

	assets, err := s3adapter.New(ctx, cfg.Assets)
	if err != nil {
		logger.Error("asset store error", slog.Any("error", err))
		os.Exit(1)
	}

	brk := breaker.New(memory.NewBreakerStore(),
		cfg.Breaker.MaxFailures, cfg.Breaker.Cooldown, cfg.Breaker.FailureTTL)

	clients := map[domain.Platform]port.PlatformClient{
		domain.PlatformGoogle:   platformapi.New(domain.PlatformGoogle, cfg.Google.BaseURL, cfg.Google.APIKey, cfg.Google.Timeout),
		domain.PlatformFacebook: platformapi.New(domain.PlatformFacebook, cfg.Facebook.BaseURL, cfg.Facebook.APIKey, cfg.Facebook.Timeout),
	}
	deployers := platform.Deployers(&platform.Deps{
		Clients:    clients,
		Assets:     assets,
		Breaker:    brk,
		Campaigns:  campaigns,
		Strategies: strategies,
		Logger:     logger,
	})

	agg := usecase.NewPerformanceAggregator(cfg.Optimizer.RevenueMultiple)
	allocator := usecase.NewBudgetAllocator(campaigns, strategies, performance, agg, cfg.Optimizer.BudgetFloorPct, logger)
	optimizer := usecase.NewPortfolioOptimizer(campaigns, strategies, performance, reviews, agg,
		cfg.Optimizer.PauseBelow, cfg.Optimizer.ScaleAbove, cfg.Optimizer.IncreasePct, logger)
	orchestrator := usecase.NewDeploymentOrchestrator(campaigns, strategies, deployers, logger)
	rollbacker := usecase.NewRollbackService(strategies, logger)
	gate := usecase.NewConflictGate(reviews, logger)

	if cfg.Scheduler.Enabled {
		loop := scheduler.New(campaigns, allocator, optimizer,
			cfg.Scheduler.Interval, cfg.Scheduler.Concurrency, logger)
		go loop.Run(ctx)
		logger.Info("scheduler started",
			slog.Duration("interval", cfg.Scheduler.Interval),
			slog.Int("concurrency", cfg.Scheduler.Concurrency))
	}

	handler := httpadapter.NewHandler(campaigns, strategies, performance, reviews, assets,
		allocator, optimizer, orchestrator, rollbacker, gate, brk, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
