package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/noren-ops/noren/internal/app"
	"github.com/noren-ops/noren/internal/auth"
	"github.com/noren-ops/noren/internal/daily"
	"github.com/noren-ops/noren/internal/dashboard"
	"github.com/noren-ops/noren/internal/monthly"
	"github.com/noren-ops/noren/internal/observability"
	"github.com/noren-ops/noren/internal/platform/cache"
	"github.com/noren-ops/noren/internal/platform/db"
	"github.com/noren-ops/noren/internal/salesreport"
	"github.com/noren-ops/noren/internal/schema"
	"github.com/noren-ops/noren/internal/shared"
	"github.com/noren-ops/noren/internal/staff"
	"github.com/noren-ops/noren/internal/store"
	"github.com/noren-ops/noren/internal/training"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	dbpool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	defaultStoreID, err := uuid.Parse(cfg.DefaultStoreID)
	if err != nil {
		logger.Error("parse default store id", slog.Any("error", err))
		os.Exit(1)
	}

	sessionManager := shared.NewSessionManager(redisClient, "noren_session", cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction())
	metrics := observability.NewMetrics()
	snapshotCache := dashboard.NewCache(redisClient, cfg.SnapshotCacheTTL)

	storeRepo := store.NewRepository(dbpool)
	storeResolver := store.NewResolver(logger, storeRepo, defaultStoreID)
	storeHandler := store.NewHandler(logger, storeRepo, storeResolver)

	dailyRepo := daily.NewRepository(dbpool)
	dailyService := daily.NewService(dailyRepo, storeResolver, snapshotCache)
	dailyHandler := daily.NewHandler(logger, dailyService)

	monthlyRepo := monthly.NewRepository(dbpool)
	monthlyService := monthly.NewService(monthlyRepo, storeResolver, snapshotCache)
	monthlyHandler := monthly.NewHandler(logger, monthlyService)

	staffRepo := staff.NewRepository(dbpool)
	staffService := staff.NewService(staffRepo, storeResolver, snapshotCache)
	staffHandler := staff.NewHandler(logger, staffService)

	trainingRepo := training.NewRepository(dbpool)
	trainingService := training.NewService(trainingRepo, storeResolver, snapshotCache)
	trainingHandler := training.NewHandler(logger, trainingService)

	prober := schema.NewProber(dbpool)
	dashboardService := dashboard.NewService(storeResolver, dailyRepo, monthlyRepo, staffRepo, trainingRepo, snapshotCache)
	dashboardHandler := dashboard.NewHandler(logger, dashboardService, prober, metrics)

	salesService := salesreport.NewService(storeResolver, dailyRepo, monthlyRepo)
	salesHandler := salesreport.NewHandler(logger, salesService, metrics)

	authRepo := auth.NewPostgresRepository(dbpool)
	authService := auth.NewService(authRepo)
	authHandler := auth.NewHandler(logger, authService, sessionManager)

	router := app.NewRouter(app.RouterParams{
		Logger:             logger,
		Config:             cfg,
		SessionManager:     sessionManager,
		AuthHandler:        authHandler,
		DailyHandler:       dailyHandler,
		MonthlyHandler:     monthlyHandler,
		StaffHandler:       staffHandler,
		TrainingHandler:    trainingHandler,
		DashboardHandler:   dashboardHandler,
		SalesReportHandler: salesHandler,
		StoreHandler:       storeHandler,
		Metrics:            metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
