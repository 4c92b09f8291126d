package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/noren-ops/noren/internal/app"
	"github.com/noren-ops/noren/internal/daily"
	"github.com/noren-ops/noren/internal/dashboard"
	"github.com/noren-ops/noren/internal/monthly"
	"github.com/noren-ops/noren/internal/platform/cache"
	"github.com/noren-ops/noren/internal/platform/db"
	"github.com/noren-ops/noren/internal/staff"
	"github.com/noren-ops/noren/internal/store"
	"github.com/noren-ops/noren/internal/training"
	"github.com/noren-ops/noren/jobs"
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

	snapshotCache := dashboard.NewCache(redisClient, cfg.SnapshotCacheTTL)
	storeResolver := store.NewResolver(logger, store.NewRepository(dbpool), defaultStoreID)
	dashboardService := dashboard.NewService(
		storeResolver,
		daily.NewRepository(dbpool),
		monthly.NewRepository(dbpool),
		staff.NewRepository(dbpool),
		training.NewRepository(dbpool),
		snapshotCache,
	)

	warmupJob := jobs.NewDashboardWarmupJob(dashboardService, logger)
	warmupTask, err := jobs.NewDashboardWarmupTask(jobs.DashboardWarmupPayload{Reason: "scheduled"})
	if err != nil {
		logger.Error("build warmup task", slog.Any("error", err))
		os.Exit(1)
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskDashboardWarmup, Handler: warmupJob.Handle},
		},
		Cron: []jobs.CronRegistration{
			{Spec: "0 5 * * *", Task: warmupTask, Options: []asynq.Option{asynq.Queue(jobs.QueueDefault)}},
		},
	})
	if err != nil {
		logger.Error("build worker", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("starting worker")
	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("worker stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
