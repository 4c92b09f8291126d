package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/noren-ops/noren/internal/dashboard"
)

// DashboardWarmupJob pre-populates the dashboard snapshot cache so the
// first morning load is a cache hit.
type DashboardWarmupJob struct {
	Dashboard *dashboard.Service
	Logger    *slog.Logger
	clock     func() time.Time
}

// NewDashboardWarmupJob wires dependencies for the warmup handler.
func NewDashboardWarmupJob(dashboardSvc *dashboard.Service, logger *slog.Logger) *DashboardWarmupJob {
	return &DashboardWarmupJob{
		Dashboard: dashboardSvc,
		Logger:    logger,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Handle processes dashboard warmup tasks.
func (j *DashboardWarmupJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Dashboard == nil {
		return errors.New("dashboard warmup: handler not configured")
	}
	var payload DashboardWarmupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	if payload.Reason == "" {
		payload.Reason = "scheduled"
	}

	logger := j.logger().With(slog.String("reason", payload.Reason))
	logger.Info("starting dashboard warmup")

	jobCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	started := j.clock()
	snap, err := j.Dashboard.Load(jobCtx)
	if err != nil {
		logger.Error("warm dashboard snapshot", slog.Any("error", err))
		return err
	}

	logger.Info("completed dashboard warmup",
		slog.Bool("empty", snap.Empty),
		slog.Duration("duration", time.Since(started)))
	return nil
}

func (j *DashboardWarmupJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return slog.Default()
}
