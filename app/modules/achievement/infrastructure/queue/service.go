// Package achievementqueue runs the periodic tier audit on River.
package achievementqueue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"

	achievementservice "github.com/fairway-links-club/greens-engine/app/modules/achievement/application"
	"github.com/fairway-links-club/greens-engine/internal/observability/attr"
	"github.com/fairway-links-club/greens-engine/internal/observability/metrics"
)

// QueueService schedules and runs the self-healing tier audit.
type QueueService interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	HealthCheck(ctx context.Context) error
}

var _ QueueService = (*Service)(nil)

// Service runs the tier audit job on a River client backed by its own pgx
// pool (River requires pgx, not database/sql).
type Service struct {
	client  *river.Client[pgx.Tx]
	pool    *pgxpool.Pool
	logger  *slog.Logger
	metrics metrics.OperationMetrics
}

// TierAuditWorker executes one audit sweep per periodic tick.
type TierAuditWorker struct {
	river.WorkerDefaults[TierAuditArgs]
	logger  *slog.Logger
	service achievementservice.Service
}

// NewTierAuditWorker creates the audit worker.
func NewTierAuditWorker(logger *slog.Logger, service achievementservice.Service) *TierAuditWorker {
	return &TierAuditWorker{logger: logger, service: service}
}

// Work runs one sweep. Errors are returned so River retries the job.
func (w *TierAuditWorker) Work(ctx context.Context, job *river.Job[TierAuditArgs]) error {
	w.logger.InfoContext(ctx, "Running periodic tier audit",
		attr.Int("attempt", job.Attempt),
	)

	result, err := w.service.AuditTiers(ctx)
	if err != nil {
		return fmt.Errorf("tier audit sweep failed: %w", err)
	}
	if result.IsSuccess() {
		w.logger.InfoContext(ctx, "Periodic tier audit finished",
			attr.Int("candidates", result.Success.Candidates),
			attr.Int("changed", result.Success.Changed),
		)
	}
	return nil
}

// NewService creates a River-based queue service running the periodic tier
// audit at the given interval.
func NewService(
	ctx context.Context,
	logger *slog.Logger,
	dsn string,
	interval time.Duration,
	service achievementservice.Service,
	operationMetrics metrics.OperationMetrics,
) (*Service, error) {
	ctxLogger := logger.With(
		attr.String("component", "river_queue"),
	)

	operationMetrics.RecordOperationAttempt(ctx, "initialize_service", "river")
	ctxLogger.InfoContext(ctx, "Initializing achievement queue service")

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		operationMetrics.RecordOperationFailure(ctx, "initialize_service", "river")
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		operationMetrics.RecordOperationFailure(ctx, "initialize_service", "river")
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		operationMetrics.RecordOperationFailure(ctx, "initialize_service", "river")
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewTierAuditWorker(ctxLogger, service))

	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 10},
		},
		Workers: workers,
		PeriodicJobs: []*river.PeriodicJob{
			river.NewPeriodicJob(
				river.PeriodicInterval(interval),
				func() (river.JobArgs, *river.InsertOpts) {
					return TierAuditArgs{}, &river.InsertOpts{
						UniqueOpts: river.UniqueOpts{ByArgs: true},
					}
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		},
	})
	if err != nil {
		pool.Close()
		operationMetrics.RecordOperationFailure(ctx, "initialize_service", "river")
		return nil, fmt.Errorf("failed to create River client: %w", err)
	}

	operationMetrics.RecordOperationSuccess(ctx, "initialize_service", "river")
	ctxLogger.InfoContext(ctx, "Achievement queue service initialized",
		attr.String("audit_interval", interval.String()),
	)

	return &Service{
		client:  riverClient,
		pool:    pool,
		logger:  ctxLogger,
		metrics: operationMetrics,
	}, nil
}

// Start starts the River client.
func (s *Service) Start(ctx context.Context) error {
	s.metrics.RecordOperationAttempt(ctx, "start_service", "river")

	if err := s.client.Start(ctx); err != nil {
		s.metrics.RecordOperationFailure(ctx, "start_service", "river")
		return fmt.Errorf("failed to start River client: %w", err)
	}

	s.metrics.RecordOperationSuccess(ctx, "start_service", "river")
	s.logger.InfoContext(ctx, "Achievement queue service started")
	return nil
}

// Stop stops the River client and releases its pool.
func (s *Service) Stop(ctx context.Context) error {
	s.metrics.RecordOperationAttempt(ctx, "stop_service", "river")

	if err := s.client.Stop(ctx); err != nil {
		s.metrics.RecordOperationFailure(ctx, "stop_service", "river")
		return fmt.Errorf("failed to stop River client: %w", err)
	}
	s.pool.Close()

	s.metrics.RecordOperationSuccess(ctx, "stop_service", "river")
	s.logger.InfoContext(ctx, "Achievement queue service stopped")
	return nil
}

// HealthCheck verifies the queue's database connectivity.
func (s *Service) HealthCheck(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("river client is nil")
	}
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("queue service health check failed: %w", err)
	}
	return nil
}
