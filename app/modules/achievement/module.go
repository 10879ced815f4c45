// Package achievement assembles the achievement module: tier evaluation,
// badge ledger, and the periodic self-healing audit.
package achievement

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"

	achievementservice "github.com/fairway-links-club/greens-engine/app/modules/achievement/application"
	achievementdb "github.com/fairway-links-club/greens-engine/app/modules/achievement/infrastructure/repositories"
	achievementhandlers "github.com/fairway-links-club/greens-engine/app/modules/achievement/infrastructure/handlers"
	achievementqueue "github.com/fairway-links-club/greens-engine/app/modules/achievement/infrastructure/queue"
	achievementrouter "github.com/fairway-links-club/greens-engine/app/modules/achievement/infrastructure/router"
	"github.com/fairway-links-club/greens-engine/config"
	"github.com/fairway-links-club/greens-engine/internal/eventbus"
	"github.com/fairway-links-club/greens-engine/internal/observability"
	"github.com/fairway-links-club/greens-engine/internal/observability/metrics"
	"github.com/fairway-links-club/greens-engine/internal/utils"
)

// Module represents the achievement module.
type Module struct {
	Service    achievementservice.Service
	Queue      achievementqueue.QueueService
	router     *achievementrouter.AchievementRouter
	cancelFunc context.CancelFunc
	obs        *observability.Observability
}

// NewModule wires the achievement repository, service, handlers, router,
// and the periodic audit queue.
func NewModule(
	ctx context.Context,
	cfg *config.Config,
	obs *observability.Observability,
	db *bun.DB,
	bus eventbus.EventBus,
	router *message.Router,
	helpers utils.Helpers,
	operationMetrics metrics.OperationMetrics,
) (*Module, error) {
	logger := obs.Logger

	service := achievementservice.NewAchievementService(
		achievementdb.NewRepository(),
		db,
		logger,
		operationMetrics,
		obs.Tracer,
	)

	handlers := achievementhandlers.NewAchievementHandlers(service, logger, obs.Tracer, helpers)
	moduleRouter := achievementrouter.NewAchievementRouter(logger, router, bus, obs.Tracer, helpers)

	if err := moduleRouter.Configure(ctx, handlers); err != nil {
		return nil, fmt.Errorf("failed to configure achievement router: %w", err)
	}

	auditInterval := time.Duration(cfg.Engine.TierAuditIntervalMinutes) * time.Minute
	queue, err := achievementqueue.NewService(ctx, logger, cfg.Postgres.DSN, auditInterval, service, operationMetrics)
	if err != nil {
		return nil, fmt.Errorf("failed to create achievement queue: %w", err)
	}

	return &Module{
		Service: service,
		Queue:   queue,
		router:  moduleRouter,
		obs:     obs,
	}, nil
}

// Run starts the audit queue and keeps the module alive until the context
// is canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	logger := m.obs.Logger
	logger.InfoContext(ctx, "Starting achievement module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	if err := m.Queue.Start(ctx); err != nil {
		logger.ErrorContext(ctx, "Failed to start achievement queue", "error", err)
	}

	<-ctx.Done()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()
	if err := m.Queue.Stop(stopCtx); err != nil {
		logger.ErrorContext(stopCtx, "Failed to stop achievement queue", "error", err)
	}

	logger.InfoContext(ctx, "Achievement module stopped")
}

// Close stops the achievement module.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	return nil
}
