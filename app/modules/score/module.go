// Package score assembles the score ingestion module.
package score

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"

	scoreservice "github.com/fairway-links-club/greens-engine/app/modules/score/application"
	scoredb "github.com/fairway-links-club/greens-engine/app/modules/score/infrastructure/repositories"
	scorehandlers "github.com/fairway-links-club/greens-engine/app/modules/score/infrastructure/handlers"
	scorerouter "github.com/fairway-links-club/greens-engine/app/modules/score/infrastructure/router"
	"github.com/fairway-links-club/greens-engine/config"
	"github.com/fairway-links-club/greens-engine/internal/eventbus"
	"github.com/fairway-links-club/greens-engine/internal/observability"
	"github.com/fairway-links-club/greens-engine/internal/observability/metrics"
	"github.com/fairway-links-club/greens-engine/internal/utils"
)

// Module represents the score module.
type Module struct {
	Service    scoreservice.Service
	Repo       scoredb.Repository
	router     *scorerouter.ScoreRouter
	cancelFunc context.CancelFunc
	obs        *observability.Observability
}

// NewModule wires the score repository, service, handlers, and router.
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

	repo := scoredb.NewRepository()
	service := scoreservice.NewScoreService(
		repo,
		db,
		logger,
		operationMetrics,
		obs.Tracer,
	)

	handlers := scorehandlers.NewScoreHandlers(service, logger, obs.Tracer, helpers)
	moduleRouter := scorerouter.NewScoreRouter(logger, router, bus, obs.Tracer, helpers)

	if err := moduleRouter.Configure(ctx, handlers); err != nil {
		return nil, fmt.Errorf("failed to configure score router: %w", err)
	}

	return &Module{
		Service: service,
		Repo:    repo,
		router:  moduleRouter,
		obs:     obs,
	}, nil
}

// Run keeps the module alive until the context is canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	logger := m.obs.Logger
	logger.InfoContext(ctx, "Starting score module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	logger.InfoContext(ctx, "Score module stopped")
}

// Close stops the score module.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	return nil
}
