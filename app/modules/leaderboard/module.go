// Package leaderboard assembles the leaderboard module.
package leaderboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"

	leaderboardservice "github.com/fairway-links-club/greens-engine/app/modules/leaderboard/application"
	leaderboarddb "github.com/fairway-links-club/greens-engine/app/modules/leaderboard/infrastructure/repositories"
	leaderboardhandlers "github.com/fairway-links-club/greens-engine/app/modules/leaderboard/infrastructure/handlers"
	leaderboardrouter "github.com/fairway-links-club/greens-engine/app/modules/leaderboard/infrastructure/router"
	"github.com/fairway-links-club/greens-engine/config"
	"github.com/fairway-links-club/greens-engine/internal/eventbus"
	"github.com/fairway-links-club/greens-engine/internal/observability"
	"github.com/fairway-links-club/greens-engine/internal/observability/metrics"
	"github.com/fairway-links-club/greens-engine/internal/utils"
)

// Module represents the leaderboard module.
type Module struct {
	Service    leaderboardservice.Service
	router     *leaderboardrouter.LeaderboardRouter
	cancelFunc context.CancelFunc
	obs        *observability.Observability
}

// NewModule wires the leaderboard repository, service, handlers, and router.
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

	service := leaderboardservice.NewLeaderboardService(
		leaderboarddb.NewRepository(),
		db,
		logger,
		operationMetrics,
		obs.Tracer,
		cfg.Engine.LeaderboardSize,
		cfg.Engine.TxRetryAttempts,
	)

	handlers := leaderboardhandlers.NewLeaderboardHandlers(service, logger, obs.Tracer, helpers)
	moduleRouter := leaderboardrouter.NewLeaderboardRouter(logger, router, bus, obs.Tracer, helpers)

	if err := moduleRouter.Configure(ctx, handlers); err != nil {
		return nil, fmt.Errorf("failed to configure leaderboard router: %w", err)
	}

	return &Module{
		Service: service,
		router:  moduleRouter,
		obs:     obs,
	}, nil
}

// Run keeps the module alive until the context is canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	logger := m.obs.Logger
	logger.InfoContext(ctx, "Starting leaderboard module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	logger.InfoContext(ctx, "Leaderboard module stopped")
}

// Close stops the leaderboard module.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	return nil
}
