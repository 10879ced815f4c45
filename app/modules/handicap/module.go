// Package handicap assembles the handicap module.
package handicap

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"

	handicapservice "github.com/fairway-links-club/greens-engine/app/modules/handicap/application"
	handicapdb "github.com/fairway-links-club/greens-engine/app/modules/handicap/infrastructure/repositories"
	handicaphandlers "github.com/fairway-links-club/greens-engine/app/modules/handicap/infrastructure/handlers"
	handicaprouter "github.com/fairway-links-club/greens-engine/app/modules/handicap/infrastructure/router"
	"github.com/fairway-links-club/greens-engine/config"
	"github.com/fairway-links-club/greens-engine/internal/eventbus"
	"github.com/fairway-links-club/greens-engine/internal/observability"
	"github.com/fairway-links-club/greens-engine/internal/observability/metrics"
	"github.com/fairway-links-club/greens-engine/internal/utils"
)

// Module represents the handicap module.
type Module struct {
	Service    handicapservice.Service
	router     *handicaprouter.HandicapRouter
	cancelFunc context.CancelFunc
	obs        *observability.Observability
}

// NewModule wires the handicap repository, service, handlers, and router.
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

	service := handicapservice.NewHandicapService(
		handicapdb.NewRepository(),
		db,
		logger,
		operationMetrics,
		obs.Tracer,
	)

	handlers := handicaphandlers.NewHandicapHandlers(service, logger, obs.Tracer, helpers)
	moduleRouter := handicaprouter.NewHandicapRouter(logger, router, bus, obs.Tracer, helpers)

	if err := moduleRouter.Configure(ctx, handlers); err != nil {
		return nil, fmt.Errorf("failed to configure handicap router: %w", err)
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
	logger.InfoContext(ctx, "Starting handicap module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	logger.InfoContext(ctx, "Handicap module stopped")
}

// Close stops the handicap module.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	return nil
}
