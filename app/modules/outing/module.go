// Package outing assembles the outing module. It has no event pipeline;
// standings are computed on demand through the read API.
package outing

import (
	"context"
	"sync"

	"github.com/uptrace/bun"

	outingservice "github.com/fairway-links-club/greens-engine/app/modules/outing/application"
	outingdb "github.com/fairway-links-club/greens-engine/app/modules/outing/infrastructure/repositories"
	"github.com/fairway-links-club/greens-engine/internal/observability"
	"github.com/fairway-links-club/greens-engine/internal/observability/metrics"
)

// Module represents the outing module.
type Module struct {
	Service    outingservice.Service
	cancelFunc context.CancelFunc
	obs        *observability.Observability
}

// NewModule wires the outing repository and service.
func NewModule(
	ctx context.Context,
	obs *observability.Observability,
	db *bun.DB,
	operationMetrics metrics.OperationMetrics,
) (*Module, error) {
	service := outingservice.NewOutingService(
		outingdb.NewRepository(),
		db,
		obs.Logger,
		operationMetrics,
		obs.Tracer,
	)

	return &Module{
		Service: service,
		obs:     obs,
	}, nil
}

// Run keeps the module alive until the context is canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	logger := m.obs.Logger
	logger.InfoContext(ctx, "Starting outing module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	logger.InfoContext(ctx, "Outing module stopped")
}

// Close stops the outing module.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	return nil
}
