// Package handicaprouter registers the handicap module's event handlers on
// the shared watermill router.
package handicaprouter

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	"github.com/fairway-links-club/greens-engine/app/events/handicapevents"
	handicaphandlers "github.com/fairway-links-club/greens-engine/app/modules/handicap/infrastructure/handlers"
	"github.com/fairway-links-club/greens-engine/internal/eventbus"
	"github.com/fairway-links-club/greens-engine/internal/handlerwrapper"
	"github.com/fairway-links-club/greens-engine/internal/utils"
)

// HandicapRouter wires handicap topics to their handlers.
type HandicapRouter struct {
	logger  *slog.Logger
	router  *message.Router
	bus     eventbus.EventBus
	tracer  trace.Tracer
	helpers utils.Helpers
}

// NewHandicapRouter creates a new instance of the router.
func NewHandicapRouter(
	logger *slog.Logger,
	router *message.Router,
	bus eventbus.EventBus,
	tracer trace.Tracer,
	helpers utils.Helpers,
) *HandicapRouter {
	return &HandicapRouter{
		logger:  logger,
		router:  router,
		bus:     bus,
		tracer:  tracer,
		helpers: helpers,
	}
}

// Configure registers all handicap event handlers.
func (r *HandicapRouter) Configure(ctx context.Context, handlers *handicaphandlers.HandicapHandlers) error {
	r.logger.InfoContext(ctx, "Registering handicap event handlers")

	r.router.AddHandler(
		"handicap."+handicapevents.DifferentialSubmittedV1,
		handicapevents.DifferentialSubmittedV1,
		r.bus,
		"",
		r.bus,
		handlerwrapper.WrapTyped("handicap.differential", r.logger, r.tracer, r.helpers, handlers.HandleDifferentialSubmitted),
	)

	return nil
}
