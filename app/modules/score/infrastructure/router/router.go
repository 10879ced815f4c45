// Package scorerouter registers the score module's event handlers on the
// shared watermill router.
package scorerouter

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	"github.com/fairway-links-club/greens-engine/app/events/scoreevents"
	scorehandlers "github.com/fairway-links-club/greens-engine/app/modules/score/infrastructure/handlers"
	"github.com/fairway-links-club/greens-engine/internal/eventbus"
	"github.com/fairway-links-club/greens-engine/internal/handlerwrapper"
	"github.com/fairway-links-club/greens-engine/internal/utils"
)

// ScoreRouter wires score topics to their handlers.
type ScoreRouter struct {
	logger  *slog.Logger
	router  *message.Router
	bus     eventbus.EventBus
	tracer  trace.Tracer
	helpers utils.Helpers
}

// NewScoreRouter creates a new instance of the router.
func NewScoreRouter(
	logger *slog.Logger,
	router *message.Router,
	bus eventbus.EventBus,
	tracer trace.Tracer,
	helpers utils.Helpers,
) *ScoreRouter {
	return &ScoreRouter{
		logger:  logger,
		router:  router,
		bus:     bus,
		tracer:  tracer,
		helpers: helpers,
	}
}

// Configure registers all score event handlers.
func (r *ScoreRouter) Configure(ctx context.Context, handlers *scorehandlers.ScoreHandlers) error {
	r.logger.InfoContext(ctx, "Registering score event handlers")

	r.router.AddHandler(
		"score."+scoreevents.RoundCompletedV1,
		scoreevents.RoundCompletedV1,
		r.bus,
		"",
		r.bus,
		handlerwrapper.WrapTyped("score.ingest", r.logger, r.tracer, r.helpers, handlers.HandleRoundCompleted),
	)

	return nil
}
