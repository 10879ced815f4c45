// Package leaderboardrouter registers the leaderboard module's event
// handlers on the shared watermill router.
package leaderboardrouter

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	"github.com/fairway-links-club/greens-engine/app/events/leaderboardevents"
	leaderboardhandlers "github.com/fairway-links-club/greens-engine/app/modules/leaderboard/infrastructure/handlers"
	"github.com/fairway-links-club/greens-engine/internal/eventbus"
	"github.com/fairway-links-club/greens-engine/internal/handlerwrapper"
	"github.com/fairway-links-club/greens-engine/internal/utils"
)

// LeaderboardRouter wires leaderboard topics to their handlers.
type LeaderboardRouter struct {
	logger  *slog.Logger
	router  *message.Router
	bus     eventbus.EventBus
	tracer  trace.Tracer
	helpers utils.Helpers
}

// NewLeaderboardRouter creates a new instance of the router.
func NewLeaderboardRouter(
	logger *slog.Logger,
	router *message.Router,
	bus eventbus.EventBus,
	tracer trace.Tracer,
	helpers utils.Helpers,
) *LeaderboardRouter {
	return &LeaderboardRouter{
		logger:  logger,
		router:  router,
		bus:     bus,
		tracer:  tracer,
		helpers: helpers,
	}
}

// Configure registers all leaderboard event handlers.
func (r *LeaderboardRouter) Configure(ctx context.Context, handlers *leaderboardhandlers.LeaderboardHandlers) error {
	r.logger.InfoContext(ctx, "Registering leaderboard event handlers")

	r.router.AddHandler(
		"leaderboard."+leaderboardevents.SubmitRequestedV1,
		leaderboardevents.SubmitRequestedV1,
		r.bus,
		"",
		r.bus,
		handlerwrapper.WrapTyped("leaderboard.submit", r.logger, r.tracer, r.helpers, handlers.HandleSubmitRequested),
	)

	return nil
}
