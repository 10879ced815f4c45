// Package achievementrouter registers the achievement module's event
// handlers on the shared watermill router.
package achievementrouter

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	"github.com/fairway-links-club/greens-engine/app/events/achievementevents"
	"github.com/fairway-links-club/greens-engine/app/events/leaderboardevents"
	achievementhandlers "github.com/fairway-links-club/greens-engine/app/modules/achievement/infrastructure/handlers"
	"github.com/fairway-links-club/greens-engine/internal/eventbus"
	"github.com/fairway-links-club/greens-engine/internal/handlerwrapper"
	"github.com/fairway-links-club/greens-engine/internal/utils"
)

// AchievementRouter wires achievement topics to their handlers.
type AchievementRouter struct {
	logger  *slog.Logger
	router  *message.Router
	bus     eventbus.EventBus
	tracer  trace.Tracer
	helpers utils.Helpers
}

// NewAchievementRouter creates a new instance of the router.
func NewAchievementRouter(
	logger *slog.Logger,
	router *message.Router,
	bus eventbus.EventBus,
	tracer trace.Tracer,
	helpers utils.Helpers,
) *AchievementRouter {
	return &AchievementRouter{
		logger:  logger,
		router:  router,
		bus:     bus,
		tracer:  tracer,
		helpers: helpers,
	}
}

// Configure registers all achievement event handlers.
func (r *AchievementRouter) Configure(ctx context.Context, handlers *achievementhandlers.AchievementHandlers) error {
	r.logger.InfoContext(ctx, "Registering achievement event handlers")

	r.router.AddHandler(
		"achievement."+leaderboardevents.LeaderChangedV1,
		leaderboardevents.LeaderChangedV1,
		r.bus,
		"",
		r.bus,
		handlerwrapper.WrapTyped("achievement.tier", r.logger, r.tracer, r.helpers, handlers.HandleLeaderChanged),
	)

	r.router.AddHandler(
		"achievement."+achievementevents.HoleInOneRequestedV1,
		achievementevents.HoleInOneRequestedV1,
		r.bus,
		"",
		r.bus,
		handlerwrapper.WrapTyped("achievement.hole_in_one", r.logger, r.tracer, r.helpers, handlers.HandleHoleInOneRequested),
	)

	return nil
}
