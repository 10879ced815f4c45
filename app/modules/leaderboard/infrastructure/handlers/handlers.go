// Package leaderboardhandlers handles leaderboard-related events.
package leaderboardhandlers

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	leaderboardservice "github.com/fairway-links-club/greens-engine/app/modules/leaderboard/application"
	"github.com/fairway-links-club/greens-engine/internal/utils"
)

// LeaderboardHandlers handles leaderboard-related events.
type LeaderboardHandlers struct {
	service leaderboardservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
	helpers utils.Helpers
}

// NewLeaderboardHandlers creates a new instance of LeaderboardHandlers.
func NewLeaderboardHandlers(service leaderboardservice.Service, logger *slog.Logger, tracer trace.Tracer, helpers utils.Helpers) *LeaderboardHandlers {
	return &LeaderboardHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
		helpers: helpers,
	}
}
