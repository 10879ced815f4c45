// Package achievementhandlers handles achievement-related events.
package achievementhandlers

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	achievementservice "github.com/fairway-links-club/greens-engine/app/modules/achievement/application"
	"github.com/fairway-links-club/greens-engine/internal/utils"
)

// AchievementHandlers handles achievement-related events.
type AchievementHandlers struct {
	service achievementservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
	helpers utils.Helpers
}

// NewAchievementHandlers creates a new instance of AchievementHandlers.
func NewAchievementHandlers(service achievementservice.Service, logger *slog.Logger, tracer trace.Tracer, helpers utils.Helpers) *AchievementHandlers {
	return &AchievementHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
		helpers: helpers,
	}
}
