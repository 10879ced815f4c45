// Package scorehandlers handles inbound score events.
package scorehandlers

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	scoreservice "github.com/fairway-links-club/greens-engine/app/modules/score/application"
	"github.com/fairway-links-club/greens-engine/internal/utils"
)

// ScoreHandlers handles inbound score events.
type ScoreHandlers struct {
	service scoreservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
	helpers utils.Helpers
}

// NewScoreHandlers creates a new instance of ScoreHandlers.
func NewScoreHandlers(service scoreservice.Service, logger *slog.Logger, tracer trace.Tracer, helpers utils.Helpers) *ScoreHandlers {
	return &ScoreHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
		helpers: helpers,
	}
}
