// Package handicaphandlers handles handicap-related events.
package handicaphandlers

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/fairway-links-club/greens-engine/app/events/handicapevents"
	handicapservice "github.com/fairway-links-club/greens-engine/app/modules/handicap/application"
	"github.com/fairway-links-club/greens-engine/internal/handlerwrapper"
	"github.com/fairway-links-club/greens-engine/internal/observability/attr"
	"github.com/fairway-links-club/greens-engine/internal/utils"
)

// HandicapHandlers handles handicap-related events.
type HandicapHandlers struct {
	service handicapservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
	helpers utils.Helpers
}

// NewHandicapHandlers creates a new instance of HandicapHandlers.
func NewHandicapHandlers(service handicapservice.Service, logger *slog.Logger, tracer trace.Tracer, helpers utils.Helpers) *HandicapHandlers {
	return &HandicapHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
		helpers: helpers,
	}
}

// HandleDifferentialSubmitted folds one round differential into the user's
// rolling window. The window is terminal state; nothing fans out from here.
func (h *HandicapHandlers) HandleDifferentialSubmitted(ctx context.Context, payload *handicapevents.DifferentialSubmittedPayload) ([]handlerwrapper.Result, error) {
	h.logger.InfoContext(ctx, "Received differential submission",
		attr.ExtractCorrelationID(ctx),
		attr.EventID(payload.EventID.String()),
		attr.UserID(payload.UserID.String()),
	)

	result, err := h.service.SubmitDifferential(ctx, handicapservice.SubmitDifferentialCommand{
		EventID:      payload.EventID,
		UserID:       payload.UserID,
		Differential: payload.Differential,
		CourseRating: payload.CourseRating,
		SlopeRating:  payload.SlopeRating,
		PlayedAt:     payload.PlayedAt,
	})
	if err != nil {
		// Transient: surfaced to the redelivery mechanism.
		return nil, err
	}
	if result.Failure != nil {
		h.logger.WarnContext(ctx, "Differential submission rejected",
			attr.ExtractCorrelationID(ctx),
			attr.String("reason", result.Failure.Reason),
		)
	}
	return nil, nil
}
