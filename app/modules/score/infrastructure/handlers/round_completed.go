package scorehandlers

import (
	"context"

	"github.com/fairway-links-club/greens-engine/app/events/achievementevents"
	"github.com/fairway-links-club/greens-engine/app/events/handicapevents"
	"github.com/fairway-links-club/greens-engine/app/events/leaderboardevents"
	"github.com/fairway-links-club/greens-engine/app/events/scoreevents"
	"github.com/fairway-links-club/greens-engine/internal/handlerwrapper"
	"github.com/fairway-links-club/greens-engine/internal/observability/attr"
)

// HandleRoundCompleted validates an inbound round event and fans it out to
// the leaderboard, handicap, and achievement pipelines.
func (h *ScoreHandlers) HandleRoundCompleted(ctx context.Context, payload *scoreevents.RoundCompletedPayload) ([]handlerwrapper.Result, error) {
	h.logger.InfoContext(ctx, "Received round completed event",
		attr.ExtractCorrelationID(ctx),
		attr.EventID(payload.EventID.String()),
		attr.UserID(payload.UserID.String()),
		attr.CourseID(payload.CourseID.String()),
	)

	result, err := h.service.IngestScore(ctx, *payload)
	if err != nil {
		// Transient: surfaced to the redelivery mechanism.
		return nil, err
	}

	if result.Failure != nil {
		return []handlerwrapper.Result{
			{
				Topic: scoreevents.IngestFailedV1,
				Payload: scoreevents.IngestFailedPayload{
					EventID: result.Failure.EventID,
					Reason:  result.Failure.Reason,
				},
			},
		}, nil
	}

	plan := result.Success
	var out []handlerwrapper.Result
	if plan.LeaderboardSubmit != nil {
		out = append(out, handlerwrapper.Result{
			Topic:   leaderboardevents.SubmitRequestedV1,
			Payload: plan.LeaderboardSubmit,
		})
	}
	if plan.Differential != nil {
		out = append(out, handlerwrapper.Result{
			Topic:   handicapevents.DifferentialSubmittedV1,
			Payload: plan.Differential,
		})
	}
	if plan.HoleInOne != nil {
		out = append(out, handlerwrapper.Result{
			Topic:   achievementevents.HoleInOneRequestedV1,
			Payload: plan.HoleInOne,
		})
	}
	return out, nil
}
