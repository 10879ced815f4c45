package achievementhandlers

import (
	"context"

	"github.com/fairway-links-club/greens-engine/app/events/achievementevents"
	"github.com/fairway-links-club/greens-engine/app/events/notificationevents"
	achievementservice "github.com/fairway-links-club/greens-engine/app/modules/achievement/application"
	achievementdomain "github.com/fairway-links-club/greens-engine/app/modules/achievement/domain"
	"github.com/fairway-links-club/greens-engine/internal/handlerwrapper"
	"github.com/fairway-links-club/greens-engine/internal/observability/attr"
)

// HandleHoleInOneRequested records an ace badge; only a genuinely new badge
// produces an outbound notification, so redeliveries stay silent.
func (h *AchievementHandlers) HandleHoleInOneRequested(ctx context.Context, payload *achievementevents.HoleInOneRequestedPayload) ([]handlerwrapper.Result, error) {
	h.logger.InfoContext(ctx, "Received hole-in-one event",
		attr.ExtractCorrelationID(ctx),
		attr.EventID(payload.EventID.String()),
		attr.UserID(payload.UserID.String()),
	)

	result, err := h.service.AwardHoleInOne(ctx, achievementservice.AwardHoleInOneCommand{
		EventID:  payload.EventID,
		UserID:   payload.UserID,
		CourseID: payload.CourseID,
		Score:    payload.Score,
	})
	if err != nil {
		return nil, err
	}
	if result.Failure != nil {
		h.logger.WarnContext(ctx, "Hole-in-one award rejected",
			attr.ExtractCorrelationID(ctx),
			attr.String("reason", result.Failure.Reason),
		)
		return nil, nil
	}

	if !result.Success.Awarded {
		return nil, nil
	}

	return []handlerwrapper.Result{
		{
			Topic: notificationevents.BadgeAwardedV1,
			Payload: notificationevents.BadgeAwardedPayload{
				UserID:    result.Success.UserID,
				BadgeType: achievementdomain.BadgeHoleInOne,
				CourseID:  result.Success.CourseID,
			},
		},
	}, nil
}
