package achievementhandlers

import (
	"context"

	"github.com/fairway-links-club/greens-engine/app/events/achievementevents"
	"github.com/fairway-links-club/greens-engine/app/events/leaderboardevents"
	"github.com/fairway-links-club/greens-engine/app/events/notificationevents"
	achievementservice "github.com/fairway-links-club/greens-engine/app/modules/achievement/application"
	achievementdomain "github.com/fairway-links-club/greens-engine/app/modules/achievement/domain"
	"github.com/fairway-links-club/greens-engine/internal/handlerwrapper"
	"github.com/fairway-links-club/greens-engine/internal/observability/attr"
)

// HandleLeaderChanged re-evaluates the new leader's tier after the
// leaderboard update has committed; the evaluation reads the post-update
// leaderboard state, never the pre-update one.
func (h *AchievementHandlers) HandleLeaderChanged(ctx context.Context, payload *leaderboardevents.LeaderChangedPayload) ([]handlerwrapper.Result, error) {
	h.logger.InfoContext(ctx, "Received leader changed event",
		attr.ExtractCorrelationID(ctx),
		attr.UserID(payload.UserID.String()),
		attr.CourseID(payload.CourseID.String()),
	)

	result, err := h.service.ReevaluateTier(ctx, achievementservice.ReevaluateTierCommand{
		UserID:   payload.UserID,
		CourseID: payload.CourseID,
	})
	if err != nil {
		// Transient: surfaced to the redelivery mechanism. The periodic
		// audit sweep converges even if every redelivery fails.
		return nil, err
	}
	if result.Failure != nil {
		h.logger.WarnContext(ctx, "Tier re-evaluation rejected",
			attr.ExtractCorrelationID(ctx),
			attr.String("reason", result.Failure.Reason),
		)
		return nil, nil
	}

	success := result.Success
	var out []handlerwrapper.Result

	if success.LowmanBadgeAwarded {
		out = append(out, handlerwrapper.Result{
			Topic: notificationevents.BadgeAwardedV1,
			Payload: notificationevents.BadgeAwardedPayload{
				UserID:    success.UserID,
				BadgeType: achievementdomain.BadgeLowman,
				CourseID:  payload.CourseID,
			},
		})
	}

	if success.Changed {
		out = append(out, handlerwrapper.Result{
			Topic: achievementevents.TierReevaluatedV1,
			Payload: achievementevents.TierReevaluatedPayload{
				UserID:            success.UserID,
				Tier:              string(success.Tier),
				LowmanCourseCount: success.LowmanCourseCount,
				Changed:           true,
			},
		})
		if success.Tier != achievementdomain.TierNone {
			out = append(out, handlerwrapper.Result{
				Topic: notificationevents.BadgeAwardedV1,
				Payload: notificationevents.BadgeAwardedPayload{
					UserID:    success.UserID,
					BadgeType: string(success.Tier),
				},
			})
		}
	}

	return out, nil
}
