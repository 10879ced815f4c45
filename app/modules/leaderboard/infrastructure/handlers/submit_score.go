package leaderboardhandlers

import (
	"context"

	leaderboardservice "github.com/fairway-links-club/greens-engine/app/modules/leaderboard/application"
	"github.com/fairway-links-club/greens-engine/app/events/leaderboardevents"
	"github.com/fairway-links-club/greens-engine/app/events/notificationevents"
	"github.com/fairway-links-club/greens-engine/internal/handlerwrapper"
	"github.com/fairway-links-club/greens-engine/internal/observability/attr"
)

// HandleSubmitRequested folds a validated score into its course leaderboard
// and, when the submitter unseats the previous leader, fans out the internal
// leader-changed event plus the outbound notification.
func (h *LeaderboardHandlers) HandleSubmitRequested(ctx context.Context, payload *leaderboardevents.SubmitRequestedPayload) ([]handlerwrapper.Result, error) {
	h.logger.InfoContext(ctx, "Received leaderboard submit request",
		attr.ExtractCorrelationID(ctx),
		attr.EventID(payload.EventID.String()),
		attr.RegionKey(payload.RegionKey.String()),
		attr.CourseID(payload.CourseID.String()),
	)

	result, err := h.service.SubmitScore(ctx, leaderboardservice.SubmitScoreCommand{
		EventID:     payload.EventID,
		RegionKey:   payload.RegionKey,
		CourseID:    payload.CourseID,
		CourseName:  payload.CourseName,
		UserID:      payload.UserID,
		DisplayName: payload.DisplayName,
		GrossScore:  payload.GrossScore,
		NetScore:    payload.NetScore,
		CreatedAt:   payload.CreatedAt,
	})
	if err != nil {
		// Transient: surfaced to the redelivery mechanism.
		return nil, err
	}

	if result.Failure != nil {
		return []handlerwrapper.Result{
			{
				Topic: leaderboardevents.SubmitFailedV1,
				Payload: leaderboardevents.SubmitFailedPayload{
					EventID: result.Failure.EventID,
					Reason:  result.Failure.Reason,
				},
			},
		}, nil
	}

	success := result.Success
	if success.Duplicate || !success.BecameNewLeader {
		return nil, nil
	}

	leader := leaderboardevents.LeaderChangedPayload{
		RegionKey:  success.RegionKey,
		CourseID:   success.CourseID,
		CourseName: success.CourseName,
		UserID:     payload.UserID,
		GrossScore: payload.GrossScore,
		NetScore:   payload.NetScore,
	}

	h.logger.InfoContext(ctx, "New leaderboard leader",
		attr.ExtractCorrelationID(ctx),
		attr.UserID(payload.UserID.String()),
		attr.CourseID(payload.CourseID.String()),
	)

	return []handlerwrapper.Result{
		{Topic: leaderboardevents.LeaderChangedV1, Payload: leader},
		{
			Topic: notificationevents.LeaderChangedV1,
			Payload: notificationevents.LeaderChangedPayload{
				RegionKey:  leader.RegionKey,
				CourseID:   leader.CourseID,
				CourseName: leader.CourseName,
				UserID:     leader.UserID,
				GrossScore: leader.GrossScore,
				NetScore:   leader.NetScore,
			},
		},
	}, nil
}
