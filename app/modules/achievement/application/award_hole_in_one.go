package achievementservice

import (
	"context"
	"time"

	achievementdomain "github.com/fairway-links-club/greens-engine/app/modules/achievement/domain"
	achievementdb "github.com/fairway-links-club/greens-engine/app/modules/achievement/infrastructure/repositories"
	"github.com/fairway-links-club/greens-engine/internal/observability/attr"
	"github.com/fairway-links-club/greens-engine/internal/results"
)

// AwardHoleInOne records an ace in the badge ledger. The badge is keyed by
// the originating event id, so a redelivered score event cannot double-award.
func (s *AchievementService) AwardHoleInOne(ctx context.Context, cmd AwardHoleInOneCommand) (results.OperationResult[AwardHoleInOneResult, AwardHoleInOneFailure], error) {
	return withTelemetry(s, ctx, "AwardHoleInOne", func(ctx context.Context) (results.OperationResult[AwardHoleInOneResult, AwardHoleInOneFailure], error) {
		if cmd.EventID == "" || cmd.UserID == "" {
			return results.FailureResult[AwardHoleInOneResult](AwardHoleInOneFailure{
				EventID: cmd.EventID,
				Reason:  "missing event or user id",
			}), nil
		}

		awarded, err := s.repo.AwardBadge(ctx, s.db, &achievementdb.CourseBadge{
			UserID:     cmd.UserID,
			BadgeType:  achievementdomain.BadgeHoleInOne,
			CourseID:   cmd.CourseID,
			EventID:    cmd.EventID,
			Score:      cmd.Score,
			AchievedAt: time.Now().UTC(),
		})
		if err != nil {
			return results.OperationResult[AwardHoleInOneResult, AwardHoleInOneFailure]{}, err
		}

		if awarded {
			s.logger.InfoContext(ctx, "Hole-in-one badge awarded",
				attr.ExtractCorrelationID(ctx),
				attr.UserID(cmd.UserID.String()),
				attr.CourseID(cmd.CourseID.String()),
			)
		}
		return results.SuccessResult[AwardHoleInOneResult, AwardHoleInOneFailure](AwardHoleInOneResult{
			UserID:   cmd.UserID,
			CourseID: cmd.CourseID,
			Awarded:  awarded,
		}), nil
	})
}
