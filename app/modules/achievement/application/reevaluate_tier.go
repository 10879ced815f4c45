package achievementservice

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	achievementdomain "github.com/fairway-links-club/greens-engine/app/modules/achievement/domain"
	achievementdb "github.com/fairway-links-club/greens-engine/app/modules/achievement/infrastructure/repositories"
	"github.com/fairway-links-club/greens-engine/internal/observability/attr"
	"github.com/fairway-links-club/greens-engine/internal/results"
)

// ReevaluateTier recomputes a user's tier from the durable leaderboard
// state.
//
// The lowman course count is always re-counted from course_leaderboards,
// never carried as an incremental counter, so a missed or failed evaluation
// heals on the next trigger or audit sweep. The tier write is an upsert into
// the single-row-per-user slot; two concurrent evaluations for the same user
// converge on the same count and tier.
func (s *AchievementService) ReevaluateTier(ctx context.Context, cmd ReevaluateTierCommand) (results.OperationResult[ReevaluateTierResult, ReevaluateTierFailure], error) {
	return withTelemetry(s, ctx, "ReevaluateTier", func(ctx context.Context) (results.OperationResult[ReevaluateTierResult, ReevaluateTierFailure], error) {
		if cmd.UserID == "" {
			return results.FailureResult[ReevaluateTierResult](ReevaluateTierFailure{
				Reason: "missing user id",
			}), nil
		}

		var out ReevaluateTierResult
		err := s.tx.RunInTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, func(ctx context.Context, tx bun.Tx) error {
			count, err := s.repo.CountCoursesLedBy(ctx, tx, cmd.UserID)
			if err != nil {
				return err
			}

			var lowmanAwarded bool
			if cmd.CourseID != "" {
				lowmanAwarded, err = s.repo.AwardBadge(ctx, tx, &achievementdb.CourseBadge{
					UserID:     cmd.UserID,
					BadgeType:  achievementdomain.BadgeLowman,
					CourseID:   cmd.CourseID,
					AchievedAt: time.Now().UTC(),
				})
				if err != nil {
					return err
				}
			}

			removed, err := s.repo.RemoveStaleLowmanBadges(ctx, tx, cmd.UserID)
			if err != nil {
				return err
			}

			previousTier := achievementdomain.TierNone
			since := time.Now().UTC()
			current, err := s.repo.GetTier(ctx, tx, cmd.UserID)
			switch {
			case err == nil:
				previousTier = current.Tier
				since = current.Since
			case errors.Is(err, achievementdb.ErrTierNotFound):
				// First evaluation for this user.
			default:
				return err
			}

			newTier := achievementdomain.TierForCount(count)
			changed := newTier != previousTier
			if changed {
				since = time.Now().UTC()
			}

			if err := s.repo.UpsertTier(ctx, tx, &achievementdb.UserTier{
				UserID:            cmd.UserID,
				Tier:              newTier,
				LowmanCourseCount: count,
				Since:             since,
				UpdatedAt:         time.Now().UTC(),
			}); err != nil {
				return err
			}

			out = ReevaluateTierResult{
				UserID:             cmd.UserID,
				Tier:               newTier,
				PreviousTier:       previousTier,
				LowmanCourseCount:  count,
				Changed:            changed,
				LowmanBadgeAwarded: lowmanAwarded,
				StaleBadgesRemoved: removed,
			}
			return nil
		})
		if err != nil {
			return results.OperationResult[ReevaluateTierResult, ReevaluateTierFailure]{}, err
		}

		if out.Changed {
			s.logger.InfoContext(ctx, "User tier changed",
				attr.ExtractCorrelationID(ctx),
				attr.UserID(cmd.UserID.String()),
				attr.String("previous_tier", string(out.PreviousTier)),
				attr.String("tier", string(out.Tier)),
				attr.Int("lowman_course_count", out.LowmanCourseCount),
			)
		}
		return results.SuccessResult[ReevaluateTierResult, ReevaluateTierFailure](out), nil
	})
}
