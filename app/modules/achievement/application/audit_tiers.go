package achievementservice

import (
	"context"

	"github.com/fairway-links-club/greens-engine/internal/observability/attr"
	"github.com/fairway-links-club/greens-engine/internal/results"
)

// AuditTiers re-evaluates every user who holds a tier or currently leads a
// course. A leaderboard update whose follow-up tier evaluation was lost to a
// crash converges here; the sweep is the self-healing half of the pipeline.
func (s *AchievementService) AuditTiers(ctx context.Context) (results.OperationResult[AuditTiersResult, AuditTiersFailure], error) {
	return withTelemetry(s, ctx, "AuditTiers", func(ctx context.Context) (results.OperationResult[AuditTiersResult, AuditTiersFailure], error) {
		candidates, err := s.repo.ListAuditCandidates(ctx, s.db)
		if err != nil {
			return results.OperationResult[AuditTiersResult, AuditTiersFailure]{}, err
		}

		changed := 0
		for _, userID := range candidates {
			result, err := s.ReevaluateTier(ctx, ReevaluateTierCommand{UserID: userID})
			if err != nil {
				// Keep sweeping; the user is retried next interval.
				s.logger.WarnContext(ctx, "Tier audit skipped user after error",
					attr.UserID(userID.String()),
					attr.Error(err),
				)
				continue
			}
			if result.IsSuccess() && result.Success.Changed {
				changed++
			}
		}

		s.logger.InfoContext(ctx, "Tier audit sweep completed",
			attr.Int("candidates", len(candidates)),
			attr.Int("changed", changed),
		)
		return results.SuccessResult[AuditTiersResult, AuditTiersFailure](AuditTiersResult{
			Candidates: len(candidates),
			Changed:    changed,
		}), nil
	})
}
