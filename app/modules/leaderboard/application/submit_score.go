package leaderboardservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	leaderboarddomain "github.com/fairway-links-club/greens-engine/app/modules/leaderboard/domain"
	leaderboarddb "github.com/fairway-links-club/greens-engine/app/modules/leaderboard/infrastructure/repositories"
	"github.com/fairway-links-club/greens-engine/internal/observability/attr"
	"github.com/fairway-links-club/greens-engine/internal/results"
)

// SubmitScore folds one score into its (region, course) leaderboard.
//
// The read-merge-write runs as a single transaction guarded by the board's
// version column and is retried on conflict up to the configured budget.
// Exhausting the budget surfaces a transient error to the caller's
// redelivery mechanism; no partial state is committed. The event id is
// claimed inside the same transaction, so a redelivered event is a no-op.
func (s *LeaderboardService) SubmitScore(ctx context.Context, cmd SubmitScoreCommand) (results.OperationResult[SubmitScoreResult, SubmitScoreFailure], error) {
	return withTelemetry(s, ctx, "SubmitScore", func(ctx context.Context) (results.OperationResult[SubmitScoreResult, SubmitScoreFailure], error) {
		if cmd.EventID == "" {
			return results.FailureResult[SubmitScoreResult, SubmitScoreFailure](SubmitScoreFailure{
				EventID: cmd.EventID,
				Reason:  "missing event id",
			}), nil
		}

		var lastErr error
		for attempt := 0; attempt < s.retryAttempts; attempt++ {
			result, err := s.submitOnce(ctx, cmd)
			if err == nil {
				if result.Duplicate {
					s.logger.InfoContext(ctx, "Duplicate score event ignored",
						attr.ExtractCorrelationID(ctx),
						attr.EventID(cmd.EventID.String()),
					)
				}
				return results.SuccessResult[SubmitScoreResult, SubmitScoreFailure](*result), nil
			}
			if !errors.Is(err, leaderboarddb.ErrVersionConflict) {
				return results.OperationResult[SubmitScoreResult, SubmitScoreFailure]{}, err
			}

			lastErr = err
			s.logger.InfoContext(ctx, "Leaderboard version conflict, retrying",
				attr.ExtractCorrelationID(ctx),
				attr.EventID(cmd.EventID.String()),
				attr.Int("attempt", attempt+1),
			)
		}

		return results.OperationResult[SubmitScoreResult, SubmitScoreFailure]{},
			fmt.Errorf("submit retry budget exhausted after %d attempts: %w", s.retryAttempts, lastErr)
	})
}

func (s *LeaderboardService) submitOnce(ctx context.Context, cmd SubmitScoreCommand) (*SubmitScoreResult, error) {
	var out *SubmitScoreResult

	err := s.tx.RunInTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, func(ctx context.Context, tx bun.Tx) error {
		claimErr := s.repo.ClaimSubmission(ctx, tx, &leaderboarddb.Submission{
			EventID:   cmd.EventID,
			RegionKey: cmd.RegionKey,
			CourseID:  cmd.CourseID,
			UserID:    cmd.UserID,
		})
		if claimErr != nil {
			if errors.Is(claimErr, leaderboarddb.ErrDuplicateSubmission) {
				out = &SubmitScoreResult{
					RegionKey: cmd.RegionKey,
					CourseID:  cmd.CourseID,
					Duplicate: true,
				}
				return nil
			}
			return claimErr
		}

		entry := leaderboarddomain.Entry{
			UserID:      cmd.UserID,
			DisplayName: cmd.DisplayName,
			GrossScore:  cmd.GrossScore,
			NetScore:    cmd.NetScore,
			CreatedAt:   cmd.CreatedAt,
		}

		current, err := s.repo.GetByKey(ctx, tx, cmd.RegionKey, cmd.CourseID)
		switch {
		case err == nil:
			merged := leaderboarddomain.Merge(current.TopEntries, entry, current.LowNetScore, true, s.topSize)

			current.TopEntries = merged.TopEntries
			current.LeaderUserID = leaderboarddomain.LeaderUserID(merged.TopEntries)
			current.LowNetScore = merged.LowNetScore
			current.TotalScoreCount++
			current.LastUpdated = time.Now().UTC()

			if err := s.repo.UpdateVersioned(ctx, tx, current, current.Version); err != nil {
				return err
			}

			out = s.resultFrom(cmd, current, merged.BecameNewLeader)
			return nil

		case errors.Is(err, leaderboarddb.ErrNotFound):
			merged := leaderboarddomain.Merge(nil, entry, 0, false, s.topSize)

			created := &leaderboarddb.CourseLeaderboard{
				RegionKey:       cmd.RegionKey,
				CourseID:        cmd.CourseID,
				CourseName:      cmd.CourseName,
				TopEntries:      merged.TopEntries,
				LeaderUserID:    leaderboarddomain.LeaderUserID(merged.TopEntries),
				LowNetScore:     merged.LowNetScore,
				TotalScoreCount: 1,
				LastUpdated:     time.Now().UTC(),
			}
			if err := s.repo.Create(ctx, tx, created); err != nil {
				return err
			}

			out = s.resultFrom(cmd, created, merged.BecameNewLeader)
			return nil

		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *LeaderboardService) resultFrom(cmd SubmitScoreCommand, board *leaderboarddb.CourseLeaderboard, becameNewLeader bool) *SubmitScoreResult {
	return &SubmitScoreResult{
		RegionKey:       board.RegionKey,
		CourseID:        board.CourseID,
		CourseName:      cmd.CourseName,
		TopEntries:      board.TopEntries,
		LowNetScore:     board.LowNetScore,
		TotalScoreCount: board.TotalScoreCount,
		BecameNewLeader: becameNewLeader,
	}
}
