package handicapservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	handicapdomain "github.com/fairway-links-club/greens-engine/app/modules/handicap/domain"
	handicapdb "github.com/fairway-links-club/greens-engine/app/modules/handicap/infrastructure/repositories"
	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
	"github.com/fairway-links-club/greens-engine/internal/observability/attr"
	"github.com/fairway-links-club/greens-engine/internal/results"
)

// SubmitDifferential folds one round differential into the user's rolling
// window.
//
// Insert, window trim, and used-flag recompute run in one transaction: the
// flags are a function of the whole window, so a reader never observes a
// window with flags from a previous snapshot. A replayed event id leaves the
// window untouched.
func (s *HandicapService) SubmitDifferential(ctx context.Context, cmd SubmitDifferentialCommand) (results.OperationResult[SubmitDifferentialResult, SubmitDifferentialFailure], error) {
	return withTelemetry(s, ctx, "SubmitDifferential", func(ctx context.Context) (results.OperationResult[SubmitDifferentialResult, SubmitDifferentialFailure], error) {
		if cmd.EventID == "" || cmd.UserID == "" {
			return results.FailureResult[SubmitDifferentialResult](SubmitDifferentialFailure{
				EventID: cmd.EventID,
				Reason:  "missing event or user id",
			}), nil
		}

		var out SubmitDifferentialResult
		err := s.tx.RunInTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, func(ctx context.Context, tx bun.Tx) error {
			insertErr := s.repo.InsertDifferential(ctx, tx, &handicapdb.DifferentialRecord{
				EventID:      cmd.EventID,
				UserID:       cmd.UserID,
				Differential: cmd.Differential,
				CourseRating: cmd.CourseRating,
				SlopeRating:  cmd.SlopeRating,
				PlayedAt:     cmd.PlayedAt,
			})
			if insertErr != nil {
				if errors.Is(insertErr, handicapdb.ErrDuplicateDifferential) {
					out = SubmitDifferentialResult{UserID: cmd.UserID, Duplicate: true}
					return nil
				}
				return insertErr
			}

			if _, err := s.repo.TrimWindow(ctx, tx, cmd.UserID, handicapdomain.WindowSize); err != nil {
				return err
			}

			window, err := s.repo.ListWindow(ctx, tx, cmd.UserID, handicapdomain.WindowSize)
			if err != nil {
				return err
			}

			diffs := make([]float64, len(window))
			for i, rec := range window {
				diffs[i] = rec.Differential
			}
			used := handicapdomain.SelectUsed(diffs)

			var usedIDs []int64
			for i, u := range used {
				if u {
					usedIDs = append(usedIDs, window[i].ID)
				}
			}
			if err := s.repo.SetUsedFlags(ctx, tx, cmd.UserID, usedIDs); err != nil {
				return err
			}

			out = SubmitDifferentialResult{
				UserID:     cmd.UserID,
				WindowSize: len(window),
				UsedCount:  len(usedIDs),
			}
			return nil
		})
		if err != nil {
			return results.OperationResult[SubmitDifferentialResult, SubmitDifferentialFailure]{}, err
		}

		if out.Duplicate {
			s.logger.InfoContext(ctx, "Duplicate differential ignored",
				attr.ExtractCorrelationID(ctx),
				attr.EventID(cmd.EventID.String()),
			)
		}
		return results.SuccessResult[SubmitDifferentialResult, SubmitDifferentialFailure](out), nil
	})
}

// GetWindow returns a user's rolling window for display, most recent first.
func (s *HandicapService) GetWindow(ctx context.Context, userID sharedtypes.UserID) (*WindowView, error) {
	window, err := s.repo.ListWindow(ctx, s.db, userID, handicapdomain.WindowSize)
	if err != nil {
		return nil, err
	}

	view := &WindowView{
		UserID:        userID,
		Differentials: make([]DifferentialView, 0, len(window)),
	}
	for _, rec := range window {
		if rec.IsUsed {
			view.UsedCount++
		}
		view.Differentials = append(view.Differentials, DifferentialView{
			Differential: rec.Differential,
			CourseRating: rec.CourseRating,
			SlopeRating:  rec.SlopeRating,
			IsUsed:       rec.IsUsed,
			PlayedAt:     rec.PlayedAt,
		})
	}
	return view, nil
}
