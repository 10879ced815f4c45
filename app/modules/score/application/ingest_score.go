package scoreservice

import (
	"context"
	"errors"

	"github.com/fairway-links-club/greens-engine/app/events/achievementevents"
	"github.com/fairway-links-club/greens-engine/app/events/handicapevents"
	"github.com/fairway-links-club/greens-engine/app/events/leaderboardevents"
	"github.com/fairway-links-club/greens-engine/app/events/scoreevents"
	scoredomain "github.com/fairway-links-club/greens-engine/app/modules/score/domain"
	scoredb "github.com/fairway-links-club/greens-engine/app/modules/score/infrastructure/repositories"
	"github.com/fairway-links-club/greens-engine/internal/observability/attr"
	"github.com/fairway-links-club/greens-engine/internal/results"
)

// IngestScore validates the inbound round event, records the ingestion for
// audit, and plans the downstream fan-out.
func (s *ScoreService) IngestScore(ctx context.Context, payload scoreevents.RoundCompletedPayload) (results.OperationResult[IngestResult, IngestFailure], error) {
	return withTelemetry(s, ctx, "IngestScore", func(ctx context.Context) (results.OperationResult[IngestResult, IngestFailure], error) {
		fact, err := scoredomain.Validate(scoredomain.RawEvent{
			EventID:      payload.EventID,
			UserID:       payload.UserID,
			DisplayName:  payload.DisplayName,
			RegionKey:    payload.RegionKey,
			CourseID:     payload.CourseID,
			CourseName:   payload.CourseName,
			GrossScore:   payload.GrossScore,
			NetScore:     payload.NetScore,
			HoleCount:    payload.HoleCount,
			HadHoleInOne: payload.HadHoleInOne,
			CourseRating: payload.CourseRating,
			SlopeRating:  payload.SlopeRating,
			CreatedAt:    payload.CreatedAt,
		})
		if err != nil {
			var vErr *scoredomain.ValidationError
			if errors.As(err, &vErr) {
				s.logger.WarnContext(ctx, "Rejected malformed score event",
					attr.ExtractCorrelationID(ctx),
					attr.EventID(payload.EventID.String()),
					attr.Error(vErr),
				)
				if payload.EventID != "" {
					s.recordIngestion(ctx, payload, scoredb.StatusRejected)
				}
				return results.FailureResult[IngestResult](IngestFailure{
					EventID: payload.EventID,
					Reason:  vErr.Error(),
				}), nil
			}
			return results.OperationResult[IngestResult, IngestFailure]{}, err
		}

		duplicate := s.recordIngestion(ctx, payload, scoredb.StatusAccepted)
		if duplicate {
			// The audit row already exists, but the original attempt may have
			// died before publishing. Re-plan the fan-out; downstream writes
			// collapse replays on the event id.
			s.logger.InfoContext(ctx, "Replaying previously ingested score event",
				attr.ExtractCorrelationID(ctx),
				attr.EventID(fact.EventID.String()),
				attr.UserID(fact.UserID.String()),
			)
		}

		result := IngestResult{
			EventID:   fact.EventID,
			UserID:    fact.UserID,
			Duplicate: duplicate,
		}

		if fact.EligibleForRanking() {
			result.LeaderboardSubmit = &leaderboardevents.SubmitRequestedPayload{
				EventID:     fact.EventID,
				RegionKey:   fact.RegionKey,
				CourseID:    fact.CourseID,
				CourseName:  fact.CourseName,
				UserID:      fact.UserID,
				DisplayName: fact.DisplayName,
				GrossScore:  fact.GrossScore,
				NetScore:    fact.NetScore,
				CreatedAt:   fact.CreatedAt,
			}
		} else {
			s.logger.InfoContext(ctx, "Partial round skips leaderboard ranking",
				attr.ExtractCorrelationID(ctx),
				attr.EventID(fact.EventID.String()),
				attr.Int("hole_count", fact.HoleCount),
			)
		}

		if fact.HasRatings() {
			result.Differential = &handicapevents.DifferentialSubmittedPayload{
				EventID:      fact.EventID,
				UserID:       fact.UserID,
				Differential: fact.Differential(),
				CourseRating: fact.CourseRating,
				SlopeRating:  fact.SlopeRating,
				PlayedAt:     fact.CreatedAt,
			}
		}

		if fact.HadHoleInOne {
			result.HoleInOne = &achievementevents.HoleInOneRequestedPayload{
				EventID:  fact.EventID,
				UserID:   fact.UserID,
				CourseID: fact.CourseID,
				Score:    fact.GrossScore,
			}
		}

		return results.SuccessResult[IngestResult, IngestFailure](result), nil
	})
}

// recordIngestion writes the audit row and reports whether the event id was
// already recorded. Audit write failures are logged, not fatal: the fan-out
// must not be blocked by a degraded audit table.
func (s *ScoreService) recordIngestion(ctx context.Context, payload scoreevents.RoundCompletedPayload, status string) bool {
	err := s.repo.RecordIngestion(ctx, s.db, &scoredb.ScoreIngestion{
		EventID:    payload.EventID,
		UserID:     payload.UserID,
		RegionKey:  payload.RegionKey,
		CourseID:   payload.CourseID,
		GrossScore: payload.GrossScore,
		NetScore:   payload.NetScore,
		HoleCount:  payload.HoleCount,
		Status:     status,
	})
	if errors.Is(err, scoredb.ErrDuplicateEvent) {
		return true
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to record score ingestion",
			attr.ExtractCorrelationID(ctx),
			attr.EventID(payload.EventID.String()),
			attr.Error(err),
		)
	}
	return false
}
