package scoreservice

import (
	"context"

	"github.com/fairway-links-club/greens-engine/app/events/scoreevents"
	"github.com/fairway-links-club/greens-engine/internal/results"
)

// Service is the score ingestion surface consumed by the message handlers.
type Service interface {
	IngestScore(ctx context.Context, payload scoreevents.RoundCompletedPayload) (results.OperationResult[IngestResult, IngestFailure], error)
}

var _ Service = (*ScoreService)(nil)
