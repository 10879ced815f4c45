package scoredb

import (
	"context"
	"errors"

	"github.com/uptrace/bun"
)

// ErrDuplicateEvent is returned when the event id has already been recorded.
var ErrDuplicateEvent = errors.New("score event already ingested")

// Repository persists the score ingestion audit trail.
type Repository interface {
	// RecordIngestion inserts the audit row, returning ErrDuplicateEvent on
	// replay. Replays are logged, not fatal; downstream writes dedupe on
	// their own.
	RecordIngestion(ctx context.Context, db bun.IDB, ingestion *ScoreIngestion) error
	// CountByStatus reports how many ingestions carry the given status.
	CountByStatus(ctx context.Context, db bun.IDB, status string) (int, error)
}
