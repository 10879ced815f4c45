package handicapdb

import (
	"context"
	"errors"

	"github.com/uptrace/bun"

	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

// ErrDuplicateDifferential is returned when the event id is already in the
// window.
var ErrDuplicateDifferential = errors.New("differential already recorded")

// Repository persists per-user rolling differential windows.
type Repository interface {
	// InsertDifferential appends the record, returning
	// ErrDuplicateDifferential on replay.
	InsertDifferential(ctx context.Context, db bun.IDB, record *DifferentialRecord) error
	// TrimWindow deletes records that have slid past the most recent
	// `size`, reporting how many were removed.
	TrimWindow(ctx context.Context, db bun.IDB, userID sharedtypes.UserID, size int) (int, error)
	// ListWindow returns the window most recent first.
	ListWindow(ctx context.Context, db bun.IDB, userID sharedtypes.UserID, size int) ([]DifferentialRecord, error)
	// SetUsedFlags makes exactly the given record ids used for the user.
	SetUsedFlags(ctx context.Context, db bun.IDB, userID sharedtypes.UserID, usedIDs []int64) error
}
