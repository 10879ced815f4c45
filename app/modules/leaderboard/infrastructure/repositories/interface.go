package leaderboarddb

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

// Repository persists course leaderboards. Methods take bun.IDB so the
// service layer can compose them inside a single transaction.
type Repository interface {
	// GetByKey loads the leaderboard for a (region, course) key.
	// Returns ErrNotFound when none exists yet.
	GetByKey(ctx context.Context, db bun.IDB, regionKey sharedtypes.RegionKey, courseID sharedtypes.CourseID) (*CourseLeaderboard, error)

	// Create inserts the first leaderboard for a key. Returns
	// ErrVersionConflict when a concurrent writer created it first.
	Create(ctx context.Context, db bun.IDB, leaderboard *CourseLeaderboard) error

	// UpdateVersioned writes the merged leaderboard guarded by the version
	// read earlier. Returns ErrVersionConflict when the guard fails.
	UpdateVersioned(ctx context.Context, db bun.IDB, leaderboard *CourseLeaderboard, expectedVersion int64) error

	// ClaimSubmission records the event id for dedup. Returns
	// ErrDuplicateSubmission when the event was already folded in.
	ClaimSubmission(ctx context.Context, db bun.IDB, submission *Submission) error

	// CountCoursesLedBy counts distinct courses where the user currently
	// holds rank 1. Recomputed from durable rows every time; never cached.
	CountCoursesLedBy(ctx context.Context, db bun.IDB, userID sharedtypes.UserID) (int, error)

	// ListByRegion returns every leaderboard in a region for display reads.
	ListByRegion(ctx context.Context, db bun.IDB, regionKey sharedtypes.RegionKey) ([]CourseLeaderboard, error)
}
