package achievementdb

import (
	"context"
	"errors"

	"github.com/uptrace/bun"

	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

// ErrTierNotFound is returned when the user has no tier row yet; callers
// treat it as tier "none".
var ErrTierNotFound = errors.New("user tier not found")

// Repository is the badge ledger and tier slot store.
type Repository interface {
	// AwardBadge inserts the badge if its idempotency key is new, reporting
	// whether a row was actually written.
	AwardBadge(ctx context.Context, db bun.IDB, badge *CourseBadge) (bool, error)
	// RemoveStaleLowmanBadges deletes lowman badges on courses the user no
	// longer leads, reporting how many were removed.
	RemoveStaleLowmanBadges(ctx context.Context, db bun.IDB, userID sharedtypes.UserID) (int, error)
	ListBadges(ctx context.Context, db bun.IDB, userID sharedtypes.UserID) ([]CourseBadge, error)

	GetTier(ctx context.Context, db bun.IDB, userID sharedtypes.UserID) (*UserTier, error)
	// UpsertTier atomically replaces the user's single tier slot.
	UpsertTier(ctx context.Context, db bun.IDB, tier *UserTier) error

	// CountCoursesLedBy reports the user's current lowman course count from
	// the durable leaderboard state.
	CountCoursesLedBy(ctx context.Context, db bun.IDB, userID sharedtypes.UserID) (int, error)
	// ListAuditCandidates returns every user who either holds a tier row or
	// currently leads a course; the periodic audit re-evaluates them all.
	ListAuditCandidates(ctx context.Context, db bun.IDB) ([]sharedtypes.UserID, error)
}
