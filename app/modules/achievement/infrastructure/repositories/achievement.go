// Package achievementdb handles database operations for badges and tiers.
package achievementdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	achievementdomain "github.com/fairway-links-club/greens-engine/app/modules/achievement/domain"
	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

type RepositoryImpl struct{}

var _ Repository = (*RepositoryImpl)(nil)

// NewRepository returns the bun-backed achievement repository.
func NewRepository() *RepositoryImpl {
	return &RepositoryImpl{}
}

func (r *RepositoryImpl) AwardBadge(ctx context.Context, db bun.IDB, badge *CourseBadge) (bool, error) {
	res, err := db.NewInsert().
		Model(badge).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to award %s badge to %s: %w", badge.BadgeType, badge.UserID, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected for %s badge: %w", badge.BadgeType, err)
	}
	return rows > 0, nil
}

func (r *RepositoryImpl) RemoveStaleLowmanBadges(ctx context.Context, db bun.IDB, userID sharedtypes.UserID) (int, error) {
	res, err := db.NewDelete().
		Model((*CourseBadge)(nil)).
		Where("user_id = ?", userID).
		Where("badge_type = ?", achievementdomain.BadgeLowman).
		Where("course_id NOT IN (SELECT course_id FROM course_leaderboards WHERE leader_user_id = ?)", userID).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to remove stale lowman badges for %s: %w", userID, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected for stale badges of %s: %w", userID, err)
	}
	return int(rows), nil
}

func (r *RepositoryImpl) ListBadges(ctx context.Context, db bun.IDB, userID sharedtypes.UserID) ([]CourseBadge, error) {
	var badges []CourseBadge
	err := db.NewSelect().
		Model(&badges).
		Where("user_id = ?", userID).
		Order("achieved_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list badges for %s: %w", userID, err)
	}
	return badges, nil
}

func (r *RepositoryImpl) GetTier(ctx context.Context, db bun.IDB, userID sharedtypes.UserID) (*UserTier, error) {
	tier := new(UserTier)
	err := db.NewSelect().
		Model(tier).
		Where("user_id = ?", userID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTierNotFound
		}
		return nil, fmt.Errorf("failed to load tier for %s: %w", userID, err)
	}
	return tier, nil
}

func (r *RepositoryImpl) UpsertTier(ctx context.Context, db bun.IDB, tier *UserTier) error {
	_, err := db.NewInsert().
		Model(tier).
		On("CONFLICT (user_id) DO UPDATE").
		Set("tier = EXCLUDED.tier").
		Set("lowman_course_count = EXCLUDED.lowman_course_count").
		Set("since = EXCLUDED.since").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert tier for %s: %w", tier.UserID, err)
	}
	return nil
}

func (r *RepositoryImpl) CountCoursesLedBy(ctx context.Context, db bun.IDB, userID sharedtypes.UserID) (int, error) {
	var count int
	err := db.NewRaw("SELECT count(*) FROM course_leaderboards WHERE leader_user_id = ?", userID).
		Scan(ctx, &count)
	if err != nil {
		return 0, fmt.Errorf("failed to count courses led by %s: %w", userID, err)
	}
	return count, nil
}

func (r *RepositoryImpl) ListAuditCandidates(ctx context.Context, db bun.IDB) ([]sharedtypes.UserID, error) {
	var userIDs []sharedtypes.UserID
	err := db.NewRaw(
		"SELECT user_id FROM user_tiers UNION SELECT leader_user_id FROM course_leaderboards WHERE leader_user_id <> ''",
	).Scan(ctx, &userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list tier audit candidates: %w", err)
	}
	return userIDs, nil
}
