// Package leaderboarddb handles database operations for course leaderboards.
package leaderboarddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

type RepositoryImpl struct{}

var _ Repository = (*RepositoryImpl)(nil)

// NewRepository returns the bun-backed leaderboard repository.
func NewRepository() *RepositoryImpl {
	return &RepositoryImpl{}
}

func (r *RepositoryImpl) GetByKey(ctx context.Context, db bun.IDB, regionKey sharedtypes.RegionKey, courseID sharedtypes.CourseID) (*CourseLeaderboard, error) {
	leaderboard := new(CourseLeaderboard)

	err := db.NewSelect().
		Model(leaderboard).
		Where("region_key = ?", regionKey).
		Where("course_id = ?", courseID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load leaderboard for %s/%s: %w", regionKey, courseID, err)
	}
	return leaderboard, nil
}

func (r *RepositoryImpl) Create(ctx context.Context, db bun.IDB, leaderboard *CourseLeaderboard) error {
	_, err := db.NewInsert().
		Model(leaderboard).
		Exec(ctx)
	if err != nil {
		// A unique violation on (region_key, course_id) means a concurrent
		// writer created the board first; the caller re-reads and retries.
		if isUniqueViolation(err) {
			return ErrVersionConflict
		}
		return fmt.Errorf("failed to create leaderboard for %s/%s: %w", leaderboard.RegionKey, leaderboard.CourseID, err)
	}
	return nil
}

func (r *RepositoryImpl) UpdateVersioned(ctx context.Context, db bun.IDB, leaderboard *CourseLeaderboard, expectedVersion int64) error {
	res, err := db.NewUpdate().
		Model(leaderboard).
		Set("top_entries = ?", leaderboard.TopEntries).
		Set("leader_user_id = ?", leaderboard.LeaderUserID).
		Set("low_net_score = ?", leaderboard.LowNetScore).
		Set("total_score_count = ?", leaderboard.TotalScoreCount).
		Set("last_updated = ?", leaderboard.LastUpdated).
		Set("version = ?", expectedVersion+1).
		Where("id = ?", leaderboard.ID).
		Where("version = ?", expectedVersion).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update leaderboard %d: %w", leaderboard.ID, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected for leaderboard %d: %w", leaderboard.ID, err)
	}
	if rows == 0 {
		return ErrVersionConflict
	}

	leaderboard.Version = expectedVersion + 1
	return nil
}

func (r *RepositoryImpl) ClaimSubmission(ctx context.Context, db bun.IDB, submission *Submission) error {
	res, err := db.NewInsert().
		Model(submission).
		On("CONFLICT (event_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to claim submission %s: %w", submission.EventID, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected for submission %s: %w", submission.EventID, err)
	}
	if rows == 0 {
		return ErrDuplicateSubmission
	}
	return nil
}

func (r *RepositoryImpl) CountCoursesLedBy(ctx context.Context, db bun.IDB, userID sharedtypes.UserID) (int, error) {
	count, err := db.NewSelect().
		Model((*CourseLeaderboard)(nil)).
		Where("leader_user_id = ?", userID).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count courses led by %s: %w", userID, err)
	}
	return count, nil
}

func (r *RepositoryImpl) ListByRegion(ctx context.Context, db bun.IDB, regionKey sharedtypes.RegionKey) ([]CourseLeaderboard, error) {
	var leaderboards []CourseLeaderboard
	err := db.NewSelect().
		Model(&leaderboards).
		Where("region_key = ?", regionKey).
		Order("course_name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaderboards for region %s: %w", regionKey, err)
	}
	return leaderboards, nil
}

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == "23505"
	}
	return false
}
