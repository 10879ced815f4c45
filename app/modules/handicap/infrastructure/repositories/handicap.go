// Package handicapdb handles database operations for differential windows.
package handicapdb

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

type RepositoryImpl struct{}

var _ Repository = (*RepositoryImpl)(nil)

// NewRepository returns the bun-backed handicap repository.
func NewRepository() *RepositoryImpl {
	return &RepositoryImpl{}
}

func (r *RepositoryImpl) InsertDifferential(ctx context.Context, db bun.IDB, record *DifferentialRecord) error {
	res, err := db.NewInsert().
		Model(record).
		On("CONFLICT (event_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert differential %s: %w", record.EventID, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected for differential %s: %w", record.EventID, err)
	}
	if rows == 0 {
		return ErrDuplicateDifferential
	}
	return nil
}

func (r *RepositoryImpl) TrimWindow(ctx context.Context, db bun.IDB, userID sharedtypes.UserID, size int) (int, error) {
	res, err := db.NewDelete().
		Model((*DifferentialRecord)(nil)).
		Where("user_id = ?", userID).
		Where("id NOT IN (SELECT id FROM handicap_differentials WHERE user_id = ? ORDER BY played_at DESC, id DESC LIMIT ?)", userID, size).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to trim window for %s: %w", userID, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected for window trim of %s: %w", userID, err)
	}
	return int(rows), nil
}

func (r *RepositoryImpl) ListWindow(ctx context.Context, db bun.IDB, userID sharedtypes.UserID, size int) ([]DifferentialRecord, error) {
	var records []DifferentialRecord
	err := db.NewSelect().
		Model(&records).
		Where("user_id = ?", userID).
		Order("played_at DESC", "id DESC").
		Limit(size).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list window for %s: %w", userID, err)
	}
	return records, nil
}

func (r *RepositoryImpl) SetUsedFlags(ctx context.Context, db bun.IDB, userID sharedtypes.UserID, usedIDs []int64) error {
	query := db.NewUpdate().
		Model((*DifferentialRecord)(nil)).
		Where("user_id = ?", userID)
	if len(usedIDs) == 0 {
		query = query.Set("is_used = FALSE")
	} else {
		query = query.Set("is_used = id IN (?)", bun.In(usedIDs))
	}

	_, err := query.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set used flags for %s: %w", userID, err)
	}
	return nil
}
