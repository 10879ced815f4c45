// Package scoredb handles database operations for the score ingestion audit
// trail.
package scoredb

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

type RepositoryImpl struct{}

var _ Repository = (*RepositoryImpl)(nil)

// NewRepository returns the bun-backed score repository.
func NewRepository() *RepositoryImpl {
	return &RepositoryImpl{}
}

func (r *RepositoryImpl) RecordIngestion(ctx context.Context, db bun.IDB, ingestion *ScoreIngestion) error {
	res, err := db.NewInsert().
		Model(ingestion).
		On("CONFLICT (event_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record ingestion %s: %w", ingestion.EventID, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected for ingestion %s: %w", ingestion.EventID, err)
	}
	if rows == 0 {
		return ErrDuplicateEvent
	}
	return nil
}

func (r *RepositoryImpl) CountByStatus(ctx context.Context, db bun.IDB, status string) (int, error) {
	count, err := db.NewSelect().
		Model((*ScoreIngestion)(nil)).
		Where("status = ?", status).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s ingestions: %w", status, err)
	}
	return count, nil
}
