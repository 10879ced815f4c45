// Package outingdb handles database operations for live outing views.
package outingdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// ErrNotFound is returned when no outing exists for an id.
var ErrNotFound = errors.New("outing not found")

// Repository reads outings and live progress. The progress rows are written
// by the live-scoring collaborator; this engine never mutates them.
type Repository interface {
	GetOuting(ctx context.Context, db bun.IDB, outingID string) (*Outing, error)
	ListProgress(ctx context.Context, db bun.IDB, outingID string) ([]OutingProgress, error)
	ListProgressByGroup(ctx context.Context, db bun.IDB, outingID, groupID string) ([]OutingProgress, error)
}

type RepositoryImpl struct{}

var _ Repository = (*RepositoryImpl)(nil)

// NewRepository returns the bun-backed outing repository.
func NewRepository() *RepositoryImpl {
	return &RepositoryImpl{}
}

func (r *RepositoryImpl) GetOuting(ctx context.Context, db bun.IDB, outingID string) (*Outing, error) {
	outing := new(Outing)
	err := db.NewSelect().
		Model(outing).
		Where("outing_id = ?", outingID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load outing %s: %w", outingID, err)
	}
	return outing, nil
}

func (r *RepositoryImpl) ListProgress(ctx context.Context, db bun.IDB, outingID string) ([]OutingProgress, error) {
	var progress []OutingProgress
	err := db.NewSelect().
		Model(&progress).
		Where("outing_id = ?", outingID).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress for outing %s: %w", outingID, err)
	}
	return progress, nil
}

func (r *RepositoryImpl) ListProgressByGroup(ctx context.Context, db bun.IDB, outingID, groupID string) ([]OutingProgress, error) {
	var progress []OutingProgress
	err := db.NewSelect().
		Model(&progress).
		Where("outing_id = ?", outingID).
		Where("group_id = ?", groupID).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress for outing %s group %s: %w", outingID, groupID, err)
	}
	return progress, nil
}
