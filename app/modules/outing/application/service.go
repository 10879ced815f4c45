// Package outingservice builds live outing standings on demand.
package outingservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	outingdomain "github.com/fairway-links-club/greens-engine/app/modules/outing/domain"
	outingdb "github.com/fairway-links-club/greens-engine/app/modules/outing/infrastructure/repositories"
	"github.com/fairway-links-club/greens-engine/internal/observability/metrics"
)

const serviceName = "OutingService"

// StandingsView is one ranked snapshot of a live outing. Nothing is
// persisted; every call recomputes from the progress rows.
type StandingsView struct {
	OutingID    string                 `json:"outing_id"`
	Name        string                 `json:"name"`
	CoursePar   int                    `json:"course_par"`
	Standings   []outingdomain.Standing `json:"standings"`
	GeneratedAt time.Time              `json:"generated_at"`
}

// Service is the outing surface consumed by the read API.
type Service interface {
	BuildStandings(ctx context.Context, outingID string) (*StandingsView, error)
	BuildGroupStandings(ctx context.Context, outingID, groupID string) (*StandingsView, error)
}

// OutingService ranks live outing progress.
type OutingService struct {
	repo    outingdb.Repository
	db      bun.IDB
	logger  *slog.Logger
	metrics metrics.OperationMetrics
	tracer  trace.Tracer
}

var _ Service = (*OutingService)(nil)

// NewOutingService creates a new OutingService.
func NewOutingService(
	repo outingdb.Repository,
	db *bun.DB,
	logger *slog.Logger,
	operationMetrics metrics.OperationMetrics,
	tracer trace.Tracer,
) *OutingService {
	return &OutingService{
		repo:    repo,
		db:      db,
		logger:  logger,
		metrics: operationMetrics,
		tracer:  tracer,
	}
}

// BuildStandings ranks every player in the outing.
func (s *OutingService) BuildStandings(ctx context.Context, outingID string) (*StandingsView, error) {
	return s.build(ctx, outingID, func(ctx context.Context, outing *outingdb.Outing) ([]outingdb.OutingProgress, error) {
		return s.repo.ListProgress(ctx, s.db, outingID)
	})
}

// BuildGroupStandings ranks a single group's players.
func (s *OutingService) BuildGroupStandings(ctx context.Context, outingID, groupID string) (*StandingsView, error) {
	return s.build(ctx, outingID, func(ctx context.Context, outing *outingdb.Outing) ([]outingdb.OutingProgress, error) {
		return s.repo.ListProgressByGroup(ctx, s.db, outingID, groupID)
	})
}

func (s *OutingService) build(
	ctx context.Context,
	outingID string,
	list func(ctx context.Context, outing *outingdb.Outing) ([]outingdb.OutingProgress, error),
) (*StandingsView, error) {
	ctx, span := s.tracer.Start(ctx, "BuildStandings")
	defer span.End()

	start := time.Now()
	s.metrics.RecordOperationAttempt(ctx, "BuildStandings", serviceName)
	defer func() {
		s.metrics.RecordOperationDuration(ctx, "BuildStandings", serviceName, time.Since(start))
	}()

	outing, err := s.repo.GetOuting(ctx, s.db, outingID)
	if err != nil {
		s.metrics.RecordOperationFailure(ctx, "BuildStandings", serviceName)
		return nil, fmt.Errorf("failed to build standings: %w", err)
	}

	progress, err := list(ctx, outing)
	if err != nil {
		s.metrics.RecordOperationFailure(ctx, "BuildStandings", serviceName)
		return nil, fmt.Errorf("failed to build standings: %w", err)
	}

	records := make([]outingdomain.ProgressRecord, 0, len(progress))
	for _, p := range progress {
		records = append(records, outingdomain.ProgressRecord{
			PlayerID:    p.PlayerID,
			DisplayName: p.DisplayName,
			GroupID:     p.GroupID,
			GrossScore:  p.GrossScore,
			NetScore:    p.NetScore,
			Thru:        p.Thru,
		})
	}

	s.metrics.RecordOperationSuccess(ctx, "BuildStandings", serviceName)
	return &StandingsView{
		OutingID:    outing.OutingID,
		Name:        outing.Name,
		CoursePar:   outing.CoursePar,
		Standings:   outingdomain.Rank(records, outing.CoursePar),
		GeneratedAt: time.Now().UTC(),
	}, nil
}
