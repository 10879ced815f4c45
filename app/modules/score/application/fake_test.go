package scoreservice

import (
	"context"
	"io"
	"log/slog"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	scoredb "github.com/fairway-links-club/greens-engine/app/modules/score/infrastructure/repositories"
	"github.com/fairway-links-club/greens-engine/internal/observability/metrics"
)

// ------------------------
// Fake Score Repo
// ------------------------

type FakeScoreRepo struct {
	trace []string

	RecordIngestionFunc func(ctx context.Context, db bun.IDB, ingestion *scoredb.ScoreIngestion) error
	CountByStatusFunc   func(ctx context.Context, db bun.IDB, status string) (int, error)
}

func NewFakeScoreRepo() *FakeScoreRepo {
	return &FakeScoreRepo{trace: []string{}}
}

func (f *FakeScoreRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeScoreRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeScoreRepo) RecordIngestion(ctx context.Context, db bun.IDB, ingestion *scoredb.ScoreIngestion) error {
	f.record("RecordIngestion:" + ingestion.Status)
	if f.RecordIngestionFunc != nil {
		return f.RecordIngestionFunc(ctx, db, ingestion)
	}
	return nil
}

func (f *FakeScoreRepo) CountByStatus(ctx context.Context, db bun.IDB, status string) (int, error) {
	f.record("CountByStatus")
	if f.CountByStatusFunc != nil {
		return f.CountByStatusFunc(ctx, db, status)
	}
	return 0, nil
}

var _ scoredb.Repository = (*FakeScoreRepo)(nil)

func newTestService(repo scoredb.Repository) *ScoreService {
	return &ScoreService{
		repo:    repo,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: metrics.NewNoop(),
		tracer:  noop.NewTracerProvider().Tracer("test"),
	}
}
