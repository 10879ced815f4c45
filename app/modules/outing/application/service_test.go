package outingservice

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	outingdb "github.com/fairway-links-club/greens-engine/app/modules/outing/infrastructure/repositories"
	"github.com/fairway-links-club/greens-engine/internal/observability/metrics"
)

type FakeOutingRepo struct {
	GetOutingFunc           func(ctx context.Context, db bun.IDB, outingID string) (*outingdb.Outing, error)
	ListProgressFunc        func(ctx context.Context, db bun.IDB, outingID string) ([]outingdb.OutingProgress, error)
	ListProgressByGroupFunc func(ctx context.Context, db bun.IDB, outingID, groupID string) ([]outingdb.OutingProgress, error)
}

func (f *FakeOutingRepo) GetOuting(ctx context.Context, db bun.IDB, outingID string) (*outingdb.Outing, error) {
	if f.GetOutingFunc != nil {
		return f.GetOutingFunc(ctx, db, outingID)
	}
	return nil, outingdb.ErrNotFound
}

func (f *FakeOutingRepo) ListProgress(ctx context.Context, db bun.IDB, outingID string) ([]outingdb.OutingProgress, error) {
	if f.ListProgressFunc != nil {
		return f.ListProgressFunc(ctx, db, outingID)
	}
	return nil, nil
}

func (f *FakeOutingRepo) ListProgressByGroup(ctx context.Context, db bun.IDB, outingID, groupID string) ([]outingdb.OutingProgress, error) {
	if f.ListProgressByGroupFunc != nil {
		return f.ListProgressByGroupFunc(ctx, db, outingID, groupID)
	}
	return nil, nil
}

var _ outingdb.Repository = (*FakeOutingRepo)(nil)

func newTestService(repo outingdb.Repository) *OutingService {
	return &OutingService{
		repo:    repo,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: metrics.NewNoop(),
		tracer:  noop.NewTracerProvider().Tracer("test"),
	}
}

func TestBuildStandings(t *testing.T) {
	repo := &FakeOutingRepo{
		GetOutingFunc: func(ctx context.Context, db bun.IDB, outingID string) (*outingdb.Outing, error) {
			return &outingdb.Outing{OutingID: outingID, Name: "Spring Scramble", CoursePar: 72}, nil
		},
		ListProgressFunc: func(ctx context.Context, db bun.IDB, outingID string) ([]outingdb.OutingProgress, error) {
			return []outingdb.OutingProgress{
				{PlayerID: "A", DisplayName: "A", GroupID: "g1", NetScore: 70, GrossScore: 74, Thru: 18},
				{PlayerID: "B", DisplayName: "B", GroupID: "g2", NetScore: 70, GrossScore: 75, Thru: 18},
				{PlayerID: "C", DisplayName: "C", GroupID: "g1", NetScore: 72, GrossScore: 72, Thru: 18},
				{PlayerID: "D", DisplayName: "D", GroupID: "g2", Thru: 0},
			}, nil
		},
	}

	view, err := newTestService(repo).BuildStandings(context.Background(), "outing-1")
	if err != nil {
		t.Fatalf("BuildStandings() error: %v", err)
	}

	if len(view.Standings) != 4 {
		t.Fatalf("len(standings) = %d, want 4", len(view.Standings))
	}
	wantLabels := []string{"1", "1", "3", "-"}
	for i, want := range wantLabels {
		if view.Standings[i].PositionLabel != want {
			t.Errorf("standings[%d].PositionLabel = %q, want %q", i, view.Standings[i].PositionLabel, want)
		}
	}
	if view.Standings[2].ScoreToPar != "E" {
		t.Errorf("ScoreToPar = %q, want E for net 72 on par 72", view.Standings[2].ScoreToPar)
	}
}

func TestBuildStandingsUnknownOuting(t *testing.T) {
	_, err := newTestService(&FakeOutingRepo{}).BuildStandings(context.Background(), "missing")
	if !errors.Is(err, outingdb.ErrNotFound) {
		t.Fatalf("BuildStandings() error = %v, want ErrNotFound", err)
	}
}
