package handicapservice

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"sort"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	handicapdb "github.com/fairway-links-club/greens-engine/app/modules/handicap/infrastructure/repositories"
	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
	"github.com/fairway-links-club/greens-engine/internal/observability/metrics"
)

// ------------------------
// Fake Handicap Repo
// ------------------------

// FakeHandicapRepo keeps the window in memory so tests can drive multi-round
// sequences through the real service flow.
type FakeHandicapRepo struct {
	trace   []string
	nextID  int64
	records []handicapdb.DifferentialRecord

	InsertDifferentialFunc func(ctx context.Context, db bun.IDB, record *handicapdb.DifferentialRecord) error
}

func NewFakeHandicapRepo() *FakeHandicapRepo {
	return &FakeHandicapRepo{trace: []string{}, nextID: 1}
}

func (f *FakeHandicapRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeHandicapRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeHandicapRepo) InsertDifferential(ctx context.Context, db bun.IDB, rec *handicapdb.DifferentialRecord) error {
	f.record("InsertDifferential")
	if f.InsertDifferentialFunc != nil {
		return f.InsertDifferentialFunc(ctx, db, rec)
	}
	for _, existing := range f.records {
		if existing.EventID == rec.EventID {
			return handicapdb.ErrDuplicateDifferential
		}
	}
	rec.ID = f.nextID
	f.nextID++
	f.records = append(f.records, *rec)
	return nil
}

func (f *FakeHandicapRepo) TrimWindow(ctx context.Context, db bun.IDB, userID sharedtypes.UserID, size int) (int, error) {
	f.record("TrimWindow")
	window := f.window(userID, len(f.records))
	if len(window) <= size {
		return 0, nil
	}
	drop := map[int64]bool{}
	for _, rec := range window[size:] {
		drop[rec.ID] = true
	}
	kept := f.records[:0]
	for _, rec := range f.records {
		if !drop[rec.ID] {
			kept = append(kept, rec)
		}
	}
	removed := len(f.records) - len(kept)
	f.records = kept
	return removed, nil
}

func (f *FakeHandicapRepo) ListWindow(ctx context.Context, db bun.IDB, userID sharedtypes.UserID, size int) ([]handicapdb.DifferentialRecord, error) {
	f.record("ListWindow")
	return f.window(userID, size), nil
}

func (f *FakeHandicapRepo) SetUsedFlags(ctx context.Context, db bun.IDB, userID sharedtypes.UserID, usedIDs []int64) error {
	f.record("SetUsedFlags")
	used := map[int64]bool{}
	for _, id := range usedIDs {
		used[id] = true
	}
	for i := range f.records {
		if f.records[i].UserID == userID {
			f.records[i].IsUsed = used[f.records[i].ID]
		}
	}
	return nil
}

// window returns the user's records most recent first, like the SQL query.
func (f *FakeHandicapRepo) window(userID sharedtypes.UserID, size int) []handicapdb.DifferentialRecord {
	var out []handicapdb.DifferentialRecord
	for _, rec := range f.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].PlayedAt.Equal(out[j].PlayedAt) {
			return out[i].PlayedAt.After(out[j].PlayedAt)
		}
		return out[i].ID > out[j].ID
	})
	if len(out) > size {
		out = out[:size]
	}
	return out
}

var _ handicapdb.Repository = (*FakeHandicapRepo)(nil)

// ------------------------
// Fake transaction runner
// ------------------------

type fakeTxRunner struct{}

func (fakeTxRunner) RunInTx(ctx context.Context, _ *sql.TxOptions, fn func(ctx context.Context, tx bun.Tx) error) error {
	return fn(ctx, bun.Tx{})
}

func newTestService(repo handicapdb.Repository) *HandicapService {
	return &HandicapService{
		repo:    repo,
		tx:      fakeTxRunner{},
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: metrics.NewNoop(),
		tracer:  noop.NewTracerProvider().Tracer("test"),
	}
}
