package leaderboardservice

import (
	"context"
	"database/sql"
	"io"
	"log/slog"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	leaderboarddb "github.com/fairway-links-club/greens-engine/app/modules/leaderboard/infrastructure/repositories"
	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
	"github.com/fairway-links-club/greens-engine/internal/observability/metrics"
)

// ------------------------
// Fake Leaderboard Repo
// ------------------------

type FakeLeaderboardRepo struct {
	trace []string

	GetByKeyFunc          func(ctx context.Context, db bun.IDB, regionKey sharedtypes.RegionKey, courseID sharedtypes.CourseID) (*leaderboarddb.CourseLeaderboard, error)
	CreateFunc            func(ctx context.Context, db bun.IDB, leaderboard *leaderboarddb.CourseLeaderboard) error
	UpdateVersionedFunc   func(ctx context.Context, db bun.IDB, leaderboard *leaderboarddb.CourseLeaderboard, expectedVersion int64) error
	ClaimSubmissionFunc   func(ctx context.Context, db bun.IDB, submission *leaderboarddb.Submission) error
	CountCoursesLedByFunc func(ctx context.Context, db bun.IDB, userID sharedtypes.UserID) (int, error)
	ListByRegionFunc      func(ctx context.Context, db bun.IDB, regionKey sharedtypes.RegionKey) ([]leaderboarddb.CourseLeaderboard, error)
}

func NewFakeLeaderboardRepo() *FakeLeaderboardRepo {
	return &FakeLeaderboardRepo{trace: []string{}}
}

func (f *FakeLeaderboardRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeLeaderboardRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeLeaderboardRepo) GetByKey(ctx context.Context, db bun.IDB, regionKey sharedtypes.RegionKey, courseID sharedtypes.CourseID) (*leaderboarddb.CourseLeaderboard, error) {
	f.record("GetByKey")
	if f.GetByKeyFunc != nil {
		return f.GetByKeyFunc(ctx, db, regionKey, courseID)
	}
	return nil, leaderboarddb.ErrNotFound
}

func (f *FakeLeaderboardRepo) Create(ctx context.Context, db bun.IDB, leaderboard *leaderboarddb.CourseLeaderboard) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, leaderboard)
	}
	return nil
}

func (f *FakeLeaderboardRepo) UpdateVersioned(ctx context.Context, db bun.IDB, leaderboard *leaderboarddb.CourseLeaderboard, expectedVersion int64) error {
	f.record("UpdateVersioned")
	if f.UpdateVersionedFunc != nil {
		return f.UpdateVersionedFunc(ctx, db, leaderboard, expectedVersion)
	}
	return nil
}

func (f *FakeLeaderboardRepo) ClaimSubmission(ctx context.Context, db bun.IDB, submission *leaderboarddb.Submission) error {
	f.record("ClaimSubmission")
	if f.ClaimSubmissionFunc != nil {
		return f.ClaimSubmissionFunc(ctx, db, submission)
	}
	return nil
}

func (f *FakeLeaderboardRepo) CountCoursesLedBy(ctx context.Context, db bun.IDB, userID sharedtypes.UserID) (int, error) {
	f.record("CountCoursesLedBy")
	if f.CountCoursesLedByFunc != nil {
		return f.CountCoursesLedByFunc(ctx, db, userID)
	}
	return 0, nil
}

func (f *FakeLeaderboardRepo) ListByRegion(ctx context.Context, db bun.IDB, regionKey sharedtypes.RegionKey) ([]leaderboarddb.CourseLeaderboard, error) {
	f.record("ListByRegion")
	if f.ListByRegionFunc != nil {
		return f.ListByRegionFunc(ctx, db, regionKey)
	}
	return nil, nil
}

var _ leaderboarddb.Repository = (*FakeLeaderboardRepo)(nil)

// ------------------------
// Fake transaction runner
// ------------------------

// fakeTxRunner executes the transaction body directly; the fakes above
// never touch the bun.Tx they receive.
type fakeTxRunner struct{}

func (fakeTxRunner) RunInTx(ctx context.Context, _ *sql.TxOptions, fn func(ctx context.Context, tx bun.Tx) error) error {
	return fn(ctx, bun.Tx{})
}

func newTestService(repo leaderboarddb.Repository) *LeaderboardService {
	return &LeaderboardService{
		repo:          repo,
		tx:            fakeTxRunner{},
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics:       metrics.NewNoop(),
		tracer:        noop.NewTracerProvider().Tracer("test"),
		topSize:       10,
		retryAttempts: 3,
	}
}
