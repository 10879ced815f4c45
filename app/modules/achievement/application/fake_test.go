package achievementservice

import (
	"context"
	"database/sql"
	"io"
	"log/slog"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	achievementdb "github.com/fairway-links-club/greens-engine/app/modules/achievement/infrastructure/repositories"
	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
	"github.com/fairway-links-club/greens-engine/internal/observability/metrics"
)

// ------------------------
// Fake Achievement Repo
// ------------------------

type FakeAchievementRepo struct {
	trace []string

	AwardBadgeFunc              func(ctx context.Context, db bun.IDB, badge *achievementdb.CourseBadge) (bool, error)
	RemoveStaleLowmanBadgesFunc func(ctx context.Context, db bun.IDB, userID sharedtypes.UserID) (int, error)
	ListBadgesFunc              func(ctx context.Context, db bun.IDB, userID sharedtypes.UserID) ([]achievementdb.CourseBadge, error)
	GetTierFunc                 func(ctx context.Context, db bun.IDB, userID sharedtypes.UserID) (*achievementdb.UserTier, error)
	UpsertTierFunc              func(ctx context.Context, db bun.IDB, tier *achievementdb.UserTier) error
	CountCoursesLedByFunc       func(ctx context.Context, db bun.IDB, userID sharedtypes.UserID) (int, error)
	ListAuditCandidatesFunc     func(ctx context.Context, db bun.IDB) ([]sharedtypes.UserID, error)
}

func NewFakeAchievementRepo() *FakeAchievementRepo {
	return &FakeAchievementRepo{trace: []string{}}
}

func (f *FakeAchievementRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeAchievementRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeAchievementRepo) AwardBadge(ctx context.Context, db bun.IDB, badge *achievementdb.CourseBadge) (bool, error) {
	f.record("AwardBadge:" + badge.BadgeType)
	if f.AwardBadgeFunc != nil {
		return f.AwardBadgeFunc(ctx, db, badge)
	}
	return true, nil
}

func (f *FakeAchievementRepo) RemoveStaleLowmanBadges(ctx context.Context, db bun.IDB, userID sharedtypes.UserID) (int, error) {
	f.record("RemoveStaleLowmanBadges")
	if f.RemoveStaleLowmanBadgesFunc != nil {
		return f.RemoveStaleLowmanBadgesFunc(ctx, db, userID)
	}
	return 0, nil
}

func (f *FakeAchievementRepo) ListBadges(ctx context.Context, db bun.IDB, userID sharedtypes.UserID) ([]achievementdb.CourseBadge, error) {
	f.record("ListBadges")
	if f.ListBadgesFunc != nil {
		return f.ListBadgesFunc(ctx, db, userID)
	}
	return nil, nil
}

func (f *FakeAchievementRepo) GetTier(ctx context.Context, db bun.IDB, userID sharedtypes.UserID) (*achievementdb.UserTier, error) {
	f.record("GetTier")
	if f.GetTierFunc != nil {
		return f.GetTierFunc(ctx, db, userID)
	}
	return nil, achievementdb.ErrTierNotFound
}

func (f *FakeAchievementRepo) UpsertTier(ctx context.Context, db bun.IDB, tier *achievementdb.UserTier) error {
	f.record("UpsertTier:" + string(tier.Tier))
	if f.UpsertTierFunc != nil {
		return f.UpsertTierFunc(ctx, db, tier)
	}
	return nil
}

func (f *FakeAchievementRepo) CountCoursesLedBy(ctx context.Context, db bun.IDB, userID sharedtypes.UserID) (int, error) {
	f.record("CountCoursesLedBy")
	if f.CountCoursesLedByFunc != nil {
		return f.CountCoursesLedByFunc(ctx, db, userID)
	}
	return 0, nil
}

func (f *FakeAchievementRepo) ListAuditCandidates(ctx context.Context, db bun.IDB) ([]sharedtypes.UserID, error) {
	f.record("ListAuditCandidates")
	if f.ListAuditCandidatesFunc != nil {
		return f.ListAuditCandidatesFunc(ctx, db)
	}
	return nil, nil
}

var _ achievementdb.Repository = (*FakeAchievementRepo)(nil)

// ------------------------
// Fake transaction runner
// ------------------------

// fakeTxRunner executes the transaction body directly; the fakes above
// never touch the bun.Tx they receive.
type fakeTxRunner struct{}

func (fakeTxRunner) RunInTx(ctx context.Context, _ *sql.TxOptions, fn func(ctx context.Context, tx bun.Tx) error) error {
	return fn(ctx, bun.Tx{})
}

func newTestService(repo achievementdb.Repository) *AchievementService {
	return &AchievementService{
		repo:    repo,
		tx:      fakeTxRunner{},
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: metrics.NewNoop(),
		tracer:  noop.NewTracerProvider().Tracer("test"),
	}
}
