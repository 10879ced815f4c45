package achievementservice

import (
	"context"
	"testing"

	"github.com/uptrace/bun"

	achievementdb "github.com/fairway-links-club/greens-engine/app/modules/achievement/infrastructure/repositories"
	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

func TestAwardHoleInOne(t *testing.T) {
	repo := NewFakeAchievementRepo()
	var got *achievementdb.CourseBadge
	repo.AwardBadgeFunc = func(ctx context.Context, db bun.IDB, badge *achievementdb.CourseBadge) (bool, error) {
		got = badge
		return true, nil
	}

	s := newTestService(repo)
	result, err := s.AwardHoleInOne(context.Background(), AwardHoleInOneCommand{
		EventID:  sharedtypes.EventID("evt-1"),
		UserID:   testUser,
		CourseID: sharedtypes.CourseID("course-1"),
		Score:    71,
	})
	if err != nil {
		t.Fatalf("AwardHoleInOne() error: %v", err)
	}
	if !result.Success.Awarded {
		t.Error("fresh event must award the badge")
	}
	if got.EventID != "evt-1" {
		t.Error("badge must carry the originating event id for dedup")
	}
}

func TestAwardHoleInOneReplayIsNoop(t *testing.T) {
	repo := NewFakeAchievementRepo()
	repo.AwardBadgeFunc = func(ctx context.Context, db bun.IDB, badge *achievementdb.CourseBadge) (bool, error) {
		return false, nil
	}

	s := newTestService(repo)
	result, err := s.AwardHoleInOne(context.Background(), AwardHoleInOneCommand{
		EventID:  sharedtypes.EventID("evt-1"),
		UserID:   testUser,
		CourseID: sharedtypes.CourseID("course-1"),
	})
	if err != nil {
		t.Fatalf("AwardHoleInOne() error: %v", err)
	}
	if result.Success.Awarded {
		t.Error("replayed event must not report a new award")
	}
}

func TestAwardHoleInOneMissingIDs(t *testing.T) {
	s := newTestService(NewFakeAchievementRepo())
	result, err := s.AwardHoleInOne(context.Background(), AwardHoleInOneCommand{
		UserID: testUser,
	})
	if err != nil {
		t.Fatalf("AwardHoleInOne() error: %v", err)
	}
	if !result.IsFailure() {
		t.Fatal("missing event id must produce a failure result")
	}
}

func TestAuditTiersSweep(t *testing.T) {
	repo := NewFakeAchievementRepo()
	repo.ListAuditCandidatesFunc = func(ctx context.Context, db bun.IDB) ([]sharedtypes.UserID, error) {
		return []sharedtypes.UserID{"user-1", "user-2", "user-3"}, nil
	}
	counts := map[sharedtypes.UserID]int{"user-1": 3, "user-2": 0, "user-3": 1}
	repo.CountCoursesLedByFunc = func(ctx context.Context, db bun.IDB, userID sharedtypes.UserID) (int, error) {
		return counts[userID], nil
	}
	// user-2 held scratch but leads nothing anymore; the sweep demotes them.
	repo.GetTierFunc = func(ctx context.Context, db bun.IDB, userID sharedtypes.UserID) (*achievementdb.UserTier, error) {
		if userID == "user-2" {
			return &achievementdb.UserTier{UserID: userID, Tier: "scratch", LowmanCourseCount: 2}, nil
		}
		return nil, achievementdb.ErrTierNotFound
	}

	s := newTestService(repo)
	result, err := s.AuditTiers(context.Background())
	if err != nil {
		t.Fatalf("AuditTiers() error: %v", err)
	}

	if result.Success.Candidates != 3 {
		t.Errorf("candidates = %d, want 3", result.Success.Candidates)
	}
	// user-1 none→ace, user-2 scratch→none, user-3 stays none.
	if result.Success.Changed != 2 {
		t.Errorf("changed = %d, want 2", result.Success.Changed)
	}
}
