package achievementservice

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/uptrace/bun"

	achievementdomain "github.com/fairway-links-club/greens-engine/app/modules/achievement/domain"
	achievementdb "github.com/fairway-links-club/greens-engine/app/modules/achievement/infrastructure/repositories"
	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

const testUser = sharedtypes.UserID("user-1")

func tierRow(tier achievementdomain.Tier, count int) *achievementdb.UserTier {
	return &achievementdb.UserTier{
		UserID:            testUser,
		Tier:              tier,
		LowmanCourseCount: count,
		Since:             time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestReevaluateTierTransitions(t *testing.T) {
	tests := []struct {
		name        string
		ledCount    int
		storedTier  *achievementdb.UserTier
		wantTier    achievementdomain.Tier
		wantChanged bool
	}{
		{
			name:        "first course leads to no tier",
			ledCount:    1,
			wantTier:    achievementdomain.TierNone,
			wantChanged: false,
		},
		{
			name:        "second course promotes to scratch",
			ledCount:    2,
			storedTier:  tierRow(achievementdomain.TierNone, 1),
			wantTier:    achievementdomain.TierScratch,
			wantChanged: true,
		},
		{
			name:        "third course promotes to ace",
			ledCount:    3,
			storedTier:  tierRow(achievementdomain.TierScratch, 2),
			wantTier:    achievementdomain.TierAce,
			wantChanged: true,
		},
		{
			name:        "losing one of three demotes to scratch",
			ledCount:    2,
			storedTier:  tierRow(achievementdomain.TierAce, 3),
			wantTier:    achievementdomain.TierScratch,
			wantChanged: true,
		},
		{
			name:        "losing scratch courses demotes to none",
			ledCount:    0,
			storedTier:  tierRow(achievementdomain.TierScratch, 2),
			wantTier:    achievementdomain.TierNone,
			wantChanged: true,
		},
		{
			name:        "unchanged count is a no-op on tier",
			ledCount:    3,
			storedTier:  tierRow(achievementdomain.TierAce, 3),
			wantTier:    achievementdomain.TierAce,
			wantChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeAchievementRepo()
			repo.CountCoursesLedByFunc = func(ctx context.Context, db bun.IDB, userID sharedtypes.UserID) (int, error) {
				return tt.ledCount, nil
			}
			if tt.storedTier != nil {
				repo.GetTierFunc = func(ctx context.Context, db bun.IDB, userID sharedtypes.UserID) (*achievementdb.UserTier, error) {
					return tt.storedTier, nil
				}
			}

			var upserted *achievementdb.UserTier
			repo.UpsertTierFunc = func(ctx context.Context, db bun.IDB, tier *achievementdb.UserTier) error {
				upserted = tier
				return nil
			}

			s := newTestService(repo)
			result, err := s.ReevaluateTier(context.Background(), ReevaluateTierCommand{
				UserID:   testUser,
				CourseID: sharedtypes.CourseID("course-1"),
			})
			if err != nil {
				t.Fatalf("ReevaluateTier() error: %v", err)
			}
			if !result.IsSuccess() {
				t.Fatalf("ReevaluateTier() failure: %+v", result.Failure)
			}

			if result.Success.Tier != tt.wantTier {
				t.Errorf("tier = %s, want %s", result.Success.Tier, tt.wantTier)
			}
			if result.Success.Changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", result.Success.Changed, tt.wantChanged)
			}
			if upserted == nil {
				t.Fatal("tier slot must always be refreshed")
			}
			if upserted.Tier != tt.wantTier || upserted.LowmanCourseCount != tt.ledCount {
				t.Errorf("upserted = {%s %d}, want {%s %d}",
					upserted.Tier, upserted.LowmanCourseCount, tt.wantTier, tt.ledCount)
			}
			if tt.storedTier != nil && !tt.wantChanged && !upserted.Since.Equal(tt.storedTier.Since) {
				t.Error("since must be preserved when the tier does not change")
			}
		})
	}
}

func TestReevaluateTierAwardsLowmanBadgeInsideTx(t *testing.T) {
	repo := NewFakeAchievementRepo()
	repo.CountCoursesLedByFunc = func(ctx context.Context, db bun.IDB, userID sharedtypes.UserID) (int, error) {
		return 1, nil
	}

	s := newTestService(repo)
	result, err := s.ReevaluateTier(context.Background(), ReevaluateTierCommand{
		UserID:   testUser,
		CourseID: sharedtypes.CourseID("course-1"),
	})
	if err != nil {
		t.Fatalf("ReevaluateTier() error: %v", err)
	}
	if !result.Success.LowmanBadgeAwarded {
		t.Error("triggering course must receive the lowman badge")
	}

	wantTrace := []string{
		"CountCoursesLedBy",
		"AwardBadge:lowman",
		"RemoveStaleLowmanBadges",
		"GetTier",
		"UpsertTier:none",
	}
	if diff := cmp.Diff(wantTrace, repo.Trace()); diff != "" {
		t.Errorf("repo trace mismatch (-want +got):\n%s", diff)
	}
}

func TestReevaluateTierAuditSweepSkipsBadge(t *testing.T) {
	repo := NewFakeAchievementRepo()
	repo.CountCoursesLedByFunc = func(ctx context.Context, db bun.IDB, userID sharedtypes.UserID) (int, error) {
		return 2, nil
	}

	s := newTestService(repo)
	result, err := s.ReevaluateTier(context.Background(), ReevaluateTierCommand{UserID: testUser})
	if err != nil {
		t.Fatalf("ReevaluateTier() error: %v", err)
	}
	if result.Success.LowmanBadgeAwarded {
		t.Error("sweep without a triggering course must not award a badge")
	}
	for _, step := range repo.Trace() {
		if step == "AwardBadge:lowman" {
			t.Error("sweep must not touch the badge ledger award path")
		}
	}
}

func TestReevaluateTierMissingUser(t *testing.T) {
	s := newTestService(NewFakeAchievementRepo())
	result, err := s.ReevaluateTier(context.Background(), ReevaluateTierCommand{})
	if err != nil {
		t.Fatalf("ReevaluateTier() error: %v", err)
	}
	if !result.IsFailure() {
		t.Fatal("missing user id must produce a failure result")
	}
}
