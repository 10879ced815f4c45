package leaderboardservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/uptrace/bun"

	leaderboarddomain "github.com/fairway-links-club/greens-engine/app/modules/leaderboard/domain"
	leaderboarddb "github.com/fairway-links-club/greens-engine/app/modules/leaderboard/infrastructure/repositories"
	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

func submitCmd(eventID, user string, net, gross int, at time.Time) SubmitScoreCommand {
	return SubmitScoreCommand{
		EventID:     sharedtypes.EventID(eventID),
		RegionKey:   "pnw",
		CourseID:    "cedar-ridge",
		CourseName:  "Cedar Ridge",
		UserID:      sharedtypes.UserID(user),
		DisplayName: user,
		NetScore:    sharedtypes.Score(net),
		GrossScore:  sharedtypes.Score(gross),
		CreatedAt:   at,
	}
}

func TestLeaderboardService_SubmitScore(t *testing.T) {
	base := time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		cmd       SubmitScoreCommand
		setupFake func(*FakeLeaderboardRepo)
		expectErr bool
		verify    func(t *testing.T, res SubmitScoreResult, fake *FakeLeaderboardRepo)
	}{
		{
			name: "first score for a key creates the board and becomes leader",
			cmd:  submitCmd("evt-1", "alice", 72, 80, base),
			setupFake: func(f *FakeLeaderboardRepo) {
				// Default GetByKey returns ErrNotFound, driving the create path.
			},
			verify: func(t *testing.T, res SubmitScoreResult, fake *FakeLeaderboardRepo) {
				if !res.BecameNewLeader {
					t.Error("first score should become the leader")
				}
				if res.TotalScoreCount != 1 {
					t.Errorf("TotalScoreCount = %d, want 1", res.TotalScoreCount)
				}
				trace := fake.Trace()
				want := []string{"ClaimSubmission", "GetByKey", "Create"}
				if len(trace) != len(want) {
					t.Fatalf("trace = %v, want %v", trace, want)
				}
				for i := range want {
					if trace[i] != want[i] {
						t.Fatalf("trace = %v, want %v", trace, want)
					}
				}
			},
		},
		{
			name: "better score unseats the leader",
			cmd:  submitCmd("evt-2", "bob", 70, 78, base.Add(time.Hour)),
			setupFake: func(f *FakeLeaderboardRepo) {
				f.GetByKeyFunc = func(ctx context.Context, db bun.IDB, regionKey sharedtypes.RegionKey, courseID sharedtypes.CourseID) (*leaderboarddb.CourseLeaderboard, error) {
					return &leaderboarddb.CourseLeaderboard{
						ID:        1,
						RegionKey: regionKey,
						CourseID:  courseID,
						TopEntries: []leaderboarddomain.Entry{
							{UserID: "alice", NetScore: 72, GrossScore: 80, CreatedAt: base},
						},
						LeaderUserID:    "alice",
						LowNetScore:     72,
						TotalScoreCount: 1,
						Version:         3,
					}, nil
				}
			},
			verify: func(t *testing.T, res SubmitScoreResult, fake *FakeLeaderboardRepo) {
				if !res.BecameNewLeader {
					t.Error("strictly better net should become the new leader")
				}
				if res.LowNetScore != 70 {
					t.Errorf("LowNetScore = %d, want 70", res.LowNetScore)
				}
				if res.TotalScoreCount != 2 {
					t.Errorf("TotalScoreCount = %d, want 2", res.TotalScoreCount)
				}
			},
		},
		{
			name: "worse score does not trigger new leader",
			cmd:  submitCmd("evt-3", "carol", 75, 82, base.Add(2*time.Hour)),
			setupFake: func(f *FakeLeaderboardRepo) {
				f.GetByKeyFunc = func(ctx context.Context, db bun.IDB, regionKey sharedtypes.RegionKey, courseID sharedtypes.CourseID) (*leaderboarddb.CourseLeaderboard, error) {
					return &leaderboarddb.CourseLeaderboard{
						ID:        1,
						RegionKey: regionKey,
						CourseID:  courseID,
						TopEntries: []leaderboarddomain.Entry{
							{UserID: "alice", NetScore: 72, GrossScore: 80, CreatedAt: base},
						},
						LeaderUserID:    "alice",
						LowNetScore:     72,
						TotalScoreCount: 1,
					}, nil
				}
			},
			verify: func(t *testing.T, res SubmitScoreResult, fake *FakeLeaderboardRepo) {
				if res.BecameNewLeader {
					t.Error("worse score must not become the new leader")
				}
			},
		},
		{
			name: "duplicate event id is a no-op",
			cmd:  submitCmd("evt-dup", "alice", 72, 80, base),
			setupFake: func(f *FakeLeaderboardRepo) {
				f.ClaimSubmissionFunc = func(ctx context.Context, db bun.IDB, submission *leaderboarddb.Submission) error {
					return leaderboarddb.ErrDuplicateSubmission
				}
			},
			verify: func(t *testing.T, res SubmitScoreResult, fake *FakeLeaderboardRepo) {
				if !res.Duplicate {
					t.Error("replayed event id should be reported as duplicate")
				}
				if res.BecameNewLeader {
					t.Error("duplicate must not re-trigger downstream effects")
				}
				for _, step := range fake.Trace() {
					if step == "UpdateVersioned" || step == "Create" {
						t.Errorf("duplicate must not write the leaderboard, trace: %v", fake.Trace())
					}
				}
			},
		},
		{
			name: "version conflict retries then succeeds",
			cmd:  submitCmd("evt-4", "dave", 69, 75, base.Add(3*time.Hour)),
			setupFake: func(f *FakeLeaderboardRepo) {
				conflicts := 2
				f.GetByKeyFunc = func(ctx context.Context, db bun.IDB, regionKey sharedtypes.RegionKey, courseID sharedtypes.CourseID) (*leaderboarddb.CourseLeaderboard, error) {
					return &leaderboarddb.CourseLeaderboard{
						ID:              1,
						RegionKey:       regionKey,
						CourseID:        courseID,
						TopEntries:      []leaderboarddomain.Entry{{UserID: "alice", NetScore: 72, GrossScore: 80, CreatedAt: base}},
						LeaderUserID:    "alice",
						LowNetScore:     72,
						TotalScoreCount: 1,
					}, nil
				}
				f.UpdateVersionedFunc = func(ctx context.Context, db bun.IDB, leaderboard *leaderboarddb.CourseLeaderboard, expectedVersion int64) error {
					if conflicts > 0 {
						conflicts--
						return leaderboarddb.ErrVersionConflict
					}
					return nil
				}
			},
			verify: func(t *testing.T, res SubmitScoreResult, fake *FakeLeaderboardRepo) {
				if !res.BecameNewLeader {
					t.Error("winning score should become leader after retries")
				}
				updates := 0
				for _, step := range fake.Trace() {
					if step == "UpdateVersioned" {
						updates++
					}
				}
				if updates != 3 {
					t.Errorf("UpdateVersioned called %d times, want 3", updates)
				}
			},
		},
		{
			name: "retry budget exhaustion surfaces a transient error",
			cmd:  submitCmd("evt-5", "erin", 68, 74, base.Add(4*time.Hour)),
			setupFake: func(f *FakeLeaderboardRepo) {
				f.GetByKeyFunc = func(ctx context.Context, db bun.IDB, regionKey sharedtypes.RegionKey, courseID sharedtypes.CourseID) (*leaderboarddb.CourseLeaderboard, error) {
					return &leaderboarddb.CourseLeaderboard{
						ID:         1,
						RegionKey:  regionKey,
						CourseID:   courseID,
						TopEntries: []leaderboarddomain.Entry{{UserID: "alice", NetScore: 72, GrossScore: 80, CreatedAt: base}},
					}, nil
				}
				f.UpdateVersionedFunc = func(ctx context.Context, db bun.IDB, leaderboard *leaderboarddb.CourseLeaderboard, expectedVersion int64) error {
					return leaderboarddb.ErrVersionConflict
				}
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := NewFakeLeaderboardRepo()
			if tt.setupFake != nil {
				tt.setupFake(fake)
			}
			svc := newTestService(fake)

			res, err := svc.SubmitScore(context.Background(), tt.cmd)
			if tt.expectErr {
				if err == nil {
					t.Fatal("expected an error, got none")
				}
				if !errors.Is(err, leaderboarddb.ErrVersionConflict) {
					t.Errorf("error should wrap ErrVersionConflict, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("SubmitScore returned error: %v", err)
			}
			if !res.IsSuccess() {
				t.Fatalf("expected success result, got %+v", res)
			}
			if tt.verify != nil {
				tt.verify(t, *res.Success, fake)
			}
		})
	}
}

func TestLeaderboardService_SubmitScore_MissingEventID(t *testing.T) {
	fake := NewFakeLeaderboardRepo()
	svc := newTestService(fake)

	res, err := svc.SubmitScore(context.Background(), SubmitScoreCommand{})
	if err != nil {
		t.Fatalf("missing event id should be a failure payload, not an error: %v", err)
	}
	if !res.IsFailure() {
		t.Fatal("expected failure result")
	}
	if len(fake.Trace()) != 0 {
		t.Errorf("no repository calls expected, got %v", fake.Trace())
	}
}
