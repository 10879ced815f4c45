package handicapservice

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

const testUser = sharedtypes.UserID("user-1")

func submitRound(t *testing.T, s *HandicapService, i int, differential float64) SubmitDifferentialResult {
	t.Helper()
	result, err := s.SubmitDifferential(context.Background(), SubmitDifferentialCommand{
		EventID:      sharedtypes.EventID(fmt.Sprintf("evt-%d", i)),
		UserID:       testUser,
		Differential: differential,
		CourseRating: 72.0,
		SlopeRating:  130,
		PlayedAt:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Hour),
	})
	if err != nil {
		t.Fatalf("SubmitDifferential() error: %v", err)
	}
	if !result.IsSuccess() {
		t.Fatalf("SubmitDifferential() failure: %+v", result.Failure)
	}
	return *result.Success
}

func TestSubmitDifferentialUsedCounts(t *testing.T) {
	repo := NewFakeHandicapRepo()
	s := newTestService(repo)

	var last SubmitDifferentialResult
	for i := 0; i < 2; i++ {
		last = submitRound(t, s, i, float64(10+i))
	}
	if last.WindowSize != 2 || last.UsedCount != 0 {
		t.Errorf("after 2 rounds: window=%d used=%d, want 2/0", last.WindowSize, last.UsedCount)
	}

	for i := 2; i < 9; i++ {
		last = submitRound(t, s, i, float64(10+i))
	}
	if last.WindowSize != 9 || last.UsedCount != 3 {
		t.Errorf("after 9 rounds: window=%d used=%d, want 9/3", last.WindowSize, last.UsedCount)
	}

	for i := 9; i < 20; i++ {
		last = submitRound(t, s, i, float64(10+i))
	}
	if last.WindowSize != 20 || last.UsedCount != 8 {
		t.Errorf("after 20 rounds: window=%d used=%d, want 20/8", last.WindowSize, last.UsedCount)
	}
}

func TestSubmitDifferentialWindowSlides(t *testing.T) {
	repo := NewFakeHandicapRepo()
	s := newTestService(repo)

	// 25 rounds with descending differentials: the best scores are the most
	// recent, so they survive the slide and stay used.
	var last SubmitDifferentialResult
	for i := 0; i < 25; i++ {
		last = submitRound(t, s, i, float64(40-i))
	}

	if last.WindowSize != 20 {
		t.Fatalf("window size = %d, want 20 after slide", last.WindowSize)
	}
	if last.UsedCount != 8 {
		t.Fatalf("used count = %d, want 8", last.UsedCount)
	}

	view, err := s.GetWindow(context.Background(), testUser)
	if err != nil {
		t.Fatalf("GetWindow() error: %v", err)
	}
	if len(view.Differentials) != 20 {
		t.Fatalf("view window = %d, want 20", len(view.Differentials))
	}
	// Most recent first; the eight most recent rounds have the lowest
	// differentials (16..23) and must all be flagged.
	for i := 0; i < 8; i++ {
		if !view.Differentials[i].IsUsed {
			t.Errorf("differential %d (%v) should be used", i, view.Differentials[i].Differential)
		}
	}
	for i := 8; i < 20; i++ {
		if view.Differentials[i].IsUsed {
			t.Errorf("differential %d (%v) should not be used", i, view.Differentials[i].Differential)
		}
	}
}

func TestSubmitDifferentialDuplicate(t *testing.T) {
	repo := NewFakeHandicapRepo()
	s := newTestService(repo)

	submitRound(t, s, 1, 12.0)
	before := len(repo.Trace())

	result, err := s.SubmitDifferential(context.Background(), SubmitDifferentialCommand{
		EventID:      sharedtypes.EventID("evt-1"),
		UserID:       testUser,
		Differential: 12.0,
		PlayedAt:     time.Now(),
	})
	if err != nil {
		t.Fatalf("SubmitDifferential() error: %v", err)
	}
	if !result.Success.Duplicate {
		t.Error("replayed event must be flagged duplicate")
	}

	// The replay stops at the insert; no trim or flag recompute runs.
	steps := repo.Trace()[before:]
	if len(steps) != 1 || steps[0] != "InsertDifferential" {
		t.Errorf("replay steps = %v, want insert only", steps)
	}
}

func TestSubmitDifferentialMissingIDs(t *testing.T) {
	s := newTestService(NewFakeHandicapRepo())
	result, err := s.SubmitDifferential(context.Background(), SubmitDifferentialCommand{
		UserID: testUser,
	})
	if err != nil {
		t.Fatalf("SubmitDifferential() error: %v", err)
	}
	if !result.IsFailure() {
		t.Fatal("missing event id must produce a failure result")
	}
}
