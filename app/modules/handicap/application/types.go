package handicapservice

import (
	"time"

	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

// SubmitDifferentialCommand is one round differential bound for a user's
// rolling window.
type SubmitDifferentialCommand struct {
	EventID      sharedtypes.EventID
	UserID       sharedtypes.UserID
	Differential float64
	CourseRating float64
	SlopeRating  int
	PlayedAt     time.Time
}

// SubmitDifferentialResult reports the window state after the fold.
type SubmitDifferentialResult struct {
	UserID     sharedtypes.UserID
	WindowSize int
	UsedCount  int
	// Duplicate is set when the event id was already in the window; the
	// window and flags are untouched.
	Duplicate bool
}

// SubmitDifferentialFailure describes a rejected submission.
type SubmitDifferentialFailure struct {
	EventID sharedtypes.EventID
	Reason  string
}

// DifferentialView is one window record served to display collaborators.
type DifferentialView struct {
	Differential float64   `json:"differential"`
	CourseRating float64   `json:"course_rating"`
	SlopeRating  int       `json:"slope_rating"`
	IsUsed       bool      `json:"is_used"`
	PlayedAt     time.Time `json:"played_at"`
}

// WindowView is a user's rolling window, most recent first.
type WindowView struct {
	UserID        sharedtypes.UserID `json:"user_id"`
	Differentials []DifferentialView `json:"differentials"`
	UsedCount     int                `json:"used_count"`
}
