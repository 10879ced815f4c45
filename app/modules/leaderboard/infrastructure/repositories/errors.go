package leaderboarddb

import "errors"

var (
	// ErrNotFound is returned when no leaderboard exists for a key.
	ErrNotFound = errors.New("leaderboard not found")

	// ErrVersionConflict is returned when a concurrent writer advanced the
	// leaderboard version between read and write. The caller retries the
	// whole transaction.
	ErrVersionConflict = errors.New("leaderboard version conflict")

	// ErrDuplicateSubmission is returned when the event id was already
	// folded into the leaderboard.
	ErrDuplicateSubmission = errors.New("score event already submitted")
)
