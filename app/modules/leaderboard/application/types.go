package leaderboardservice

import (
	"time"

	leaderboarddomain "github.com/fairway-links-club/greens-engine/app/modules/leaderboard/domain"
	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

// SubmitScoreCommand is one validated score bound for a course leaderboard.
type SubmitScoreCommand struct {
	EventID     sharedtypes.EventID
	RegionKey   sharedtypes.RegionKey
	CourseID    sharedtypes.CourseID
	CourseName  string
	UserID      sharedtypes.UserID
	DisplayName string
	GrossScore  sharedtypes.Score
	NetScore    sharedtypes.Score
	CreatedAt   time.Time
}

// SubmitScoreResult is the outcome of folding a score into its leaderboard.
type SubmitScoreResult struct {
	RegionKey       sharedtypes.RegionKey
	CourseID        sharedtypes.CourseID
	CourseName      string
	TopEntries      []leaderboarddomain.Entry
	LowNetScore     sharedtypes.Score
	TotalScoreCount int64
	BecameNewLeader bool
	// Duplicate is set when the event id was already folded in; the caller
	// emits no downstream effects.
	Duplicate bool
}

// SubmitScoreFailure describes a permanently rejected submission.
type SubmitScoreFailure struct {
	EventID sharedtypes.EventID
	Reason  string
}

// LeaderboardView is the read model served to display collaborators.
type LeaderboardView struct {
	RegionKey       sharedtypes.RegionKey      `json:"region_key"`
	CourseID        sharedtypes.CourseID       `json:"course_id"`
	CourseName      string                     `json:"course_name"`
	TopEntries      []leaderboarddomain.Entry  `json:"top_entries"`
	LowNetScore     sharedtypes.Score          `json:"low_net_score"`
	TotalScoreCount int64                      `json:"total_score_count"`
	LastUpdated     time.Time                  `json:"last_updated"`
}
