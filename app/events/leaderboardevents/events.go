// Package leaderboardevents defines the topics and payloads of the
// leaderboard aggregation pipeline.
package leaderboardevents

import (
	"time"

	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

const (
	// SubmitRequestedV1 asks the aggregator to fold a validated score into
	// its course leaderboard.
	SubmitRequestedV1 = "leaderboard.submit.requested.v1"

	// LeaderChangedV1 fires when a submission unseats the previous rank-1
	// holder; it drives tier re-evaluation in the achievement module.
	LeaderChangedV1 = "leaderboard.leader.changed.v1"

	// SubmitFailedV1 reports submissions rejected by the aggregator.
	SubmitFailedV1 = "leaderboard.submit.failed.v1"
)

// SubmitRequestedPayload carries one normalized entry bound for a
// (region, course) leaderboard.
type SubmitRequestedPayload struct {
	EventID     sharedtypes.EventID   `json:"event_id"`
	RegionKey   sharedtypes.RegionKey `json:"region_key"`
	CourseID    sharedtypes.CourseID  `json:"course_id"`
	CourseName  string                `json:"course_name"`
	UserID      sharedtypes.UserID    `json:"user_id"`
	DisplayName string                `json:"display_name"`
	GrossScore  sharedtypes.Score     `json:"gross_score"`
	NetScore    sharedtypes.Score     `json:"net_score"`
	CreatedAt   time.Time             `json:"created_at"`
}

// LeaderChangedPayload announces a new rank-1 holder.
type LeaderChangedPayload struct {
	RegionKey  sharedtypes.RegionKey `json:"region_key"`
	CourseID   sharedtypes.CourseID  `json:"course_id"`
	CourseName string                `json:"course_name"`
	UserID     sharedtypes.UserID    `json:"user_id"`
	GrossScore sharedtypes.Score     `json:"gross_score"`
	NetScore   sharedtypes.Score     `json:"net_score"`
}

// SubmitFailedPayload reports a rejected submission.
type SubmitFailedPayload struct {
	EventID sharedtypes.EventID `json:"event_id"`
	Reason  string              `json:"reason"`
}
