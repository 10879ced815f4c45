// Package scoreevents defines the inbound score topics and payloads
// consumed by the ingest module.
package scoreevents

import (
	"time"

	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

const (
	// RoundCompletedV1 is published by the upstream delivery mechanism once
	// per completed round.
	RoundCompletedV1 = "score.round.completed.v1"

	// IngestFailedV1 carries permanent validation failures for ops visibility.
	IngestFailedV1 = "score.ingest.failed.v1"
)

// RoundCompletedPayload is the immutable fact of a player finishing a round.
type RoundCompletedPayload struct {
	EventID      sharedtypes.EventID   `json:"event_id"`
	UserID       sharedtypes.UserID    `json:"user_id"`
	DisplayName  string                `json:"display_name,omitempty"`
	RegionKey    sharedtypes.RegionKey `json:"region_key"`
	CourseID     sharedtypes.CourseID  `json:"course_id"`
	CourseName   string                `json:"course_name"`
	GrossScore   sharedtypes.Score     `json:"gross_score"`
	NetScore     sharedtypes.Score     `json:"net_score"`
	HoleCount    int                   `json:"hole_count"`
	HadHoleInOne bool                  `json:"had_hole_in_one"`
	CourseRating float64               `json:"course_rating,omitempty"`
	SlopeRating  int                   `json:"slope_rating,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
}

// IngestFailedPayload reports a permanently rejected event.
type IngestFailedPayload struct {
	EventID sharedtypes.EventID `json:"event_id"`
	Reason  string              `json:"reason"`
}
