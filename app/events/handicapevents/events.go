// Package handicapevents defines the topics and payloads of the handicap
// differential window.
package handicapevents

import (
	"time"

	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

const (
	// DifferentialSubmittedV1 asks the handicap module to fold a round
	// differential into the player's rolling window.
	DifferentialSubmittedV1 = "handicap.differential.submitted.v1"
)

// DifferentialSubmittedPayload carries one normalized round differential.
type DifferentialSubmittedPayload struct {
	EventID      sharedtypes.EventID `json:"event_id"`
	UserID       sharedtypes.UserID  `json:"user_id"`
	Differential float64             `json:"differential"`
	CourseRating float64             `json:"course_rating"`
	SlopeRating  int                 `json:"slope_rating"`
	PlayedAt     time.Time           `json:"played_at"`
}
