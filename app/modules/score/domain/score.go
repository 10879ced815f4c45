// Package scoredomain validates and normalizes inbound round-completed
// events before they enter the aggregation pipeline.
package scoredomain

import (
	"fmt"
	"strings"
	"time"

	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

// FullRoundHoleCount is the hole count required for regional ranking.
// Shorter rounds still feed the handicap window but never the leaderboard.
const FullRoundHoleCount = 18

// StandardSlope is the neutral slope rating used in the USGA differential
// formula.
const StandardSlope = 113

// RoundFact is a validated, normalized score event.
type RoundFact struct {
	EventID      sharedtypes.EventID
	UserID       sharedtypes.UserID
	DisplayName  string
	RegionKey    sharedtypes.RegionKey
	CourseID     sharedtypes.CourseID
	CourseName   string
	GrossScore   sharedtypes.Score
	NetScore     sharedtypes.Score
	HoleCount    int
	HadHoleInOne bool
	CourseRating float64
	SlopeRating  int
	CreatedAt    time.Time
}

// ValidationError is a permanent rejection; retrying cannot fix missing data.
type ValidationError struct {
	MissingFields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("score event missing required fields: %s", strings.Join(e.MissingFields, ", "))
}

// RawEvent is the unvalidated inbound event shape.
type RawEvent struct {
	EventID      sharedtypes.EventID
	UserID       sharedtypes.UserID
	DisplayName  string
	RegionKey    sharedtypes.RegionKey
	CourseID     sharedtypes.CourseID
	CourseName   string
	GrossScore   sharedtypes.Score
	NetScore     sharedtypes.Score
	HoleCount    int
	HadHoleInOne bool
	CourseRating float64
	SlopeRating  int
	CreatedAt    time.Time
}

// Validate checks the required fields and returns the normalized fact.
func Validate(raw RawEvent) (*RoundFact, error) {
	var missing []string
	if raw.EventID == "" {
		missing = append(missing, "event_id")
	}
	if raw.UserID == "" {
		missing = append(missing, "user_id")
	}
	if raw.RegionKey == "" {
		missing = append(missing, "region_key")
	}
	if raw.CourseID == "" {
		missing = append(missing, "course_id")
	}
	if raw.CourseName == "" {
		missing = append(missing, "course_name")
	}
	if raw.GrossScore <= 0 {
		missing = append(missing, "gross_score")
	}
	if raw.NetScore <= 0 {
		missing = append(missing, "net_score")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{MissingFields: missing}
	}

	fact := RoundFact(raw)
	if fact.DisplayName == "" {
		fact.DisplayName = string(fact.UserID)
	}
	if fact.CreatedAt.IsZero() {
		fact.CreatedAt = time.Now().UTC()
	}
	return &fact, nil
}

// EligibleForRanking reports whether the round participates in regional
// leaderboards. Only full rounds do.
func (f *RoundFact) EligibleForRanking() bool {
	return f.HoleCount == FullRoundHoleCount
}

// HasRatings reports whether the course carried the ratings needed to
// compute a handicap differential.
func (f *RoundFact) HasRatings() bool {
	return f.CourseRating > 0 && f.SlopeRating > 0
}

// Differential computes the USGA-style score differential:
// (gross - course rating) * 113 / slope.
func (f *RoundFact) Differential() float64 {
	return (float64(f.GrossScore) - f.CourseRating) * StandardSlope / float64(f.SlopeRating)
}
