// Package achievementevents defines the topics and payloads of the
// badge/tier pipeline.
package achievementevents

import (
	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

const (
	// HoleInOneRequestedV1 asks the badge ledger to record a hole-in-one.
	HoleInOneRequestedV1 = "achievement.hole.in.one.requested.v1"

	// TierReevaluatedV1 reports the outcome of a tier re-evaluation.
	TierReevaluatedV1 = "achievement.tier.reevaluated.v1"
)

// HoleInOneRequestedPayload records an ace during a round.
type HoleInOneRequestedPayload struct {
	EventID  sharedtypes.EventID  `json:"event_id"`
	UserID   sharedtypes.UserID   `json:"user_id"`
	CourseID sharedtypes.CourseID `json:"course_id"`
	Score    sharedtypes.Score    `json:"score"`
}

// TierReevaluatedPayload reports the tier derived from a user's current
// lowman course count.
type TierReevaluatedPayload struct {
	UserID            sharedtypes.UserID `json:"user_id"`
	Tier              string             `json:"tier"`
	LowmanCourseCount int                `json:"lowman_course_count"`
	Changed           bool               `json:"changed"`
}
