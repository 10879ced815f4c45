package achievementservice

import (
	"time"

	achievementdomain "github.com/fairway-links-club/greens-engine/app/modules/achievement/domain"
	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

// ReevaluateTierCommand triggers a tier re-evaluation. CourseID names the
// course that caused the trigger and receives the lowman badge; it is empty
// for periodic audit sweeps.
type ReevaluateTierCommand struct {
	UserID   sharedtypes.UserID
	CourseID sharedtypes.CourseID
}

// ReevaluateTierResult reports the post-evaluation tier state.
type ReevaluateTierResult struct {
	UserID             sharedtypes.UserID
	Tier               achievementdomain.Tier
	PreviousTier       achievementdomain.Tier
	LowmanCourseCount  int
	Changed            bool
	LowmanBadgeAwarded bool
	StaleBadgesRemoved int
}

// ReevaluateTierFailure describes a rejected re-evaluation request.
type ReevaluateTierFailure struct {
	UserID sharedtypes.UserID
	Reason string
}

// AwardHoleInOneCommand records an ace from a round.
type AwardHoleInOneCommand struct {
	EventID  sharedtypes.EventID
	UserID   sharedtypes.UserID
	CourseID sharedtypes.CourseID
	Score    sharedtypes.Score
}

// AwardHoleInOneResult reports whether a new badge row was written.
type AwardHoleInOneResult struct {
	UserID   sharedtypes.UserID
	CourseID sharedtypes.CourseID
	Awarded  bool
}

// AwardHoleInOneFailure describes a rejected award request.
type AwardHoleInOneFailure struct {
	EventID sharedtypes.EventID
	Reason  string
}

// AuditTiersResult summarizes one periodic self-healing sweep.
type AuditTiersResult struct {
	Candidates int
	Changed    int
}

// AuditTiersFailure is unused today; sweeps fail only with transient errors.
type AuditTiersFailure struct {
	Reason string
}

// BadgeView is the read model served to display collaborators.
type BadgeView struct {
	BadgeType  string               `json:"badge_type"`
	CourseID   sharedtypes.CourseID `json:"course_id,omitempty"`
	Score      sharedtypes.Score    `json:"score,omitempty"`
	AchievedAt time.Time            `json:"achieved_at"`
}

// AchievementView is a user's badges plus their single tier.
type AchievementView struct {
	UserID            sharedtypes.UserID     `json:"user_id"`
	Tier              achievementdomain.Tier `json:"tier"`
	LowmanCourseCount int                    `json:"lowman_course_count"`
	Badges            []BadgeView            `json:"badges"`
}
