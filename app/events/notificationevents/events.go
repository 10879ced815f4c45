// Package notificationevents defines the outbound topics consumed by the
// external notification/feed-post collaborator. The engine only publishes
// these; it never subscribes to them.
package notificationevents

import (
	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

const (
	// LeaderChangedV1 is emitted exactly when a submission unseats the
	// previous rank-1 holder.
	LeaderChangedV1 = "notification.leader.changed.v1"

	// BadgeAwardedV1 is emitted for every new or tier-changed badge.
	BadgeAwardedV1 = "notification.badge.awarded.v1"
)

// LeaderChangedPayload is the outbound new-leader notification.
type LeaderChangedPayload struct {
	RegionKey  sharedtypes.RegionKey `json:"region_key"`
	CourseID   sharedtypes.CourseID  `json:"course_id"`
	CourseName string                `json:"course_name"`
	UserID     sharedtypes.UserID    `json:"user_id"`
	GrossScore sharedtypes.Score     `json:"gross_score"`
	NetScore   sharedtypes.Score     `json:"net_score"`
}

// BadgeAwardedPayload is the outbound badge notification. CourseID is empty
// for tier badges.
type BadgeAwardedPayload struct {
	UserID    sharedtypes.UserID   `json:"user_id"`
	BadgeType string               `json:"badge_type"`
	CourseID  sharedtypes.CourseID `json:"course_id,omitempty"`
}
