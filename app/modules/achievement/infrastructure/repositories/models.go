package achievementdb

import (
	"time"

	"github.com/uptrace/bun"

	achievementdomain "github.com/fairway-links-club/greens-engine/app/modules/achievement/domain"
	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

// CourseBadge is one course-scoped badge. Lowman badges are unique per
// (user, course); hole-in-one badges are unique per originating event so a
// redelivered score cannot double-award.
type CourseBadge struct {
	bun.BaseModel `bun:"table:course_badges,alias:cb"`

	ID         int64                `bun:"id,pk,autoincrement"`
	UserID     sharedtypes.UserID   `bun:"user_id,notnull"`
	BadgeType  string               `bun:"badge_type,notnull"`
	CourseID   sharedtypes.CourseID `bun:"course_id,notnull"`
	EventID    sharedtypes.EventID  `bun:"event_id,nullzero"`
	Score      sharedtypes.Score    `bun:"score,nullzero"`
	AchievedAt time.Time            `bun:"achieved_at,nullzero,notnull,default:current_timestamp"`
}

// UserTier is the single-row tier slot per user. The primary key on user_id
// is what makes "at most one tier" impossible to violate, even under
// concurrent re-evaluations.
type UserTier struct {
	bun.BaseModel `bun:"table:user_tiers,alias:ut"`

	UserID            sharedtypes.UserID     `bun:"user_id,pk"`
	Tier              achievementdomain.Tier `bun:"tier,notnull"`
	LowmanCourseCount int                    `bun:"lowman_course_count,notnull"`
	Since             time.Time              `bun:"since,nullzero,notnull,default:current_timestamp"`
	UpdatedAt         time.Time              `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
