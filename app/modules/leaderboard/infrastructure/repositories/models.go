package leaderboarddb

import (
	"time"

	"github.com/uptrace/bun"

	leaderboarddomain "github.com/fairway-links-club/greens-engine/app/modules/leaderboard/domain"
	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

// CourseLeaderboard is the materialized top-N view per (region, course) key.
// TopEntries is always the true top-N of every score ever submitted for the
// key, not a cache with eviction. Version backs the optimistic-concurrency
// guard on updates.
type CourseLeaderboard struct {
	bun.BaseModel `bun:"table:course_leaderboards,alias:cl"`

	ID              int64                    `bun:"id,pk,autoincrement"`
	RegionKey       sharedtypes.RegionKey    `bun:"region_key,notnull"`
	CourseID        sharedtypes.CourseID     `bun:"course_id,notnull"`
	CourseName      string                   `bun:"course_name,notnull"`
	TopEntries      []leaderboarddomain.Entry `bun:"top_entries,type:jsonb,notnull"`
	LeaderUserID    sharedtypes.UserID       `bun:"leader_user_id"`
	LowNetScore     sharedtypes.Score        `bun:"low_net_score,notnull"`
	TotalScoreCount int64                    `bun:"total_score_count,notnull,default:0"`
	Version         int64                    `bun:"version,notnull,default:0"`
	LastUpdated     time.Time                `bun:"last_updated,nullzero,notnull,default:current_timestamp"`
}

// Submission is the per-event dedup ledger. One row per score event id;
// claimed inside the same transaction as the leaderboard write so a
// redelivered event cannot double count.
type Submission struct {
	bun.BaseModel `bun:"table:leaderboard_submissions,alias:ls"`

	EventID   sharedtypes.EventID `bun:"event_id,pk"`
	RegionKey sharedtypes.RegionKey `bun:"region_key,notnull"`
	CourseID  sharedtypes.CourseID  `bun:"course_id,notnull"`
	UserID    sharedtypes.UserID    `bun:"user_id,notnull"`
	CreatedAt time.Time             `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
