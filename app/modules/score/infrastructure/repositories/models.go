package scoredb

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

// Ingestion statuses recorded for audit.
const (
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// ScoreIngestion is the durable audit record of every inbound score event.
// The event ID is the primary key, so replays collapse into a single row.
type ScoreIngestion struct {
	bun.BaseModel `bun:"table:score_ingestions,alias:si"`

	EventID    sharedtypes.EventID   `bun:"event_id,pk"`
	UserID     sharedtypes.UserID    `bun:"user_id,notnull"`
	RegionKey  sharedtypes.RegionKey `bun:"region_key,notnull"`
	CourseID   sharedtypes.CourseID  `bun:"course_id,notnull"`
	GrossScore sharedtypes.Score     `bun:"gross_score,notnull"`
	NetScore   sharedtypes.Score     `bun:"net_score,notnull"`
	HoleCount  int                   `bun:"hole_count,notnull"`
	Status     string                `bun:"status,notnull"`
	ReceivedAt time.Time             `bun:"received_at,nullzero,notnull,default:current_timestamp"`
}
