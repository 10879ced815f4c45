package outingdb

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

// Outing is one live multi-group event.
type Outing struct {
	bun.BaseModel `bun:"table:outings,alias:o"`

	OutingID  string               `bun:"outing_id,pk"`
	Name      string               `bun:"name,notnull"`
	CourseID  sharedtypes.CourseID `bun:"course_id,notnull"`
	CoursePar int                  `bun:"course_par,notnull"`
	StartsAt  time.Time            `bun:"starts_at,notnull"`
}

// OutingProgress is one player's live progress row. The per-hole scores
// feeding gross/net/thru are maintained by the live-scoring collaborator;
// this engine only ranks the result.
type OutingProgress struct {
	bun.BaseModel `bun:"table:outing_progress,alias:op"`

	ID          int64              `bun:"id,pk,autoincrement"`
	OutingID    string             `bun:"outing_id,notnull"`
	PlayerID    sharedtypes.UserID `bun:"player_id,notnull"`
	DisplayName string             `bun:"display_name,notnull"`
	GroupID     string             `bun:"group_id,notnull"`
	GrossScore  sharedtypes.Score  `bun:"gross_score,notnull,default:0"`
	NetScore    sharedtypes.Score  `bun:"net_score,notnull,default:0"`
	Thru        int                `bun:"thru,notnull,default:0"`
	UpdatedAt   time.Time          `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
