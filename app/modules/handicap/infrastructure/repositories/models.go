package handicapdb

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

// DifferentialRecord is one round's differential inside a player's rolling
// window. The unique event_id collapses redelivered score events; is_used is
// derived and recomputed whenever the window changes.
type DifferentialRecord struct {
	bun.BaseModel `bun:"table:handicap_differentials,alias:hd"`

	ID           int64               `bun:"id,pk,autoincrement"`
	EventID      sharedtypes.EventID `bun:"event_id,notnull,unique"`
	UserID       sharedtypes.UserID  `bun:"user_id,notnull"`
	Differential float64             `bun:"differential,notnull"`
	CourseRating float64             `bun:"course_rating,notnull"`
	SlopeRating  int                 `bun:"slope_rating,notnull"`
	IsUsed       bool                `bun:"is_used,notnull,default:false"`
	PlayedAt     time.Time           `bun:"played_at,notnull"`
}
