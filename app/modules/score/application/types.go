package scoreservice

import (
	"github.com/fairway-links-club/greens-engine/app/events/achievementevents"
	"github.com/fairway-links-club/greens-engine/app/events/handicapevents"
	"github.com/fairway-links-club/greens-engine/app/events/leaderboardevents"
	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

// IngestResult is the fan-out plan for one accepted score event. Nil
// payloads mean the event does not feed that pipeline.
type IngestResult struct {
	EventID sharedtypes.EventID
	UserID  sharedtypes.UserID
	// Duplicate is set when the event id was seen before. Fan-out still
	// happens; each downstream write dedupes on the event id itself.
	Duplicate bool

	LeaderboardSubmit *leaderboardevents.SubmitRequestedPayload
	Differential      *handicapevents.DifferentialSubmittedPayload
	HoleInOne         *achievementevents.HoleInOneRequestedPayload
}

// IngestFailure describes a permanently rejected event.
type IngestFailure struct {
	EventID sharedtypes.EventID
	Reason  string
}
