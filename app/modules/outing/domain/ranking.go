// Package outingdomain computes tie-aware live standings for multi-group
// outings.
package outingdomain

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

// NotStartedPosition is the placeholder shown for players who have not
// teed off.
const NotStartedPosition = "-"

// ProgressRecord is one player's live state, sourced from per-hole scores.
type ProgressRecord struct {
	PlayerID    sharedtypes.UserID
	DisplayName string
	GroupID     string
	GrossScore  sharedtypes.Score
	NetScore    sharedtypes.Score
	Thru        int
}

// Standing is one ranked row of the outing view. Position is zero for
// players who have not started; PositionLabel is what gets rendered.
type Standing struct {
	PlayerID      sharedtypes.UserID `json:"player_id"`
	DisplayName   string             `json:"display_name"`
	GroupID       string             `json:"group_id"`
	GrossScore    sharedtypes.Score  `json:"gross_score"`
	NetScore      sharedtypes.Score  `json:"net_score"`
	ScoreToPar    string             `json:"score_to_par"`
	Thru          int                `json:"thru"`
	Position      int                `json:"position,omitempty"`
	PositionLabel string             `json:"position_label"`
}

// Rank computes standings with standard competition ranking: tied net
// scores share a position, and ties consume positions (two players tied
// for 2nd leave the next player 4th). Players with Thru == 0 are excluded
// from ranking and listed last with a placeholder.
func Rank(records []ProgressRecord, coursePar int) []Standing {
	var started, notStarted []ProgressRecord
	for _, rec := range records {
		if rec.Thru > 0 {
			started = append(started, rec)
		} else {
			notStarted = append(notStarted, rec)
		}
	}

	slices.SortStableFunc(started, func(a, b ProgressRecord) int {
		return cmp.Compare(a.NetScore, b.NetScore)
	})

	standings := make([]Standing, 0, len(records))
	for i, rec := range started {
		position := i + 1
		if i > 0 && rec.NetScore == started[i-1].NetScore {
			position = standings[i-1].Position
		}
		standings = append(standings, Standing{
			PlayerID:      rec.PlayerID,
			DisplayName:   rec.DisplayName,
			GroupID:       rec.GroupID,
			GrossScore:    rec.GrossScore,
			NetScore:      rec.NetScore,
			ScoreToPar:    FormatScoreToPar(rec.NetScore, coursePar),
			Thru:          rec.Thru,
			Position:      position,
			PositionLabel: fmt.Sprintf("%d", position),
		})
	}

	for _, rec := range notStarted {
		standings = append(standings, Standing{
			PlayerID:      rec.PlayerID,
			DisplayName:   rec.DisplayName,
			GroupID:       rec.GroupID,
			PositionLabel: NotStartedPosition,
		})
	}
	return standings
}

// FormatScoreToPar renders net score relative to par as E, +n, or -n.
func FormatScoreToPar(netScore sharedtypes.Score, coursePar int) string {
	diff := int(netScore) - coursePar
	switch {
	case diff == 0:
		return "E"
	case diff > 0:
		return fmt.Sprintf("+%d", diff)
	default:
		return fmt.Sprintf("%d", diff)
	}
}
