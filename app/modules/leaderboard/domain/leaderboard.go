// Package leaderboarddomain holds the pure ordering and ranking rules for
// course leaderboards.
package leaderboarddomain

import (
	"cmp"
	"slices"
	"time"

	"github.com/fairway-links-club/greens-engine/app/shared/sharedtypes"
)

// DefaultTopSize is how many entries a course leaderboard keeps.
const DefaultTopSize = 10

// Entry is one ranked leaderboard row.
type Entry struct {
	UserID      sharedtypes.UserID `json:"user_id"`
	DisplayName string             `json:"display_name"`
	GrossScore  sharedtypes.Score  `json:"gross_score"`
	NetScore    sharedtypes.Score  `json:"net_score"`
	CreatedAt   time.Time          `json:"created_at"`
}

// Compare reports the ranking order of a and b. The full tie-break chain: lower
// net wins; among equal net, lower gross wins; among equal net and gross,
// the earlier submission keeps priority.
func Compare(a, b Entry) int {
	if c := cmp.Compare(a.NetScore, b.NetScore); c != 0 {
		return c
	}
	if c := cmp.Compare(a.GrossScore, b.GrossScore); c != 0 {
		return c
	}
	return a.CreatedAt.Compare(b.CreatedAt)
}

// MergeResult is the outcome of folding one entry into a leaderboard.
type MergeResult struct {
	TopEntries      []Entry
	LowNetScore     sharedtypes.Score
	BecameNewLeader bool
}

// Merge inserts entry into the current top entries, re-sorts under the full
// tie-break chain, and truncates to topSize. BecameNewLeader is strictly
// "a new, better score unseat the previous leader": the submitter must hold
// rank 1 afterwards AND have strictly beaten the previous low net. A
// resubmission that merely ties the existing leader does not re-trigger
// downstream effects.
//
// previousLowValid is false when the leaderboard had no entries yet; any
// first entry then becomes the leader.
func Merge(current []Entry, entry Entry, previousLow sharedtypes.Score, previousLowValid bool, topSize int) MergeResult {
	if topSize <= 0 {
		topSize = DefaultTopSize
	}

	merged := make([]Entry, 0, len(current)+1)
	merged = append(merged, current...)
	merged = append(merged, entry)
	slices.SortStableFunc(merged, Compare)

	if len(merged) > topSize {
		merged = merged[:topSize]
	}

	top := merged[0]
	became := top.UserID == entry.UserID &&
		(!previousLowValid || top.NetScore < previousLow)

	return MergeResult{
		TopEntries:      merged,
		LowNetScore:     top.NetScore,
		BecameNewLeader: became,
	}
}

// LeaderUserID returns the rank-1 holder of the given entries, or "" when
// the board is empty.
func LeaderUserID(entries []Entry) sharedtypes.UserID {
	if len(entries) == 0 {
		return ""
	}
	return entries[0].UserID
}
