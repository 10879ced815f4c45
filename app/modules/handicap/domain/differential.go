// Package handicapdomain selects which differentials in a player's rolling
// window count toward their handicap index.
package handicapdomain

import (
	"cmp"
	"slices"
)

// WindowSize bounds the rolling window to the most recent rounds.
const WindowSize = 20

// UsedCount is the monotonic step table mapping window size to how many of
// the lowest differentials count toward the index.
func UsedCount(n int) int {
	switch {
	case n < 3:
		return 0
	case n <= 5:
		return 1
	case n <= 8:
		return 2
	case n <= 11:
		return 3
	case n <= 14:
		return 4
	case n <= 16:
		return 5
	case n <= 18:
		return 6
	case n == 19:
		return 7
	default:
		return 8
	}
}

// SelectUsed marks the lowest UsedCount(n) differentials in the window.
//
// The returned slice is aligned with the input: used[i] reports whether
// differentials[i] counts. Ties are broken by original position, earliest
// first, so the selection is deterministic. This is a snapshot computation
// over the whole window; it is re-run every time the window changes rather
// than maintained incrementally.
func SelectUsed(differentials []float64) []bool {
	used := make([]bool, len(differentials))
	count := UsedCount(len(differentials))
	if count == 0 {
		return used
	}

	order := make([]int, len(differentials))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		if c := cmp.Compare(differentials[a], differentials[b]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	for _, idx := range order[:count] {
		used[idx] = true
	}
	return used
}
