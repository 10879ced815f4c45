package handicapdomain

import "testing"

func TestUsedCount(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{n: 0, want: 0},
		{n: 2, want: 0},
		{n: 3, want: 1},
		{n: 5, want: 1},
		{n: 6, want: 2},
		{n: 8, want: 2},
		{n: 9, want: 3},
		{n: 11, want: 3},
		{n: 14, want: 4},
		{n: 16, want: 5},
		{n: 18, want: 6},
		{n: 19, want: 7},
		{n: 20, want: 8},
		{n: 25, want: 8},
	}

	for _, tt := range tests {
		if got := UsedCount(tt.n); got != tt.want {
			t.Errorf("UsedCount(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func countUsed(used []bool) int {
	n := 0
	for _, u := range used {
		if u {
			n++
		}
	}
	return n
}

func TestSelectUsedMarksLowest(t *testing.T) {
	diffs := []float64{12.5, 8.1, 15.0, 9.9, 7.2, 11.3}

	used := SelectUsed(diffs)
	if len(used) != len(diffs) {
		t.Fatalf("len(used) = %d, want %d", len(used), len(diffs))
	}
	if got := countUsed(used); got != 2 {
		t.Fatalf("used count = %d, want 2 for window of 6", got)
	}
	// Lowest two are 7.2 (index 4) and 8.1 (index 1).
	if !used[4] || !used[1] {
		t.Errorf("used = %v, want indices 4 and 1 marked", used)
	}
}

func TestSelectUsedBelowMinimum(t *testing.T) {
	used := SelectUsed([]float64{10.0, 12.0})
	if countUsed(used) != 0 {
		t.Errorf("window of 2 must mark nothing, got %v", used)
	}
}

func TestSelectUsedFullWindow(t *testing.T) {
	diffs := make([]float64, 20)
	for i := range diffs {
		diffs[i] = float64(20 - i)
	}

	used := SelectUsed(diffs)
	if got := countUsed(used); got != 8 {
		t.Fatalf("used count = %d, want 8 for full window", got)
	}
	// Values descend, so the lowest eight sit at the tail.
	for i := 12; i < 20; i++ {
		if !used[i] {
			t.Errorf("index %d (value %v) should be used", i, diffs[i])
		}
	}
}

func TestSelectUsedTiesByOriginalPosition(t *testing.T) {
	diffs := []float64{9.0, 9.0, 9.0, 9.0}

	used := SelectUsed(diffs)
	if got := countUsed(used); got != 1 {
		t.Fatalf("used count = %d, want 1 for window of 4", got)
	}
	if !used[0] {
		t.Errorf("tie must resolve to the earliest position, got %v", used)
	}
}
