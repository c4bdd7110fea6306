package silence_test

import (
	"testing"

	"cleaver/internal/silence"
)

func TestMergeUnionsAdjacentAndOverlapping(t *testing.T) {
	merged := silence.Merge([]silence.Interval{
		{Start: 4, End: 9},
		{Start: 0, End: 5},
		{Start: 9, End: 11},
		{Start: 20, End: 25},
	})
	want := []silence.Interval{{Start: 0, End: 11}, {Start: 20, End: 25}}
	assertIntervals(t, merged, want)
}

func TestMergeEmpty(t *testing.T) {
	if merged := silence.Merge(nil); merged != nil {
		t.Fatalf("expected nil, got %v", merged)
	}
}

func TestClampDropsOutOfRange(t *testing.T) {
	clamped := silence.Clamp([]silence.Interval{
		{Start: -2, End: 3},
		{Start: 110, End: 120},
		{Start: 98, End: 105},
	}, 100)
	want := []silence.Interval{{Start: 0, End: 3}, {Start: 98, End: 100}}
	assertIntervals(t, clamped, want)
}

func TestTotalDuration(t *testing.T) {
	total := silence.TotalDuration([]silence.Interval{{Start: 0, End: 2.5}, {Start: 10, End: 11}})
	if total != 3.5 {
		t.Fatalf("unexpected total: %v", total)
	}
}
