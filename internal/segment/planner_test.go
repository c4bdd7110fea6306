package segment_test

import (
	"reflect"
	"testing"

	"cleaver/internal/segment"
	"cleaver/internal/silence"
)

func TestPlanEmptyMaskYieldsWholeFile(t *testing.T) {
	segments := segment.Plan(120, nil, 5)
	want := []segment.Segment{{Index: 1, Start: 0, End: 120}}
	if !reflect.DeepEqual(segments, want) {
		t.Fatalf("got %v, want %v", segments, want)
	}
}

func TestPlanFullSilenceYieldsNoSegments(t *testing.T) {
	segments := segment.Plan(100, []silence.Interval{{Start: 0, End: 100}}, 5)
	if len(segments) != 0 {
		t.Fatalf("expected zero segments, got %v", segments)
	}
}

func TestPlanEndToEndScenario(t *testing.T) {
	// Trailing silence runs to EOF, so no span follows it.
	intervals := []silence.Interval{
		{Start: 10, End: 12},
		{Start: 50, End: 53},
		{Start: 90, End: 100},
	}
	segments := segment.Plan(100, intervals, 5)
	want := []segment.Segment{
		{Index: 1, Start: 0, End: 10},
		{Index: 2, Start: 12, End: 50},
		{Index: 3, Start: 53, End: 90},
	}
	if !reflect.DeepEqual(segments, want) {
		t.Fatalf("got %v, want %v", segments, want)
	}
}

func TestPlanDropsShortCandidatesEntirely(t *testing.T) {
	// The 3-second blip between the two windows must vanish, not merge.
	intervals := []silence.Interval{
		{Start: 20, End: 22},
		{Start: 25, End: 28},
	}
	segments := segment.Plan(60, intervals, 5)
	want := []segment.Segment{
		{Index: 1, Start: 0, End: 20},
		{Index: 2, Start: 28, End: 60},
	}
	if !reflect.DeepEqual(segments, want) {
		t.Fatalf("got %v, want %v", segments, want)
	}
	for _, seg := range segments {
		if seg.Duration() < 5 {
			t.Fatalf("segment %d shorter than minimum: %v", seg.Index, seg.Duration())
		}
	}
}

func TestPlanIsIdempotent(t *testing.T) {
	intervals := []silence.Interval{{Start: 7, End: 9}, {Start: 30, End: 33.5}}
	first := segment.Plan(80, intervals, 5)
	second := segment.Plan(80, intervals, 5)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("planner not idempotent: %v vs %v", first, second)
	}
}

func TestPlanSegmentsDisjointFromSilence(t *testing.T) {
	intervals := []silence.Interval{
		{Start: 5, End: 8},
		{Start: 40, End: 45.25},
		{Start: 70, End: 71.5},
	}
	duration := 90.0
	segments := segment.Plan(duration, intervals, 5)

	for _, seg := range segments {
		if seg.Start < 0 || seg.End > duration {
			t.Fatalf("segment %v exceeds [0, %v]", seg, duration)
		}
		if seg.Duration() <= 0 {
			t.Fatalf("segment %v has non-positive duration", seg)
		}
		for _, window := range intervals {
			if seg.Start < window.End && window.Start < seg.End {
				t.Fatalf("segment %v overlaps silence %v", seg, window)
			}
		}
	}
	for i := 1; i < len(segments); i++ {
		if segments[i-1].End > segments[i].Start {
			t.Fatalf("segments overlap: %v then %v", segments[i-1], segments[i])
		}
		if segments[i].Index != segments[i-1].Index+1 {
			t.Fatalf("indices not sequential: %v then %v", segments[i-1], segments[i])
		}
	}
}

func TestPlanClampsStrayIntervals(t *testing.T) {
	intervals := []silence.Interval{{Start: -5, End: 3}, {Start: 95, End: 200}}
	segments := segment.Plan(100, intervals, 5)
	want := []segment.Segment{{Index: 1, Start: 3, End: 95}}
	if !reflect.DeepEqual(segments, want) {
		t.Fatalf("got %v, want %v", segments, want)
	}
}

func TestPlanZeroDuration(t *testing.T) {
	if segments := segment.Plan(0, nil, 5); segments != nil {
		t.Fatalf("expected nil for zero duration, got %v", segments)
	}
}

func TestTotalDuration(t *testing.T) {
	segments := []segment.Segment{
		{Index: 1, Start: 0, End: 10},
		{Index: 2, Start: 12, End: 50},
	}
	if got := segment.TotalDuration(segments); got != 48 {
		t.Fatalf("unexpected total: %v", got)
	}
}

func TestIndexWidth(t *testing.T) {
	cases := []struct {
		count int
		want  int
	}{
		{1, 2}, {9, 2}, {42, 2}, {99, 2}, {100, 3}, {1000, 4},
	}
	for _, tc := range cases {
		if got := segment.IndexWidth(tc.count); got != tc.want {
			t.Errorf("IndexWidth(%d) = %d, want %d", tc.count, got, tc.want)
		}
	}
}

func TestOutputName(t *testing.T) {
	if got := segment.OutputName("album", 3, 2, "mp3"); got != "album_track_03.mp3" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := segment.OutputName("album", 7, 3, "flac"); got != "album_track_007.flac" {
		t.Fatalf("unexpected name %q", got)
	}
}
