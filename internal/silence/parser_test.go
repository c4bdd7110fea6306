package silence_test

import (
	"testing"

	"cleaver/internal/logging"
	"cleaver/internal/silence"
)

func TestParsePairsStartAndEndLines(t *testing.T) {
	lines := []string{
		"Input #0, mp3, from 'album.mp3':",
		"[silencedetect @ 0x55] silence_start: 10",
		"[silencedetect @ 0x55] silence_end: 12 | silence_duration: 2",
		"[silencedetect @ 0x55] silence_start: 50.25",
		"[silencedetect @ 0x55] silence_end: 53.5 | silence_duration: 3.25",
	}
	intervals := silence.Parse(lines, 100, logging.NewNop())
	want := []silence.Interval{{Start: 10, End: 12}, {Start: 50.25, End: 53.5}}
	assertIntervals(t, intervals, want)
}

func TestParseClosesUnterminatedStartAtDuration(t *testing.T) {
	lines := []string{
		"[silencedetect @ 0x55] silence_start: 90",
	}
	intervals := silence.Parse(lines, 100, logging.NewNop())
	assertIntervals(t, intervals, []silence.Interval{{Start: 90, End: 100}})
}

func TestParseSkipsMalformedLines(t *testing.T) {
	lines := []string{
		"[silencedetect @ 0x55] silence_start: 10",
		"[silencedetect @ 0x55] silence_end: 10.5.5",
		"[silencedetect @ 0x55] silence_end: 12",
		"[silencedetect @ 0x55] silence_start: garbage",
		"[silencedetect @ 0x55] silence_start: 40",
		"[silencedetect @ 0x55] silence_end: 42",
	}
	intervals := silence.Parse(lines, 100, logging.NewNop())
	assertIntervals(t, intervals, []silence.Interval{{Start: 10, End: 12}, {Start: 40, End: 42}})
}

func TestParseRejectsInvertedPair(t *testing.T) {
	lines := []string{
		"[silencedetect @ 0x55] silence_start: 20",
		"[silencedetect @ 0x55] silence_end: 15",
		"[silencedetect @ 0x55] silence_start: 30",
		"[silencedetect @ 0x55] silence_end: 35",
	}
	intervals := silence.Parse(lines, 100, logging.NewNop())
	assertIntervals(t, intervals, []silence.Interval{{Start: 30, End: 35}})
}

func TestParseSkipsEndWithoutStart(t *testing.T) {
	lines := []string{
		"[silencedetect @ 0x55] silence_end: 5",
		"[silencedetect @ 0x55] silence_start: 10",
		"[silencedetect @ 0x55] silence_end: 12",
	}
	intervals := silence.Parse(lines, 100, logging.NewNop())
	assertIntervals(t, intervals, []silence.Interval{{Start: 10, End: 12}})
}

func TestParseClampsToFileBounds(t *testing.T) {
	lines := []string{
		"[silencedetect @ 0x55] silence_start: -0.5",
		"[silencedetect @ 0x55] silence_end: 3",
		"[silencedetect @ 0x55] silence_start: 95",
		"[silencedetect @ 0x55] silence_end: 130",
	}
	intervals := silence.Parse(lines, 100, logging.NewNop())
	assertIntervals(t, intervals, []silence.Interval{{Start: 0, End: 3}, {Start: 95, End: 100}})
}

func TestParseMergesOverlappingIntervals(t *testing.T) {
	lines := []string{
		"[silencedetect @ 0x55] silence_start: 0",
		"[silencedetect @ 0x55] silence_end: 5",
		"[silencedetect @ 0x55] silence_start: 4",
		"[silencedetect @ 0x55] silence_end: 9",
	}
	intervals := silence.Parse(lines, 100, logging.NewNop())
	assertIntervals(t, intervals, []silence.Interval{{Start: 0, End: 9}})
}

func TestParseEmptyInput(t *testing.T) {
	if intervals := silence.Parse(nil, 100, logging.NewNop()); len(intervals) != 0 {
		t.Fatalf("expected no intervals, got %v", intervals)
	}
}

func assertIntervals(t *testing.T, got, want []silence.Interval) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("interval count mismatch: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("interval %d mismatch: got %v, want %v", i, got[i], want[i])
		}
	}
}
