package segment

import (
	"cleaver/internal/silence"
)

// Segment is a contiguous non-silent time range selected as one output track.
type Segment struct {
	// Index is the 1-based track number, assigned in ascending start order.
	Index int
	Start float64
	End   float64
}

// Duration returns the segment length in seconds.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// Plan converts a silence mask into an ordered list of track segments.
//
// intervals must be sorted and non-overlapping (the silence parser
// guarantees this); they are clamped to [0, duration] here as a final
// defense. An empty mask yields the whole file as one segment. Candidates
// shorter than minSegmentSeconds are dropped, so the summed segment duration
// may be strictly less than the file duration; that residual is expected and
// reported by the caller, not an error. Zero surviving segments is a valid
// degenerate result.
func Plan(duration float64, intervals []silence.Interval, minSegmentSeconds float64) []Segment {
	if duration <= 0 {
		return nil
	}

	mask := silence.Clamp(intervals, duration)

	var segments []Segment
	cursor := 0.0
	for _, window := range mask {
		if window.Start > cursor {
			segments = appendIfLongEnough(segments, cursor, window.Start, minSegmentSeconds)
		}
		if window.End > cursor {
			cursor = window.End
		}
	}
	if cursor < duration {
		segments = appendIfLongEnough(segments, cursor, duration, minSegmentSeconds)
	}

	for i := range segments {
		segments[i].Index = i + 1
	}
	return segments
}

func appendIfLongEnough(segments []Segment, start, end, minSegmentSeconds float64) []Segment {
	if end-start < minSegmentSeconds {
		return segments
	}
	return append(segments, Segment{Start: start, End: end})
}

// TotalDuration sums the lengths of the planned segments.
func TotalDuration(segments []Segment) float64 {
	var total float64
	for _, seg := range segments {
		total += seg.Duration()
	}
	return total
}

// IndexWidth returns the zero-padding width for track numbers: enough digits
// for the segment count, with a minimum of two.
func IndexWidth(count int) int {
	width := 2
	for limit := 100; count >= limit; limit *= 10 {
		width++
	}
	return width
}
