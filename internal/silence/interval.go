package silence

import "sort"

// Interval is a time range classified as below the loudness threshold.
type Interval struct {
	Start float64
	End   float64
}

// Duration returns the interval length in seconds.
func (i Interval) Duration() float64 {
	return i.End - i.Start
}

// Merge sorts intervals by start and unions overlapping or adjacent entries.
// The result never contains overlap, so downstream planning can treat it as
// a clean complement mask.
func Merge(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].Start == sorted[b].Start {
			return sorted[a].End < sorted[b].End
		}
		return sorted[a].Start < sorted[b].Start
	})

	merged := make([]Interval, 0, len(sorted))
	current := sorted[0]
	for _, next := range sorted[1:] {
		if next.Start <= current.End {
			if next.End > current.End {
				current.End = next.End
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}

// Clamp restricts intervals to [0, duration], dropping any that fall
// entirely outside the file.
func Clamp(intervals []Interval, duration float64) []Interval {
	clamped := make([]Interval, 0, len(intervals))
	for _, interval := range intervals {
		if interval.Start < 0 {
			interval.Start = 0
		}
		if interval.End > duration {
			interval.End = duration
		}
		if interval.End <= interval.Start {
			continue
		}
		clamped = append(clamped, interval)
	}
	return clamped
}

// TotalDuration sums the lengths of the provided intervals.
func TotalDuration(intervals []Interval) float64 {
	var total float64
	for _, interval := range intervals {
		total += interval.Duration()
	}
	return total
}
