package extraction

// Report aggregates per-segment extraction results, ordered by track index.
type Report struct {
	Results []Result
}

// Succeeded returns the number of successfully extracted tracks.
func (r Report) Succeeded() int {
	return r.countStatus(StatusSuccess)
}

// Failed returns the number of tracks whose extraction failed.
func (r Report) Failed() int {
	return r.countStatus(StatusFailed)
}

// NotAttempted returns the number of tracks skipped due to cancellation.
func (r Report) NotAttempted() int {
	return r.countStatus(StatusNotAttempted)
}

// FailedIndices lists the track indices whose extraction failed, ascending.
func (r Report) FailedIndices() []int {
	var indices []int
	for _, result := range r.Results {
		if result.Status == StatusFailed {
			indices = append(indices, result.Segment.Index)
		}
	}
	return indices
}

// BytesWritten sums the bytes written across successful tracks.
func (r Report) BytesWritten() int64 {
	var total int64
	for _, result := range r.Results {
		total += result.BytesWritten
	}
	return total
}

// Complete reports whether every track extracted successfully.
func (r Report) Complete() bool {
	return r.Failed() == 0 && r.NotAttempted() == 0
}

func (r Report) countStatus(status Status) int {
	count := 0
	for _, result := range r.Results {
		if result.Status == status {
			count++
		}
	}
	return count
}
