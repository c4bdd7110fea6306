// Package segment plans non-silent track segments from a silence mask.
//
// The planner treats the merged silence intervals as the complement of the
// track list: candidate spans are the gaps between silence windows plus the
// lead-in and trail-out, clipped to the file bounds. Candidates shorter than
// the minimum segment length are dropped entirely rather than merged into a
// neighbor, so residual blips between close silences never glue unrelated
// tracks together. Survivors are numbered from 1 in start order; ascending
// index always equals ascending start time.
package segment
