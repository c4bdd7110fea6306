// Package extraction dispatches copy-mode cuts for planned segments and
// aggregates the per-track outcomes.
//
// Segments are independent byte ranges, so extraction runs concurrently up
// to a bounded worker count. A failed segment is recorded and the run
// continues; a canceled run leaves already-written files in place and marks
// unstarted segments as not attempted. The final report is ordered by
// segment index regardless of completion order.
package extraction
