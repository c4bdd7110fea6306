// Package silence turns the engine's raw silence-analysis diagnostics into a
// sorted, merged set of silence intervals.
//
// The engine pairs "silence_start" and "silence_end" lines by order of
// appearance rather than by explicit id. That sequential pairing is fragile
// but load-bearing; the parser preserves it and guards each pair with a
// start < end sanity check. Malformed lines are skipped with a warning so one
// bad line never aborts the parse.
package silence
