// Package runlog persists split-run history in SQLite.
//
// The ledger is write-only observability for the pipeline: each run records
// its probe summary, outcome, and per-track results so `cleaver runs` can
// answer "what happened last time" without re-running analysis. Nothing in
// the pipeline reads it back. Schema changes bump schemaVersion; users clear
// the database to adopt a new schema.
package runlog
