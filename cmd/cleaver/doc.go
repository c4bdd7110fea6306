// Command cleaver splits long audio files into tracks at silence boundaries.
//
// The CLI is a thin layer over internal/splitter: it resolves configuration,
// applies per-invocation flag overrides, and renders summaries and history
// tables. All media work happens through the engine abstraction.
package main
