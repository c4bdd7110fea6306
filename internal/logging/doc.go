// Package logging configures slog for cleaver and centralizes structured
// attribute helpers.
//
// Two output formats are supported: a compact console format for interactive
// use and JSON for machine consumption. Components obtain loggers via
// NewComponentLogger so every record carries a stable "component" field, and
// run identifiers travel on the context so pipeline stages log consistently.
package logging
