package engine

import (
	"context"
	"errors"
)

// Sentinel errors classifying engine failures. Probe and detection failures
// are fatal to a run; extraction failures are recovered per segment.
var (
	ErrProbe     = errors.New("probe failed")
	ErrDetection = errors.New("silence detection failed")
	ErrExtract   = errors.New("extraction failed")
)

// MediaInfo describes the probed audio file. Created once per run and
// read-only thereafter.
type MediaInfo struct {
	Path       string
	Duration   float64
	SampleRate int
	Channels   int
	Codec      string
	SizeBytes  int64
}

// ExtractRequest describes one copy-mode cut.
type ExtractRequest struct {
	SourcePath string
	// Start and End are absolute positions in seconds. Sub-second precision
	// is preserved on the engine command line.
	Start float64
	End   float64
	DestPath  string
	Overwrite bool
}

// Engine is the opaque external media capability.
type Engine interface {
	// Probe returns container and audio-stream metadata for path.
	Probe(ctx context.Context, path string) (MediaInfo, error)
	// DetectSilence runs one full-file silence-analysis pass and returns the
	// raw diagnostic lines emitted by the engine.
	DetectSilence(ctx context.Context, path string, thresholdDB, minSilenceSeconds float64) ([]string, error)
	// Extract writes the [Start, End) range of the source to DestPath without
	// re-encoding and reports the bytes written.
	Extract(ctx context.Context, req ExtractRequest) (int64, error)
}
