// Package testsupport provides an in-memory media engine so the pipeline can
// be exercised without invoking any native binary.
package testsupport

import (
	"context"
	"fmt"
	"os"
	"sync"

	"cleaver/internal/engine"
)

// FakeEngine implements engine.Engine entirely in memory.
type FakeEngine struct {
	Info        engine.MediaInfo
	ProbeErr    error
	DetectLines []string
	DetectErr   error

	// FailStarts maps a segment start time to the error Extract should
	// return for that cut.
	FailStarts map[float64]error
	// WriteFiles controls whether Extract creates the destination file.
	WriteFiles bool

	mu        sync.Mutex
	extracted []engine.ExtractRequest
}

var _ engine.Engine = (*FakeEngine)(nil)

func (f *FakeEngine) Probe(ctx context.Context, path string) (engine.MediaInfo, error) {
	if f.ProbeErr != nil {
		return engine.MediaInfo{}, f.ProbeErr
	}
	info := f.Info
	if info.Path == "" {
		info.Path = path
	}
	return info, nil
}

func (f *FakeEngine) DetectSilence(ctx context.Context, path string, thresholdDB, minSilenceSeconds float64) ([]string, error) {
	if f.DetectErr != nil {
		return nil, f.DetectErr
	}
	return f.DetectLines, nil
}

func (f *FakeEngine) Extract(ctx context.Context, req engine.ExtractRequest) (int64, error) {
	f.mu.Lock()
	f.extracted = append(f.extracted, req)
	f.mu.Unlock()

	if err, ok := f.FailStarts[req.Start]; ok {
		return 0, fmt.Errorf("%w: %w", engine.ErrExtract, err)
	}
	payload := fmt.Sprintf("fake audio %.3f-%.3f", req.Start, req.End)
	if f.WriteFiles {
		if err := os.WriteFile(req.DestPath, []byte(payload), 0o644); err != nil {
			return 0, fmt.Errorf("%w: %w", engine.ErrExtract, err)
		}
	}
	return int64(len(payload)), nil
}

// Extracted returns a copy of the extraction requests seen so far.
func (f *FakeEngine) Extracted() []engine.ExtractRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]engine.ExtractRequest(nil), f.extracted...)
}

// SilenceLines renders silencedetect-style diagnostics for interval pairs.
// Each pair is (start, end); an end of -1 leaves the interval unterminated.
func SilenceLines(pairs ...[2]float64) []string {
	var lines []string
	for _, pair := range pairs {
		lines = append(lines, fmt.Sprintf("[silencedetect @ 0xfake] silence_start: %g", pair[0]))
		if pair[1] >= 0 {
			lines = append(lines, fmt.Sprintf("[silencedetect @ 0xfake] silence_end: %g | silence_duration: %g", pair[1], pair[1]-pair[0]))
		}
	}
	return lines
}
