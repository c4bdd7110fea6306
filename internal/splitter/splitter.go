package splitter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"cleaver/internal/engine"
	"cleaver/internal/extraction"
	"cleaver/internal/fileutil"
	"cleaver/internal/logging"
	"cleaver/internal/runlog"
	"cleaver/internal/segment"
	"cleaver/internal/silence"
)

// Outcome classifies a completed run.
type Outcome string

const (
	// OutcomeSuccess means every planned track was written.
	OutcomeSuccess Outcome = "success"
	// OutcomePartial means at least one track failed or was not attempted.
	OutcomePartial Outcome = "partial"
	// OutcomeDegenerate means analysis succeeded but no track survived the
	// minimum-length filter, so nothing was written.
	OutcomeDegenerate Outcome = "degenerate"
)

// minAnalyzableSeconds is the duration below which an empty detection pass
// is plausible rather than suspicious.
const minAnalyzableSeconds = 1.0

// lockFileName guards an output directory against concurrent runs.
const lockFileName = ".cleaver.lock"

// Summary collects everything a run learned and did, for rendering and for
// the history ledger.
type Summary struct {
	RunID     string
	Info      engine.MediaInfo
	Intervals []silence.Interval
	Segments  []segment.Segment
	Report    extraction.Report
	Outcome   Outcome
	BaseName  string
	Extension string
	OutputDir string
}

// SilenceSeconds returns the total detected silence duration.
func (s *Summary) SilenceSeconds() float64 {
	return silence.TotalDuration(s.Intervals)
}

// SegmentSeconds returns the total planned track duration.
func (s *Summary) SegmentSeconds() float64 {
	return segment.TotalDuration(s.Segments)
}

// ResidualSeconds returns the source duration not covered by any planned
// track. It includes both silence and discarded short candidates.
func (s *Summary) ResidualSeconds() float64 {
	residual := s.Info.Duration - s.SegmentSeconds()
	if residual < 0 {
		return 0
	}
	return residual
}

// Splitter runs the split pipeline against a media engine.
type Splitter struct {
	engine  engine.Engine
	base    *slog.Logger
	logger  *slog.Logger
	history *runlog.Store
}

// Option customizes a Splitter.
type Option func(*Splitter)

// WithHistory attaches a run-history store. Recording failures are logged,
// never fatal.
func WithHistory(store *runlog.Store) Option {
	return func(s *Splitter) {
		s.history = store
	}
}

// New constructs a Splitter around the given engine.
func New(eng engine.Engine, logger *slog.Logger, opts ...Option) *Splitter {
	s := &Splitter{
		engine: eng,
		base:   logger,
		logger: logging.NewComponentLogger(logger, "splitter"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze runs the read-only stages: probe, silence detection, interval
// parsing, and segment planning. No files are written.
func (s *Splitter) Analyze(ctx context.Context, req Request) (*Summary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	summary := &Summary{
		RunID:     newRunID(),
		BaseName:  fileutil.SourceBaseName(req.InputPath),
		Extension: fileutil.SourceExtension(req.InputPath),
		OutputDir: req.OutputDir,
	}
	ctx = logging.WithRunID(ctx, summary.RunID)
	logger := logging.WithContext(ctx, s.logger).With(
		logging.String(logging.FieldSource, req.InputPath),
	)

	info, err := s.engine.Probe(ctx, req.InputPath)
	if err != nil {
		return nil, err
	}
	summary.Info = info
	logger.Info("probed source",
		logging.Float64("duration_seconds", info.Duration),
		logging.String("codec", info.Codec),
		logging.Int("sample_rate_hz", info.SampleRate),
	)

	lines, err := s.engine.DetectSilence(ctx, req.InputPath, req.ThresholdDB, req.MinSilenceSeconds)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 && info.Duration >= minAnalyzableSeconds {
		return nil, fmt.Errorf("%w: no diagnostic output for %.1fs of audio",
			engine.ErrDetection, info.Duration)
	}

	summary.Intervals = silence.Parse(lines, info.Duration, logger)
	summary.Segments = segment.Plan(info.Duration, summary.Intervals, req.MinSegmentSeconds)
	logger.Info("planned tracks",
		logging.Int("silence_intervals", len(summary.Intervals)),
		logging.Int("tracks", len(summary.Segments)),
		logging.Float64("silence_seconds", summary.SilenceSeconds()),
	)

	if len(summary.Segments) == 0 {
		summary.Outcome = OutcomeDegenerate
		logger.Warn("no track met the minimum length, nothing to extract",
			logging.Float64("min_segment_seconds", req.MinSegmentSeconds),
		)
	}
	return summary, nil
}

// Run performs a full split: analysis followed by extraction of every
// planned track into the output directory. A degenerate plan ends the run
// without error and without touching the output directory.
func (s *Splitter) Run(ctx context.Context, req Request) (*Summary, error) {
	summary, err := s.Analyze(ctx, req)
	if err != nil {
		return nil, err
	}
	ctx = logging.WithRunID(ctx, summary.RunID)
	logger := logging.WithContext(ctx, s.logger)

	if summary.Outcome == OutcomeDegenerate {
		s.record(ctx, req, summary)
		return summary, nil
	}

	if err := os.MkdirAll(req.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	lock := flock.New(filepath.Join(req.OutputDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire output directory lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("output directory %s is in use by another run", req.OutputDir)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	orchestrator := extraction.New(s.engine, s.base, req.MaxParallel)
	summary.Report = orchestrator.Run(ctx, extraction.Request{
		SourcePath: req.InputPath,
		OutputDir:  req.OutputDir,
		BaseName:   summary.BaseName,
		Extension:  summary.Extension,
		Overwrite:  req.Overwrite,
		Segments:   summary.Segments,
	})

	if summary.Report.Complete() {
		summary.Outcome = OutcomeSuccess
		logger.Info("split complete",
			logging.Int("tracks", summary.Report.Succeeded()),
			logging.Int64("bytes", summary.Report.BytesWritten()),
		)
	} else {
		summary.Outcome = OutcomePartial
		logger.Warn("split finished with failures",
			logging.Int("succeeded", summary.Report.Succeeded()),
			logging.Int("failed", summary.Report.Failed()),
			logging.Int("not_attempted", summary.Report.NotAttempted()),
		)
	}

	s.record(ctx, req, summary)
	return summary, nil
}

func (s *Splitter) record(ctx context.Context, req Request, summary *Summary) {
	if s.history == nil {
		return
	}

	run := runlog.Run{
		ID:              summary.RunID,
		SourcePath:      req.InputPath,
		OutputDir:       req.OutputDir,
		DurationSeconds: summary.Info.Duration,
		SegmentSeconds:  summary.SegmentSeconds(),
		SegmentCount:    len(summary.Segments),
		Succeeded:       summary.Report.Succeeded(),
		Failed:          summary.Report.Failed(),
		NotAttempted:    summary.Report.NotAttempted(),
		Outcome:         string(summary.Outcome),
	}
	tracks := make([]runlog.Track, 0, len(summary.Report.Results))
	for _, result := range summary.Report.Results {
		track := runlog.Track{
			RunID:        summary.RunID,
			Index:        result.Segment.Index,
			StartSeconds: result.Segment.Start,
			EndSeconds:   result.Segment.End,
			Status:       string(result.Status),
			OutputPath:   result.OutputPath,
			BytesWritten: result.BytesWritten,
		}
		if result.Err != nil {
			track.Error = result.Err.Error()
		}
		tracks = append(tracks, track)
	}

	if err := s.history.RecordRun(ctx, run, tracks); err != nil {
		logging.WithContext(ctx, s.logger).Warn("failed to record run history",
			logging.Error(err),
		)
	}
}

func newRunID() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}
