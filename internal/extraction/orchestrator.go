package extraction

import (
	"context"
	"log/slog"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"cleaver/internal/engine"
	"cleaver/internal/logging"
	"cleaver/internal/segment"
)

// Status classifies the outcome of one segment extraction.
type Status string

const (
	StatusSuccess      Status = "success"
	StatusFailed       Status = "failed"
	StatusNotAttempted Status = "not_attempted"
)

// Result records the outcome of extracting one segment.
type Result struct {
	Segment      segment.Segment
	OutputPath   string
	BytesWritten int64
	Status       Status
	Err          error
}

// Orchestrator runs segment extractions against the media engine.
type Orchestrator struct {
	engine      engine.Engine
	logger      *slog.Logger
	maxParallel int
}

// New constructs an orchestrator. maxParallel values below 1 are clamped to 1.
func New(eng engine.Engine, logger *slog.Logger, maxParallel int) *Orchestrator {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &Orchestrator{
		engine:      eng,
		logger:      logging.NewComponentLogger(logger, "extraction"),
		maxParallel: maxParallel,
	}
}

// Request describes one extraction batch.
type Request struct {
	SourcePath string
	OutputDir  string
	BaseName   string
	Extension  string
	Overwrite  bool
	Segments   []segment.Segment
}

// Run extracts every segment, tolerating per-segment failures. It returns a
// report sorted by segment index; it never returns an error because partial
// failure is an expected outcome surfaced in the report itself.
func (o *Orchestrator) Run(ctx context.Context, req Request) Report {
	results := make([]Result, len(req.Segments))
	width := segment.IndexWidth(len(req.Segments))
	logger := logging.WithContext(ctx, o.logger)

	g := new(errgroup.Group)
	g.SetLimit(o.maxParallel)

	for i, seg := range req.Segments {
		i, seg := i, seg
		g.Go(func() error {
			name := segment.OutputName(req.BaseName, seg.Index, width, req.Extension)
			dest := filepath.Join(req.OutputDir, name)

			// A canceled run does not roll back finished tracks; segments
			// that never started are reported distinctly from failures.
			if ctx.Err() != nil {
				results[i] = Result{Segment: seg, OutputPath: dest, Status: StatusNotAttempted}
				return nil
			}

			bytes, err := o.engine.Extract(ctx, engine.ExtractRequest{
				SourcePath: req.SourcePath,
				Start:      seg.Start,
				End:        seg.End,
				DestPath:   dest,
				Overwrite:  req.Overwrite,
			})
			if err != nil {
				if ctx.Err() != nil {
					results[i] = Result{Segment: seg, OutputPath: dest, Status: StatusNotAttempted, Err: err}
					return nil
				}
				logger.Error("track extraction failed",
					logging.Int(logging.FieldTrack, seg.Index),
					logging.Error(err),
				)
				results[i] = Result{Segment: seg, OutputPath: dest, Status: StatusFailed, Err: err}
				return nil
			}

			logger.Info("track extracted",
				logging.Int(logging.FieldTrack, seg.Index),
				logging.String("file", name),
				logging.Float64("seconds", seg.Duration()),
				logging.Int64("bytes", bytes),
			)
			results[i] = Result{Segment: seg, OutputPath: dest, BytesWritten: bytes, Status: StatusSuccess}
			return nil
		})
	}

	_ = g.Wait()

	sort.Slice(results, func(a, b int) bool {
		return results[a].Segment.Index < results[b].Segment.Index
	})
	return Report{Results: results}
}
