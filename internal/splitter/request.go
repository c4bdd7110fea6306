package splitter

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"cleaver/internal/config"
)

// Request carries the validated inputs for one split run.
type Request struct {
	InputPath         string  `validate:"required"`
	OutputDir         string  `validate:"required"`
	ThresholdDB       float64 `validate:"lt=0"`
	MinSilenceSeconds float64 `validate:"gt=0"`
	MinSegmentSeconds float64 `validate:"gt=0"`
	MaxParallel       int     `validate:"gte=1"`
	Overwrite         bool
}

// NewRequest builds a Request for the input path from configuration values.
func NewRequest(cfg *config.Config, inputPath string) Request {
	return Request{
		InputPath:         inputPath,
		OutputDir:         cfg.Paths.OutputDir,
		ThresholdDB:       cfg.Detection.ThresholdDB,
		MinSilenceSeconds: cfg.Detection.MinSilenceSeconds,
		MinSegmentSeconds: cfg.Planner.MinSegmentSeconds,
		MaxParallel:       cfg.Extraction.MaxParallel,
		Overwrite:         cfg.Extraction.OverwriteExisting,
	}
}

var requestValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the request before any engine work begins.
func (r Request) Validate() error {
	if err := requestValidator.Struct(r); err != nil {
		return fmt.Errorf("invalid split request: %w", err)
	}
	return nil
}
