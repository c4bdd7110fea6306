package config

import (
	"errors"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateDetection(); err != nil {
		return err
	}
	if err := c.validatePlanner(); err != nil {
		return err
	}
	if err := c.validateExtraction(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		return errors.New("paths.output_dir must be set")
	}
	return nil
}

func (c *Config) validateDetection() error {
	if c.Detection.ThresholdDB >= 0 {
		return errors.New("detection.threshold_db must be negative (dBFS)")
	}
	if c.Detection.MinSilenceSeconds <= 0 {
		return errors.New("detection.min_silence_seconds must be positive")
	}
	return nil
}

func (c *Config) validatePlanner() error {
	if c.Planner.MinSegmentSeconds <= 0 {
		return errors.New("planner.min_segment_seconds must be positive")
	}
	return nil
}

func (c *Config) validateExtraction() error {
	if c.Extraction.MaxParallel < 1 {
		return errors.New("extraction.max_parallel must be >= 1")
	}
	return nil
}
