package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/sethvargo/go-envconfig"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	OutputDir string `toml:"output_dir" env:"CLEAVER_OUTPUT_DIR"`
	LogDir    string `toml:"log_dir" env:"CLEAVER_LOG_DIR"`
}

// Detection contains silence-analysis settings passed to the media engine.
type Detection struct {
	// ThresholdDB is the noise floor in dBFS. More negative admits softer
	// sound as non-silent.
	ThresholdDB float64 `toml:"threshold_db" env:"CLEAVER_THRESHOLD_DB"`
	// MinSilenceSeconds is the minimum gap length counted as silence.
	MinSilenceSeconds float64 `toml:"min_silence_seconds" env:"CLEAVER_MIN_SILENCE_SECONDS"`
}

// Planner contains segment planning settings.
type Planner struct {
	// MinSegmentSeconds drops candidate spans shorter than this outright.
	MinSegmentSeconds float64 `toml:"min_segment_seconds" env:"CLEAVER_MIN_SEGMENT_SECONDS"`
}

// Extraction contains settings for the copy-mode extraction phase.
type Extraction struct {
	MaxParallel       int  `toml:"max_parallel" env:"CLEAVER_MAX_PARALLEL"`
	OverwriteExisting bool `toml:"overwrite_existing" env:"CLEAVER_OVERWRITE_EXISTING"`
}

// Tools names the external engine binaries.
type Tools struct {
	FFmpeg  string `toml:"ffmpeg" env:"CLEAVER_FFMPEG"`
	FFprobe string `toml:"ffprobe" env:"CLEAVER_FFPROBE"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format" env:"CLEAVER_LOG_FORMAT"`
	Level  string `toml:"level" env:"CLEAVER_LOG_LEVEL"`
}

// Config encapsulates all configuration values for cleaver.
type Config struct {
	Paths      Paths      `toml:"paths"`
	Detection  Detection  `toml:"detection"`
	Planner    Planner    `toml:"planner"`
	Extraction Extraction `toml:"extraction"`
	Tools      Tools      `toml:"tools"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/cleaver/config.toml")
}

// Load locates, parses, and validates a configuration file. Environment
// variables overlay file values. The returned config has all path fields
// expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, "", false, fmt.Errorf("apply environment overrides: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("cleaver.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	for _, field := range []*string{&c.Paths.OutputDir, &c.Paths.LogDir} {
		if strings.TrimSpace(*field) == "" {
			continue
		}
		expanded, err := expandPath(*field)
		if err != nil {
			return err
		}
		*field = expanded
	}
	c.Tools.FFmpeg = strings.TrimSpace(c.Tools.FFmpeg)
	c.Tools.FFprobe = strings.TrimSpace(c.Tools.FFprobe)
	if c.Tools.FFmpeg == "" {
		c.Tools.FFmpeg = "ffmpeg"
	}
	if c.Tools.FFprobe == "" {
		c.Tools.FFprobe = "ffprobe"
	}
	return nil
}

// EnsureDirectories creates the directories cleaver writes into.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.OutputDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
