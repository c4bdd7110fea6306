package engine

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"cleaver/internal/media/ffprobe"
)

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string, onLine func(string)) error
}

// Option configures the ffmpeg engine.
type Option func(*FFmpeg)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(e *FFmpeg) {
		if exec != nil {
			e.exec = exec
		}
	}
}

// WithProber injects a custom probe function (primarily for tests).
func WithProber(probe func(ctx context.Context, binary, path string) (ffprobe.Result, error)) Option {
	return func(e *FFmpeg) {
		if probe != nil {
			e.probe = probe
		}
	}
}

// FFmpeg implements Engine by shelling out to ffmpeg and ffprobe.
type FFmpeg struct {
	ffmpegBinary  string
	ffprobeBinary string
	exec          Executor
	probe         func(ctx context.Context, binary, path string) (ffprobe.Result, error)
}

// NewFFmpeg constructs an ffmpeg-backed engine.
func NewFFmpeg(ffmpegBinary, ffprobeBinary string, opts ...Option) *FFmpeg {
	e := &FFmpeg{
		ffmpegBinary:  defaultBinary(ffmpegBinary, "ffmpeg"),
		ffprobeBinary: defaultBinary(ffprobeBinary, "ffprobe"),
		exec:          commandExecutor{},
		probe:         ffprobe.Inspect,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func defaultBinary(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}

// Probe returns container and audio-stream metadata for path. Unreadable
// files, zero durations, and malformed metadata all map to ErrProbe; probing
// is a single deterministic call with no retries.
func (e *FFmpeg) Probe(ctx context.Context, path string) (MediaInfo, error) {
	result, err := e.probe(ctx, e.ffprobeBinary, path)
	if err != nil {
		return MediaInfo{}, fmt.Errorf("%w: %w", ErrProbe, err)
	}

	duration := result.DurationSeconds()
	if math.IsNaN(duration) {
		return MediaInfo{}, fmt.Errorf("%w: malformed duration %q", ErrProbe, result.Format.Duration)
	}
	if duration <= 0 {
		return MediaInfo{}, fmt.Errorf("%w: zero duration reported for %s", ErrProbe, path)
	}

	stream, ok := result.FirstAudioStream()
	if !ok {
		return MediaInfo{}, fmt.Errorf("%w: no audio stream in %s", ErrProbe, path)
	}

	return MediaInfo{
		Path:       path,
		Duration:   duration,
		SampleRate: stream.SampleRateHz(),
		Channels:   stream.Channels,
		Codec:      stream.CodecName,
		SizeBytes:  result.SizeBytes(),
	}, nil
}

// DetectSilence runs ffmpeg's silencedetect filter over the whole file with
// a null muxer, collecting the diagnostic lines it emits. The decoded audio
// is discarded by the engine; only text crosses the process boundary.
func (e *FFmpeg) DetectSilence(ctx context.Context, path string, thresholdDB, minSilenceSeconds float64) ([]string, error) {
	filter := fmt.Sprintf("silencedetect=noise=%sdB:d=%s",
		formatSeconds(thresholdDB), formatSeconds(minSilenceSeconds))
	args := []string{
		"-nostdin", "-hide_banner",
		"-i", path,
		"-af", filter,
		"-f", "null", "-",
	}

	var lines []string
	if err := e.exec.Run(ctx, e.ffmpegBinary, args, func(line string) {
		lines = append(lines, line)
	}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDetection, err)
	}
	return lines, nil
}

// Extract performs one copy-mode cut. The output container matches the
// source; timestamps are passed with microsecond precision.
func (e *FFmpeg) Extract(ctx context.Context, req ExtractRequest) (int64, error) {
	if req.End <= req.Start {
		return 0, fmt.Errorf("%w: invalid range %s-%s", ErrExtract, formatSeconds(req.Start), formatSeconds(req.End))
	}
	overwrite := "-n"
	if req.Overwrite {
		overwrite = "-y"
	}
	args := []string{
		"-nostdin", "-hide_banner", "-loglevel", "error", overwrite,
		"-ss", formatSeconds(req.Start),
		"-i", req.SourcePath,
		"-t", formatSeconds(req.End - req.Start),
		"-c", "copy",
		"-avoid_negative_ts", "make_zero",
		req.DestPath,
	}

	var diagnostics []string
	if err := e.exec.Run(ctx, e.ffmpegBinary, args, func(line string) {
		diagnostics = append(diagnostics, line)
	}); err != nil {
		detail := strings.TrimSpace(strings.Join(diagnostics, "; "))
		if detail != "" {
			return 0, fmt.Errorf("%w: %w: %s", ErrExtract, err, detail)
		}
		return 0, fmt.Errorf("%w: %w", ErrExtract, err)
	}

	info, err := os.Stat(req.DestPath)
	if err != nil {
		return 0, fmt.Errorf("%w: engine produced no output file: %w", ErrExtract, err)
	}
	if info.Size() == 0 {
		_ = os.Remove(req.DestPath)
		return 0, fmt.Errorf("%w: engine produced empty output file %s", ErrExtract, req.DestPath)
	}
	return info.Size(), nil
}

// formatSeconds renders a float with enough precision to avoid audible drift
// while keeping command lines readable.
func formatSeconds(value float64) string {
	return strconv.FormatFloat(value, 'f', 6, 64)
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string, onLine func(string)) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start command: %w", err)
	}

	var wg sync.WaitGroup
	var scanErr error
	var once sync.Once

	scan := func(r io.Reader) {
		defer wg.Done()
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			if onLine != nil {
				onLine(scanner.Text())
			}
		}
		if err := scanner.Err(); err != nil {
			once.Do(func() { scanErr = err })
		}
	}

	wg.Add(2)
	go scan(stdout)
	go scan(stderr)

	wg.Wait()
	if scanErr != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return fmt.Errorf("scan output: %w", scanErr)
	}

	if err := cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s exited with status %d", binary, exitErr.ExitCode())
		}
		return fmt.Errorf("wait command: %w", err)
	}
	return nil
}
