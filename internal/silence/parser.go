package silence

import (
	"log/slog"
	"regexp"
	"strconv"

	"cleaver/internal/logging"
)

var (
	silenceStartPattern = regexp.MustCompile(`silence_start:\s*(-?[0-9.]+)`)
	silenceEndPattern   = regexp.MustCompile(`silence_end:\s*(-?[0-9.]+)`)
)

// Parse extracts silence intervals from the engine's raw diagnostic lines.
//
// Each silence_start line opens a pending interval; the next silence_end line
// closes it. Any duration the engine reports alongside silence_end is ignored
// and recomputed from the pair. A start with no matching end means silence
// runs to EOF, so the interval closes at the probed duration. The returned
// intervals are clamped to [0, duration], sorted by start, and union-merged.
func Parse(lines []string, duration float64, logger *slog.Logger) []Interval {
	if logger == nil {
		logger = logging.NewNop()
	}

	var intervals []Interval
	var pending *float64

	for _, line := range lines {
		if match := silenceStartPattern.FindStringSubmatch(line); match != nil {
			start, err := strconv.ParseFloat(match[1], 64)
			if err != nil {
				logger.Warn("skipping malformed silence_start line",
					logging.String("line", line),
					logging.Error(err),
				)
				continue
			}
			if pending != nil {
				logger.Warn("silence_start before previous interval closed; keeping earlier start",
					logging.Float64("pending_start", *pending),
					logging.Float64("new_start", start),
				)
				continue
			}
			pending = &start
			continue
		}

		if match := silenceEndPattern.FindStringSubmatch(line); match != nil {
			end, err := strconv.ParseFloat(match[1], 64)
			if err != nil {
				logger.Warn("skipping malformed silence_end line",
					logging.String("line", line),
					logging.Error(err),
				)
				continue
			}
			if pending == nil {
				logger.Warn("silence_end with no open interval; skipping",
					logging.Float64("end", end),
				)
				continue
			}
			if end <= *pending {
				logger.Warn("rejecting inverted silence interval",
					logging.Float64("start", *pending),
					logging.Float64("end", end),
				)
				pending = nil
				continue
			}
			intervals = append(intervals, Interval{Start: *pending, End: end})
			pending = nil
		}
	}

	// Silence running to EOF: close the open interval at the file duration.
	if pending != nil {
		if duration > *pending {
			intervals = append(intervals, Interval{Start: *pending, End: duration})
		} else {
			logger.Warn("discarding silence_start past end of file",
				logging.Float64("start", *pending),
				logging.Float64("duration", duration),
			)
		}
	}

	return Merge(Clamp(intervals, duration))
}
