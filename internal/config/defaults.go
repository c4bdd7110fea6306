package config

const (
	defaultOutputDir         = "~/splits"
	defaultLogDir            = "~/.local/share/cleaver/logs"
	defaultThresholdDB       = -48.0
	defaultMinSilenceSeconds = 1.5
	defaultMinSegmentSeconds = 5.0
	defaultMaxParallel       = 2
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Detection: Detection{
			ThresholdDB:       defaultThresholdDB,
			MinSilenceSeconds: defaultMinSilenceSeconds,
		},
		Planner: Planner{
			MinSegmentSeconds: defaultMinSegmentSeconds,
		},
		Extraction: Extraction{
			MaxParallel: defaultMaxParallel,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
