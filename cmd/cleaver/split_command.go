package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"cleaver/internal/deps"
	"cleaver/internal/splitter"
)

func newSplitCommand(ctx *commandContext) *cobra.Command {
	var outputDir string
	var thresholdDB float64
	var minSilence float64
	var minSegment float64
	var parallel int
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "split <file>",
		Short: "Split an audio file into tracks at silence boundaries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			inputPath, err := resolveInputFile(args[0])
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Requirements(cfg))
			if missing := deps.MissingRequired(statuses); len(missing) > 0 {
				return fmt.Errorf("missing required binaries: %s (run `cleaver status` for details)",
					strings.Join(missing, ", "))
			}

			req := splitter.NewRequest(cfg, inputPath)
			flags := cmd.Flags()
			if flags.Changed("output-dir") {
				expanded, err := filepath.Abs(outputDir)
				if err != nil {
					return fmt.Errorf("resolve output directory: %w", err)
				}
				req.OutputDir = expanded
			}
			if flags.Changed("threshold") {
				req.ThresholdDB = thresholdDB
			}
			if flags.Changed("min-silence") {
				req.MinSilenceSeconds = minSilence
			}
			if flags.Changed("min-segment") {
				req.MinSegmentSeconds = minSegment
			}
			if flags.Changed("parallel") {
				req.MaxParallel = parallel
			}
			if flags.Changed("overwrite") {
				req.Overwrite = overwrite
			}

			logger, err := ctx.buildLogger()
			if err != nil {
				return err
			}
			eng, err := ctx.buildEngine()
			if err != nil {
				return err
			}

			opts := []splitter.Option{}
			history, err := ctx.openHistory()
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: run history unavailable: %v\n", err)
			} else {
				defer history.Close()
				opts = append(opts, splitter.WithHistory(history))
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			summary, err := splitter.New(eng, logger, opts...).Run(runCtx, req)
			if err != nil {
				return err
			}

			printSummary(cmd.OutOrStdout(), summary)
			if summary.Outcome == splitter.OutcomePartial {
				return fmt.Errorf("%d of %d tracks failed",
					summary.Report.Failed()+summary.Report.NotAttempted(), len(summary.Segments))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for extracted tracks")
	cmd.Flags().Float64Var(&thresholdDB, "threshold", 0, "Silence noise floor in dBFS (negative)")
	cmd.Flags().Float64Var(&minSilence, "min-silence", 0, "Minimum silence gap in seconds")
	cmd.Flags().Float64Var(&minSegment, "min-segment", 0, "Minimum track length in seconds")
	cmd.Flags().IntVar(&parallel, "parallel", 0, "Maximum concurrent extractions")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing output files")
	return cmd
}

func resolveInputFile(arg string) (string, error) {
	absPath, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("file does not exist: %s", absPath)
		}
		return "", fmt.Errorf("inspect file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", absPath)
	}
	return absPath, nil
}
