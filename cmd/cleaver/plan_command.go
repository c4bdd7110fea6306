package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cleaver/internal/segment"
	"cleaver/internal/splitter"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var thresholdDB float64
	var minSilence float64
	var minSegment float64

	cmd := &cobra.Command{
		Use:   "plan <file>",
		Short: "Show the tracks a split would produce without writing anything",
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

			req := splitter.NewRequest(cfg, inputPath)
			flags := cmd.Flags()
			if flags.Changed("threshold") {
				req.ThresholdDB = thresholdDB
			}
			if flags.Changed("min-silence") {
				req.MinSilenceSeconds = minSilence
			}
			if flags.Changed("min-segment") {
				req.MinSegmentSeconds = minSegment
			}

			logger, err := ctx.buildLogger()
			if err != nil {
				return err
			}
			eng, err := ctx.buildEngine()
			if err != nil {
				return err
			}

			summary, err := splitter.New(eng, logger).Analyze(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(summary.Segments) == 0 {
				fmt.Fprintf(out, "No tracks would be produced. Detected %s of silence in %s of audio.\n",
					formatClock(summary.SilenceSeconds()), formatClock(summary.Info.Duration))
				return nil
			}

			width := segment.IndexWidth(len(summary.Segments))
			discarded := summary.ResidualSeconds() - summary.SilenceSeconds()
			if discarded < 0 {
				discarded = 0
			}
			fmt.Fprintln(out, renderPlanTable(summary, width))
			fmt.Fprintf(out, "%d tracks covering %s of %s (%s silence, %s discarded)\n",
				len(summary.Segments),
				formatClock(summary.SegmentSeconds()),
				formatClock(summary.Info.Duration),
				formatClock(summary.SilenceSeconds()),
				formatClock(discarded),
			)
			return nil
		},
	}

	cmd.Flags().Float64Var(&thresholdDB, "threshold", 0, "Silence noise floor in dBFS (negative)")
	cmd.Flags().Float64Var(&minSilence, "min-silence", 0, "Minimum silence gap in seconds")
	cmd.Flags().Float64Var(&minSegment, "min-segment", 0, "Minimum track length in seconds")
	return cmd
}
