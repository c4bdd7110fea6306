package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newProbeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "probe <file>",
		Short: "Show audio metadata for a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath, err := resolveInputFile(args[0])
			if err != nil {
				return err
			}
			eng, err := ctx.buildEngine()
			if err != nil {
				return err
			}

			info, err := eng.Probe(cmd.Context(), inputPath)
			if err != nil {
				return err
			}

			rows := [][]string{
				{"Path", info.Path},
				{"Duration", formatClock(info.Duration)},
				{"Codec", info.Codec},
				{"Sample rate", fmt.Sprintf("%d Hz", info.SampleRate)},
				{"Channels", fmt.Sprintf("%d", info.Channels)},
				{"Size", humanize.IBytes(uint64(info.SizeBytes))},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Field", "Value"}, rows,
				[]columnAlignment{alignLeft, alignLeft},
			))
			return nil
		},
	}
}
