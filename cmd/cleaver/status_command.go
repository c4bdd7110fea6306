package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cleaver/internal/deps"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check configuration and external tool availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			for _, line := range renderSectionHeader("Configuration", colorize) {
				fmt.Fprintln(out, line)
			}
			configSource := ctx.configPath
			if !ctx.configExists {
				configSource = "built-in defaults"
			}
			fmt.Fprintln(out, renderStatusLine("Config", statusInfo, configSource, colorize))
			fmt.Fprintln(out, renderStatusLine("Output dir", statusInfo, cfg.Paths.OutputDir, colorize))
			fmt.Fprintln(out, renderStatusLine("Log dir", statusInfo, cfg.Paths.LogDir, colorize))
			fmt.Fprintln(out, renderStatusLine("Threshold", statusInfo,
				fmt.Sprintf("%.1f dBFS", cfg.Detection.ThresholdDB), colorize))
			fmt.Fprintln(out, renderStatusLine("Min silence", statusInfo,
				fmt.Sprintf("%.1fs", cfg.Detection.MinSilenceSeconds), colorize))
			fmt.Fprintln(out, renderStatusLine("Min track", statusInfo,
				fmt.Sprintf("%.1fs", cfg.Planner.MinSegmentSeconds), colorize))
			fmt.Fprintln(out)

			for _, line := range renderSectionHeader("External Tools", colorize) {
				fmt.Fprintln(out, line)
			}
			statuses := deps.CheckBinaries(deps.Requirements(cfg))
			for _, status := range statuses {
				kind := statusOK
				message := status.Command
				if !status.Available {
					kind = statusError
					if status.Optional {
						kind = statusWarn
					}
					message = status.Detail
				}
				fmt.Fprintln(out, renderStatusLine(status.Name, kind, message, colorize))
			}

			if missing := deps.MissingRequired(statuses); len(missing) > 0 {
				fmt.Fprintln(out)
				return fmt.Errorf("missing required binaries: %s", strings.Join(missing, ", "))
			}
			return nil
		},
	}
}
