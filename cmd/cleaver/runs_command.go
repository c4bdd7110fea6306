package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cleaver/internal/runlog"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent split runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openHistory()
			if err != nil {
				return fmt.Errorf("open run history: %w", err)
			}
			defer store.Close()

			runs, err := store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet.")
				return nil
			}

			headers := []string{"Run", "When", "Source", "Tracks", "Failed", "Outcome"}
			aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft}
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.ID,
					run.CreatedAt.Local().Format(time.DateTime),
					run.SourcePath,
					fmt.Sprintf("%d", run.SegmentCount),
					fmt.Sprintf("%d", run.Failed+run.NotAttempted),
					run.Outcome,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list")
	cmd.AddCommand(newRunsShowCommand(ctx))
	return cmd
}

func newRunsShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show per-track results for a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openHistory()
			if err != nil {
				return fmt.Errorf("open run history: %w", err)
			}
			defer store.Close()

			tracks, err := store.Tracks(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(tracks) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No tracks recorded for run %s.\n", args[0])
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderRunTrackTable(tracks))
			return nil
		},
	}
}

func renderRunTrackTable(tracks []runlog.Track) string {
	headers := []string{"#", "Start", "End", "Status", "Output", "Error"}
	aligns := []columnAlignment{alignRight, alignRight, alignRight, alignLeft, alignLeft, alignLeft}
	rows := make([][]string, 0, len(tracks))
	for _, track := range tracks {
		rows = append(rows, []string{
			fmt.Sprintf("%d", track.Index),
			formatClock(track.StartSeconds),
			formatClock(track.EndSeconds),
			track.Status,
			track.OutputPath,
			track.Error,
		})
	}
	return renderTable(headers, rows, aligns)
}
