package main

import (
	"fmt"
	"io"
	"math"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"cleaver/internal/extraction"
	"cleaver/internal/segment"
	"cleaver/internal/splitter"
)

func printSummary(out io.Writer, summary *splitter.Summary) {
	if summary.Outcome == splitter.OutcomeDegenerate {
		fmt.Fprintf(out, "No tracks met the minimum length; nothing was extracted.\n")
		fmt.Fprintf(out, "Detected %s of silence across %s of audio. Try lowering min_segment_seconds or the silence threshold.\n",
			formatClock(summary.SilenceSeconds()), formatClock(summary.Info.Duration))
		return
	}

	fmt.Fprintln(out, renderTrackTable(summary.Report))

	fmt.Fprintf(out, "Run %s: %d of %d tracks extracted to %s (%s)\n",
		summary.RunID,
		summary.Report.Succeeded(), len(summary.Segments),
		summary.OutputDir,
		humanize.IBytes(uint64(summary.Report.BytesWritten())),
	)
	if summary.Outcome == splitter.OutcomePartial {
		fmt.Fprintf(out, "Failed tracks: %v\n", summary.Report.FailedIndices())
	}
}

func renderTrackTable(report extraction.Report) string {
	headers := []string{"#", "Start", "End", "Length", "Status", "Size"}
	aligns := []columnAlignment{alignRight, alignRight, alignRight, alignRight, alignLeft, alignRight}

	rows := make([][]string, 0, len(report.Results))
	for _, result := range report.Results {
		size := ""
		if result.Status == extraction.StatusSuccess {
			size = humanize.IBytes(uint64(result.BytesWritten))
		}
		status := string(result.Status)
		if result.Status == extraction.StatusFailed && result.Err != nil {
			status = fmt.Sprintf("failed: %v", result.Err)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", result.Segment.Index),
			formatClock(result.Segment.Start),
			formatClock(result.Segment.End),
			formatClock(result.Segment.Duration()),
			status,
			size,
		})
	}
	return renderTable(headers, rows, aligns)
}

func renderPlanTable(summary *splitter.Summary, width int) string {
	headers := []string{"#", "Start", "End", "Length", "Output"}
	aligns := []columnAlignment{alignRight, alignRight, alignRight, alignRight, alignLeft}

	rows := make([][]string, 0, len(summary.Segments))
	for _, seg := range summary.Segments {
		name := segment.OutputName(summary.BaseName, seg.Index, width, summary.Extension)
		rows = append(rows, []string{
			fmt.Sprintf("%d", seg.Index),
			formatClock(seg.Start),
			formatClock(seg.End),
			formatClock(seg.Duration()),
			filepath.Join(summary.OutputDir, name),
		})
	}
	return renderTable(headers, rows, aligns)
}

// formatClock renders seconds as m:ss.d, adding an hour field for long
// sources.
func formatClock(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	total := int(seconds)
	tenths := int(math.Round((seconds - float64(total)) * 10))
	if tenths >= 10 {
		total++
		tenths = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d.%d", hours, minutes, secs, tenths)
	}
	return fmt.Sprintf("%d:%02d.%d", minutes, secs, tenths)
}
