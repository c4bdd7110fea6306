package extraction_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cleaver/internal/extraction"
	"cleaver/internal/logging"
	"cleaver/internal/segment"
	"cleaver/internal/testsupport"
)

func planSegments(n int) []segment.Segment {
	segments := make([]segment.Segment, 0, n)
	start := 0.0
	for i := 1; i <= n; i++ {
		segments = append(segments, segment.Segment{Index: i, Start: start, End: start + 10})
		start += 12
	}
	return segments
}

func TestRunExtractsAllSegments(t *testing.T) {
	outDir := t.TempDir()
	fake := &testsupport.FakeEngine{WriteFiles: true}
	orch := extraction.New(fake, logging.NewNop(), 2)

	report := orch.Run(context.Background(), extraction.Request{
		SourcePath: "/music/album.mp3",
		OutputDir:  outDir,
		BaseName:   "album",
		Extension:  "mp3",
		Segments:   planSegments(3),
	})

	if report.Succeeded() != 3 || report.Failed() != 0 {
		t.Fatalf("unexpected counts: %d ok, %d failed", report.Succeeded(), report.Failed())
	}
	if !report.Complete() {
		t.Fatal("report should be complete")
	}
	for i, result := range report.Results {
		if result.Segment.Index != i+1 {
			t.Fatalf("results not ordered by index: %+v", report.Results)
		}
		want := filepath.Join(outDir, segment.OutputName("album", i+1, 2, "mp3"))
		if result.OutputPath != want {
			t.Fatalf("unexpected output path %q, want %q", result.OutputPath, want)
		}
		if _, err := os.Stat(result.OutputPath); err != nil {
			t.Fatalf("expected output file: %v", err)
		}
	}
}

func TestRunToleratesPartialFailure(t *testing.T) {
	segments := planSegments(5)
	fake := &testsupport.FakeEngine{
		WriteFiles: true,
		FailStarts: map[float64]error{segments[2].Start: errors.New("demuxer choked")},
	}
	orch := extraction.New(fake, logging.NewNop(), 2)

	report := orch.Run(context.Background(), extraction.Request{
		SourcePath: "/music/album.mp3",
		OutputDir:  t.TempDir(),
		BaseName:   "album",
		Extension:  "mp3",
		Segments:   segments,
	})

	if report.Succeeded() != 4 {
		t.Fatalf("expected 4 successes, got %d", report.Succeeded())
	}
	if report.Failed() != 1 {
		t.Fatalf("expected 1 failure, got %d", report.Failed())
	}
	failed := report.FailedIndices()
	if len(failed) != 1 || failed[0] != 3 {
		t.Fatalf("expected failure at index 3, got %v", failed)
	}
	if report.Complete() {
		t.Fatal("report should not be complete")
	}
}

func TestRunMarksRemainingNotAttemptedOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fake := &testsupport.FakeEngine{WriteFiles: true}
	orch := extraction.New(fake, logging.NewNop(), 1)

	report := orch.Run(ctx, extraction.Request{
		SourcePath: "/music/album.mp3",
		OutputDir:  t.TempDir(),
		BaseName:   "album",
		Extension:  "mp3",
		Segments:   planSegments(4),
	})

	if report.NotAttempted() != 4 {
		t.Fatalf("expected 4 not-attempted tracks, got %d", report.NotAttempted())
	}
	if len(fake.Extracted()) != 0 {
		t.Fatalf("no extraction should have started, saw %d", len(fake.Extracted()))
	}
}

func TestRunUsesWiderPaddingForLargeBatches(t *testing.T) {
	fake := &testsupport.FakeEngine{WriteFiles: true}
	orch := extraction.New(fake, logging.NewNop(), 4)

	report := orch.Run(context.Background(), extraction.Request{
		SourcePath: "/music/album.mp3",
		OutputDir:  t.TempDir(),
		BaseName:   "album",
		Extension:  "mp3",
		Segments:   planSegments(100),
	})

	first := report.Results[0]
	if filepath.Base(first.OutputPath) != "album_track_001.mp3" {
		t.Fatalf("expected three-digit padding, got %q", filepath.Base(first.OutputPath))
	}
}

func TestNewClampsWorkerCount(t *testing.T) {
	orch := extraction.New(&testsupport.FakeEngine{WriteFiles: true}, logging.NewNop(), 0)
	report := orch.Run(context.Background(), extraction.Request{
		SourcePath: "src.mp3",
		OutputDir:  t.TempDir(),
		BaseName:   "a",
		Extension:  "mp3",
		Segments:   planSegments(1),
	})
	if report.Succeeded() != 1 {
		t.Fatalf("expected single success, got %+v", report)
	}
}
