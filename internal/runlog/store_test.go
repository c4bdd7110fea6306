package runlog_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"cleaver/internal/runlog"
)

func openStore(t *testing.T) *runlog.Store {
	t.Helper()
	store, err := runlog.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndListRuns(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	run := runlog.Run{
		ID:              "run-1",
		SourcePath:      "/music/album.mp3",
		OutputDir:       "/music/splits",
		DurationSeconds: 100,
		SegmentSeconds:  85,
		SegmentCount:    3,
		Succeeded:       2,
		Failed:          1,
		Outcome:         "partial",
		CreatedAt:       time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	tracks := []runlog.Track{
		{Index: 1, StartSeconds: 0, EndSeconds: 10, Status: "success", OutputPath: "a_track_01.mp3", BytesWritten: 100},
		{Index: 2, StartSeconds: 12, EndSeconds: 50, Status: "failed", OutputPath: "a_track_02.mp3", Error: "boom"},
		{Index: 3, StartSeconds: 53, EndSeconds: 90, Status: "success", OutputPath: "a_track_03.mp3", BytesWritten: 120},
	}
	if err := store.RecordRun(ctx, run, tracks); err != nil {
		t.Fatalf("RecordRun returned error: %v", err)
	}

	runs, err := store.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("ListRuns returned error: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	got := runs[0]
	if got.ID != "run-1" || got.Outcome != "partial" || got.SegmentCount != 3 {
		t.Fatalf("unexpected run: %+v", got)
	}
	if !got.CreatedAt.Equal(run.CreatedAt) {
		t.Fatalf("created_at roundtrip mismatch: %v vs %v", got.CreatedAt, run.CreatedAt)
	}

	stored, err := store.Tracks(ctx, "run-1")
	if err != nil {
		t.Fatalf("Tracks returned error: %v", err)
	}
	if len(stored) != 3 {
		t.Fatalf("expected 3 tracks, got %d", len(stored))
	}
	if stored[1].Status != "failed" || stored[1].Error != "boom" {
		t.Fatalf("unexpected track: %+v", stored[1])
	}
}

func TestListRunsOrdersNewestFirst(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		run := runlog.Run{ID: id, SourcePath: "s", OutputDir: "o", Outcome: "success", CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		if err := store.RecordRun(ctx, run, nil); err != nil {
			t.Fatalf("RecordRun(%s): %v", id, err)
		}
	}

	runs, err := store.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns returned error: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != "new" || runs[1].ID != "mid" {
		t.Fatalf("unexpected ordering: %+v", runs)
	}
}

func TestRecordRunRejectsEmptyID(t *testing.T) {
	store := openStore(t)
	if err := store.RecordRun(context.Background(), runlog.Run{}, nil); err == nil {
		t.Fatal("expected error for empty run id")
	}
}

func TestReopenExistingDatabase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.db")

	store, err := runlog.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.RecordRun(context.Background(), runlog.Run{ID: "r1", Outcome: "success"}, nil); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	reopened, err := runlog.Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()

	runs, err := reopened.ListRuns(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected persisted run after reopen, got %d", len(runs))
	}
}
