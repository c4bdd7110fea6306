package runlog

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store manages run-history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Run summarizes one completed split run.
type Run struct {
	ID              string
	SourcePath      string
	OutputDir       string
	DurationSeconds float64
	SegmentSeconds  float64
	SegmentCount    int
	Succeeded       int
	Failed          int
	NotAttempted    int
	Outcome         string
	CreatedAt       time.Time
}

// Track records the outcome of one planned track within a run.
type Track struct {
	RunID        string
	Index        int
	StartSeconds float64
	EndSeconds   float64
	Status       string
	OutputPath   string
	BytesWritten int64
	Error        string
}

// Open initializes or connects to the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// OpenInDir opens the history database under the provided directory.
func OpenInDir(dir string) (*Store, error) {
	return Open(filepath.Join(dir, "history.db"))
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// RecordRun persists a run and its track outcomes in one transaction.
func (s *Store) RecordRun(ctx context.Context, run Run, tracks []Track) error {
	if run.ID == "" {
		return fmt.Errorf("record run: empty run id")
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin run tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (
			id, source_path, output_dir, duration_seconds, segment_seconds,
			segment_count, succeeded, failed, not_attempted, outcome, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.SourcePath, run.OutputDir, run.DurationSeconds, run.SegmentSeconds,
		run.SegmentCount, run.Succeeded, run.Failed, run.NotAttempted, run.Outcome,
		run.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, track := range tracks {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO tracks (
				run_id, idx, start_seconds, end_seconds, status,
				output_path, bytes_written, error
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID, track.Index, track.StartSeconds, track.EndSeconds, track.Status,
			track.OutputPath, track.BytesWritten, track.Error,
		)
		if err != nil {
			return fmt.Errorf("insert track %d: %w", track.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source_path, output_dir, duration_seconds, segment_seconds,
			segment_count, succeeded, failed, not_attempted, outcome, created_at
		FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAt string
		if err := rows.Scan(
			&run.ID, &run.SourcePath, &run.OutputDir, &run.DurationSeconds, &run.SegmentSeconds,
			&run.SegmentCount, &run.Succeeded, &run.Failed, &run.NotAttempted, &run.Outcome, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if parsed, parseErr := time.Parse(time.RFC3339, createdAt); parseErr == nil {
			run.CreatedAt = parsed
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Tracks returns the per-track outcomes for a run, ordered by index.
func (s *Store) Tracks(ctx context.Context, runID string) ([]Track, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, idx, start_seconds, end_seconds, status,
			output_path, bytes_written, error
		FROM tracks WHERE run_id = ? ORDER BY idx`, runID)
	if err != nil {
		return nil, fmt.Errorf("query tracks: %w", err)
	}
	defer rows.Close()

	var tracks []Track
	for rows.Next() {
		var track Track
		if err := rows.Scan(
			&track.RunID, &track.Index, &track.StartSeconds, &track.EndSeconds, &track.Status,
			&track.OutputPath, &track.BytesWritten, &track.Error,
		); err != nil {
			return nil, fmt.Errorf("scan track: %w", err)
		}
		tracks = append(tracks, track)
	}
	return tracks, rows.Err()
}
