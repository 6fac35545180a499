package runs

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Run statuses.
const (
	StatusOK     = "ok"
	StatusEmpty  = "empty"
	StatusFailed = "failed"
)

// Run kinds.
const (
	KindFingerprint = "fingerprint"
	KindDiscover    = "discover"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id             TEXT PRIMARY KEY,
    kind           TEXT NOT NULL,
    started_at     TEXT NOT NULL,
    finished_at    TEXT,
    liked_count    INTEGER NOT NULL DEFAULT 0,
    baseline_count INTEGER NOT NULL DEFAULT 0,
    emitted_count  INTEGER NOT NULL DEFAULT 0,
    output_path    TEXT NOT NULL DEFAULT '',
    status         TEXT NOT NULL DEFAULT '',
    note           TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
`

// Run is one ledger row.
type Run struct {
	ID            string
	Kind          string
	StartedAt     time.Time
	FinishedAt    time.Time
	LikedCount    int
	BaselineCount int
	EmittedCount  int
	OutputPath    string
	Status        string
	Note          string
}

// Store manages run persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the ledger database.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure ledger directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Begin inserts a new in-progress run row and returns it.
func (s *Store) Begin(ctx context.Context, kind string) (*Run, error) {
	run := &Run{
		ID:        uuid.NewString(),
		Kind:      kind,
		StartedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO runs (id, kind, started_at) VALUES (?, ?, ?)`,
		run.ID,
		run.Kind,
		run.StartedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	return run, nil
}

// Finish records a run's outcome.
func (s *Store) Finish(ctx context.Context, run *Run) error {
	run.FinishedAt = time.Now().UTC()
	_, err := s.db.ExecContext(
		ctx,
		`UPDATE runs SET finished_at = ?, liked_count = ?, baseline_count = ?,
		        emitted_count = ?, output_path = ?, status = ?, note = ?
		 WHERE id = ?`,
		run.FinishedAt.Format(time.RFC3339Nano),
		run.LikedCount,
		run.BaselineCount,
		run.EmittedCount,
		run.OutputPath,
		run.Status,
		run.Note,
		run.ID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

// Recent returns the most recent runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, kind, started_at, COALESCE(finished_at, ''), liked_count,
		        baseline_count, emitted_count, output_path, status, note
		 FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var result []Run
	for rows.Next() {
		var run Run
		var started, finished string
		if err := rows.Scan(&run.ID, &run.Kind, &started, &finished,
			&run.LikedCount, &run.BaselineCount, &run.EmittedCount,
			&run.OutputPath, &run.Status, &run.Note); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if run.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		if finished != "" {
			if run.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
				return nil, fmt.Errorf("parse finished_at: %w", err)
			}
		}
		result = append(result, run)
	}
	return result, rows.Err()
}
