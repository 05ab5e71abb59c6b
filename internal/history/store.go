package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists patch run records in SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Run is one recorded invocation of the patcher.
type Run struct {
	ID           string
	Target       string
	Replacements int
	Hits         map[string]int
	StartedAt    time.Time
	FinishedAt   time.Time
}

// Open initializes or connects to the history database and applies the schema.
func Open(path string) (*Store, error) {
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

	store := &Store{db: db, path: path}
	if err := store.applySchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
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

func (s *Store) applySchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Record inserts one patch run.
func (s *Store) Record(ctx context.Context, run Run) error {
	hits, err := json.Marshal(run.Hits)
	if err != nil {
		return fmt.Errorf("encode rule hits: %w", err)
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO patch_runs (id, target, replacements, rule_hits, started_at, finished_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Target,
		run.Replacements,
		string(hits),
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.FinishedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert patch run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, target, replacements, rule_hits, started_at, finished_at
         FROM patch_runs ORDER BY started_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query patch runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var hits, started, finished string
		if err := rows.Scan(&run.ID, &run.Target, &run.Replacements, &hits, &started, &finished); err != nil {
			return nil, fmt.Errorf("scan patch run: %w", err)
		}
		if err := json.Unmarshal([]byte(hits), &run.Hits); err != nil {
			return nil, fmt.Errorf("decode rule hits: %w", err)
		}
		if run.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		if run.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
			return nil, fmt.Errorf("parse finished_at: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate patch runs: %w", err)
	}
	return runs, nil
}
