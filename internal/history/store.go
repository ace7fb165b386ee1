// Package history provides SQLite-backed storage of past verification
// runs (.breathe/history.db in the project).
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/breathe-sh/breathe/pkg/models"
)

// Store wraps an SQLite database holding run history.
type Store struct {
	conn *sql.DB
	path string
	mu   sync.RWMutex
}

// ProjectDBPath returns the path to the project-local history database.
func ProjectDBPath(projectRoot string) string {
	return filepath.Join(projectRoot, ".breathe", "history.db")
}

// Open opens an SQLite database at the given path, creating parent
// directories if they don't exist. WAL mode is enabled for concurrent
// reads.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	return &Store{conn: conn, path: path}, nil
}

// OpenProject opens the project-local history database.
func OpenProject(projectRoot string) (*Store, error) {
	return Open(ProjectDBPath(projectRoot))
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.Close()
}

// Migrate creates the history schema if it does not exist.
func (s *Store) Migrate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at TIMESTAMP NOT NULL,
		elapsed_seconds INTEGER NOT NULL,
		success INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS ecosystem_results (
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		ecosystem TEXT NOT NULL,
		all_succeeded INTEGER NOT NULL,
		elapsed_seconds INTEGER NOT NULL,
		error TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (run_id, ecosystem)
	);
	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
	`
	if _, err := s.conn.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// RecordRun persists a run and its per-ecosystem rows atomically.
func (s *Store) RecordRun(result *models.RunResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO runs (id, started_at, elapsed_seconds, success)
		VALUES (?, ?, ?, ?)`,
		result.ID, formatTime(result.StartedAt), result.ElapsedSeconds, boolInt(result.Success()),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, eco := range result.Ecosystems {
		_, err = tx.Exec(`
			INSERT INTO ecosystem_results (run_id, ecosystem, all_succeeded, elapsed_seconds, error)
			VALUES (?, ?, ?, ?, ?)`,
			result.ID, eco.Ecosystem, boolInt(eco.AllSucceeded), eco.ElapsedSeconds, eco.Err,
		)
		if err != nil {
			return fmt.Errorf("insert ecosystem result: %w", err)
		}
	}

	return tx.Commit()
}

// Run is a stored run row with its ecosystem rows attached.
type Run struct {
	ID             string
	StartedAt      time.Time
	ElapsedSeconds uint64
	Success        bool
	Ecosystems     []models.EcosystemResult
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}
	rows, err := s.conn.Query(`
		SELECT id, started_at, elapsed_seconds, success
		FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var startedAt string
		var success int
		if err := rows.Scan(&r.ID, &startedAt, &r.ElapsedSeconds, &success); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.StartedAt, _ = parseTime(startedAt)
		r.Success = success != 0
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	for i := range runs {
		ecos, err := s.listEcosystems(runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Ecosystems = ecos
	}
	return runs, nil
}

// GetRun returns one stored run by ID.
func (s *Store) GetRun(id string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var r Run
	var startedAt string
	var success int
	err := s.conn.QueryRow(`
		SELECT id, started_at, elapsed_seconds, success
		FROM runs WHERE id = ?`, id).
		Scan(&r.ID, &startedAt, &r.ElapsedSeconds, &success)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("query run: %w", err)
	}
	r.StartedAt, _ = parseTime(startedAt)
	r.Success = success != 0

	r.Ecosystems, err = s.listEcosystems(r.ID)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) listEcosystems(runID string) ([]models.EcosystemResult, error) {
	rows, err := s.conn.Query(`
		SELECT ecosystem, all_succeeded, elapsed_seconds, error
		FROM ecosystem_results WHERE run_id = ? ORDER BY ecosystem`, runID)
	if err != nil {
		return nil, fmt.Errorf("query ecosystem results: %w", err)
	}
	defer rows.Close()

	var out []models.EcosystemResult
	for rows.Next() {
		var eco models.EcosystemResult
		var ok int
		if err := rows.Scan(&eco.Ecosystem, &ok, &eco.ElapsedSeconds, &eco.Err); err != nil {
			return nil, fmt.Errorf("scan ecosystem result: %w", err)
		}
		eco.AllSucceeded = ok != 0
		out = append(out, eco)
	}
	return out, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// formatTime formats a time for storage in SQLite.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTime parses a time string from SQLite.
func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
