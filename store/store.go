// Package store persists solution drafts in a local SQLite database,
// keyed by (problem slug, language slug).
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store is the solution database. Safe for use from the event loop and
// completion goroutines; database/sql serializes access.
type Store struct {
	db *sql.DB
}

// Open creates the database file (and parent directories) if needed
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open solution db: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenMemory opens an in-memory database, used by tests
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// EnsureSchema creates tables on first run
func (s *Store) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS solutions (
			problem_slug TEXT NOT NULL,
			lang_slug TEXT NOT NULL,
			code TEXT NOT NULL,
			updated_ts TEXT NOT NULL DEFAULT (datetime('now')),
			PRIMARY KEY (problem_slug, lang_slug)
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// SaveSolution upserts the draft for (slug, lang)
func (s *Store) SaveSolution(ctx context.Context, slug, lang, code string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO solutions(problem_slug, lang_slug, code, updated_ts)
		 VALUES(?, ?, ?, datetime('now'))
		 ON CONFLICT(problem_slug, lang_slug)
		 DO UPDATE SET code = excluded.code, updated_ts = excluded.updated_ts`,
		slug, lang, code,
	)
	if err != nil {
		return fmt.Errorf("save solution %s/%s: %w", slug, lang, err)
	}
	return nil
}

// LoadSolution returns the saved draft, or ok=false when none exists
func (s *Store) LoadSolution(ctx context.Context, slug, lang string) (code string, ok bool, err error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT code FROM solutions WHERE problem_slug = ? AND lang_slug = ?`,
		slug, lang,
	)
	if err := row.Scan(&code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("load solution %s/%s: %w", slug, lang, err)
	}
	return code, true, nil
}

// DeleteSolution removes a saved draft
func (s *Store) DeleteSolution(ctx context.Context, slug, lang string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM solutions WHERE problem_slug = ? AND lang_slug = ?`,
		slug, lang,
	)
	return err
}

// SaveSessionValue stores one credential/session field
func (s *Store) SaveSessionValue(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions(key, value) VALUES(?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

// LoadSessionValue reads one session field; missing keys return ""
func (s *Store) LoadSessionValue(ctx context.Context, key string) (string, error) {
	var value string
	row := s.db.QueryRowContext(ctx, `SELECT value FROM sessions WHERE key = ?`, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// ClearSession drops all stored session fields
func (s *Store) ClearSession(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions`)
	return err
}

// Close releases the database handle
func (s *Store) Close() error {
	return s.db.Close()
}
