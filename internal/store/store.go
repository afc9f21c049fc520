// Package store persists the discovered application set in SQLite so a
// launcher process can load its candidate set without rescanning the
// filesystem. The store is an optional collaborator: providers only require
// a synchronous read at construction time.
package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/lumen-sh/lumen/internal/desktop"
	"github.com/lumen-sh/lumen/internal/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS applications (
	id         INTEGER PRIMARY KEY,
	name       TEXT NOT NULL,
	exec       TEXT NOT NULL,
	icon       TEXT NOT NULL DEFAULT '',
	comment    TEXT NOT NULL DEFAULT '',
	categories TEXT NOT NULL DEFAULT '',
	mime_types TEXT NOT NULL DEFAULT '',
	terminal   INTEGER NOT NULL DEFAULT 0,
	file_path  TEXT NOT NULL UNIQUE
);
`

// Store is a SQLite-backed application set. All access is mediated by an
// exclusive guard; callers hold it only for the duration of a read or
// replace, never across a search.
type Store struct {
	mu   sync.Mutex
	db   *sql.DB
	lock *flock.Flock
}

// Open opens (creating if necessary) the store at path. An empty path opens
// an in-memory store for testing.
func Open(path string) (*Store, error) {
	dsn := ":memory:"
	var fileLock *flock.Flock
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStoreFailed, err)
		}
		// WAL mode tolerates a reader while a refresh is in flight.
		dsn = path + "?_journal_mode=WAL&_busy_timeout=5000"
		fileLock = flock.New(path + ".lock")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreFailed, err)
	}

	// Single connection; the store is a low-traffic cache.
	db.SetMaxOpenConns(1)

	if path != "" {
		for _, pragma := range []string{
			"PRAGMA journal_mode = WAL",
			"PRAGMA synchronous = NORMAL",
			"PRAGMA busy_timeout = 5000",
		} {
			if _, err := db.Exec(pragma); err != nil {
				_ = db.Close()
				return nil, errors.Wrap(errors.ErrCodeStoreFailed, err)
			}
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(errors.ErrCodeStoreFailed, err)
	}

	slog.Debug("application store opened", slog.String("path", path))

	return &Store{db: db, lock: fileLock}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Replace swaps the stored application set for apps inside one transaction.
// A file lock serializes concurrent launcher processes refreshing the same
// store.
func (s *Store) Replace(apps []desktop.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lock != nil {
		if err := s.lock.Lock(); err != nil {
			return errors.New(errors.ErrCodeStoreLocked, "cannot acquire store lock", err)
		}
		defer func() { _ = s.lock.Unlock() }()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreFailed, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM applications`); err != nil {
		return errors.Wrap(errors.ErrCodeStoreFailed, err)
	}

	stmt, err := tx.Prepare(`INSERT INTO applications
		(name, exec, icon, comment, categories, mime_types, terminal, file_path)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreFailed, err)
	}
	defer stmt.Close()

	for _, app := range apps {
		_, err := stmt.Exec(
			app.Name,
			app.Exec,
			app.Icon,
			app.Comment,
			strings.Join(app.Categories, ";"),
			strings.Join(app.MimeTypes, ";"),
			boolToInt(app.Terminal),
			app.Path,
		)
		if err != nil {
			return errors.Wrap(errors.ErrCodeStoreFailed, err).
				WithDetail("application", app.Name)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(errors.ErrCodeStoreFailed, err)
	}

	slog.Debug("application store replaced", slog.Int("count", len(apps)))
	return nil
}

// List reads the full stored application set, ordered by file path.
func (s *Store) List() ([]desktop.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT name, exec, icon, comment, categories,
		mime_types, terminal, file_path FROM applications ORDER BY file_path`)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreFailed, err)
	}
	defer rows.Close()

	var apps []desktop.Application
	for rows.Next() {
		var (
			app        desktop.Application
			categories string
			mimeTypes  string
			terminal   int
		)
		if err := rows.Scan(&app.Name, &app.Exec, &app.Icon, &app.Comment,
			&categories, &mimeTypes, &terminal, &app.Path); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStoreFailed, err)
		}
		app.Categories = splitList(categories)
		app.MimeTypes = splitList(mimeTypes)
		app.Terminal = terminal != 0
		apps = append(apps, app)
	}

	return apps, rows.Err()
}

// ListPaths reads the stored application file paths, ordered.
func (s *Store) ListPaths() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT file_path FROM applications ORDER BY file_path`)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreFailed, err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStoreFailed, err)
		}
		paths = append(paths, p)
	}

	return paths, rows.Err()
}

// Count returns the number of stored applications.
func (s *Store) Count() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM applications`).Scan(&n); err != nil {
		return 0, errors.Wrap(errors.ErrCodeStoreFailed, err)
	}
	return n, nil
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, ";")
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// DefaultPath returns the default store location (~/.lumen/applications.db).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, ".lumen", "applications.db"), nil
}
