// Package store provides a SQLite-backed memory of per-file editing sessions.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/iw2rmb/vegetor/geom"
)

// DefaultRetention is how long an untouched session is kept.
const DefaultRetention = 90 * 24 * time.Hour

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	path     TEXT PRIMARY KEY,
	caret_x  INTEGER NOT NULL,
	caret_y  INTEGER NOT NULL,
	updated  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_updated ON sessions(updated);
`

// Sessions remembers the caret of recently edited files.
//
// A nil *Sessions is a valid, empty store: lookups miss and writes are
// dropped.
type Sessions struct {
	mu        sync.Mutex
	db        *sql.DB
	retention time.Duration
}

// Open creates or opens a session database at the given path.
// Sessions older than retention are purged; zero selects DefaultRetention.
func Open(dbPath string, retention time.Duration) (*Sessions, error) {
	if retention <= 0 {
		retention = DefaultRetention
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	s := &Sessions{db: db, retention: retention}
	s.purgeStale()
	return s, nil
}

// Close closes the database.
func (s *Sessions) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// Caret returns the remembered caret for path.
// Safe to call on a nil receiver (returns miss).
func (s *Sessions) Caret(path string) (geom.Location, bool) {
	if s == nil {
		return geom.Location{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var loc geom.Location
	err := s.db.QueryRow(
		"SELECT caret_x, caret_y FROM sessions WHERE path = ?",
		path,
	).Scan(&loc.X, &loc.Y)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Warn().Err(err).Str("path", path).Msg("failed to read session")
		}
		return geom.Location{}, false
	}
	return loc, true
}

// RememberCaret stores the caret for path. No-op on nil receiver.
func (s *Sessions) RememberCaret(path string, loc geom.Location) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO sessions (path, caret_x, caret_y, updated) VALUES (?, ?, ?, ?)",
		path, loc.X, loc.Y, time.Now().Unix(),
	)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to remember caret")
	}
}

// Forget drops the session for path. No-op on nil receiver.
func (s *Sessions) Forget(path string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM sessions WHERE path = ?", path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to forget session")
	}
}

func (s *Sessions) purgeStale() {
	cutoff := time.Now().Add(-s.retention).Unix()
	res, err := s.db.Exec("DELETE FROM sessions WHERE updated <= ?", cutoff)
	if err != nil {
		log.Warn().Err(err).Msg("failed to purge stale sessions")
		return
	}
	if n, _ := res.RowsAffected(); n > 0 {
		log.Debug().Int64("count", n).Msg("purged stale sessions")
	}
}
