/*
Package sqlite provides SQLite-backed session snapshot persistence.

PURPOSE:
  The engine is stateless; what survives between visits is a named
  snapshot of the loan file the presentation layer assembled (income
  tables, scenario, attestations) as one JSON document. This package
  stores those snapshots. Durability beyond a session snapshot is an
  explicit non-goal, so the schema is a single upsert-able table.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety around the single writer. SQLite
  is opened in WAL mode so readers do not block.

USAGE:
  store, err := sqlite.New("./prequal.db")
  if err != nil { log.Fatal(err) }
  defer store.Close()
  store.SaveSnapshot(ctx, "smith-purchase", payload)

SEE ALSO:
  - api: serializes/restores loan files through this store
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrSnapshotNotFound is returned when loading a name that was never saved.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Store persists named session snapshots.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// SnapshotInfo describes a stored snapshot without its payload.
type SnapshotInfo struct {
	Name    string    `json:"name"`
	SavedAt time.Time `json:"saved_at"`
}

// New opens (or creates) the snapshot database at the given path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open snapshot database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate snapshot database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		name     TEXT PRIMARY KEY,
		payload  TEXT NOT NULL,
		saved_at TEXT NOT NULL
	);`
	_, err := s.db.Exec(schema)
	return err
}

// SaveSnapshot stores (or replaces) a named snapshot payload.
func (s *Store) SaveSnapshot(ctx context.Context, name string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (name, payload, saved_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at`,
		name, string(payload), time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

// LoadSnapshot returns a named snapshot's payload and save time.
func (s *Store) LoadSnapshot(ctx context.Context, name string) ([]byte, time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var payload, savedAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload, saved_at FROM snapshots WHERE name = ?`, name).
		Scan(&payload, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, time.Time{}, err
	}
	ts, _ := time.Parse(time.RFC3339Nano, savedAt)
	return []byte(payload), ts, nil
}

// ListSnapshots returns stored snapshot names, most recent first.
func (s *Store) ListSnapshots(ctx context.Context) ([]SnapshotInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT name, saved_at FROM snapshots ORDER BY saved_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SnapshotInfo
	for rows.Next() {
		var info SnapshotInfo
		var savedAt string
		if err := rows.Scan(&info.Name, &savedAt); err != nil {
			return nil, err
		}
		info.SavedAt, _ = time.Parse(time.RFC3339Nano, savedAt)
		out = append(out, info)
	}
	return out, rows.Err()
}

// DeleteSnapshot removes a named snapshot. Deleting a missing name is
// not an error.
func (s *Store) DeleteSnapshot(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE name = ?`, name)
	return err
}
