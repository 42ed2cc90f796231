package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const probeKey = "__dfmea_probe__"

// SQLiteMedium stores key-value pairs in a single-file SQLite database.
type SQLiteMedium struct {
	db        *sql.DB
	available bool
}

// OpenSQLite opens (creating if needed) the kv table at the given path and
// probes writability with a throwaway key. Use ":memory:" for tests.
func OpenSQLite(path string) (*SQLiteMedium, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}

	m := &SQLiteMedium{db: db}
	m.available = m.probe()
	return m, nil
}

// probe writes and immediately removes a throwaway key to verify the medium
// accepts writes (read-only file, full disk).
func (m *SQLiteMedium) probe() bool {
	if _, err := m.db.Exec(`INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)`, probeKey, "probe"); err != nil {
		return false
	}
	if _, err := m.db.Exec(`DELETE FROM kv WHERE key = ?`, probeKey); err != nil {
		return false
	}
	return true
}

func (m *SQLiteMedium) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := m.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

func (m *SQLiteMedium) Set(ctx context.Context, key, value string) error {
	_, err := m.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (m *SQLiteMedium) Delete(ctx context.Context, key string) error {
	if _, err := m.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

func (m *SQLiteMedium) Available() bool { return m.available }

// Close releases the underlying database handle.
func (m *SQLiteMedium) Close() error { return m.db.Close() }
