// Package sqlite provides the durable implementations of the repository
// contracts, backed by a SQLite key-value table.
package sqlite

import (
	"context"
	"database/sql"

	"tasklist/internal/errors"

	_ "modernc.org/sqlite"
)

// Store is a durable key-value store over a single SQLite table. It backs
// both the task repository (the whole list under one key) and the theme
// preferences (one key per preference).
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the store at the given path and runs migrations.
// Use ":memory:" for an ephemeral database in tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value stored under key and whether it was present.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.NewStorageError("read key", err).WithContext("key", key)
	}
	return value, true, nil
}

// Put stores the value under key, replacing any previous value.
func (s *Store) Put(ctx context.Context, key string, value string) error {
	query := `
	INSERT INTO kv (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return errors.NewStorageError("write key", err).WithContext("key", key)
	}
	return nil
}

// Delete removes the value stored under key. Absent keys are a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key); err != nil {
		return errors.NewStorageError("delete key", err).WithContext("key", key)
	}
	return nil
}
