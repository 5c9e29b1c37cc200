package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// KVStore implements ports.KVBackend on a SQLite table.
type KVStore struct {
	db *sql.DB
}

// NewKVStore creates a SQLite-backed key-value store. The kv_entries table
// must exist (see Open).
func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{db: db}
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite get %q: %w", key, err)
	}
	return value, nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("sqlite set %q: %w", key, err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = ?`, key); err != nil {
		return fmt.Errorf("sqlite delete %q: %w", key, err)
	}
	return nil
}

// HealthCheck implements ports.HealthChecker for SQLite.
type HealthCheck struct {
	db *sql.DB
}

// NewHealthCheck creates a SQLite health checker.
func NewHealthCheck(db *sql.DB) *HealthCheck {
	return &HealthCheck{db: db}
}

// Ping checks that the database file is reachable.
func (h *HealthCheck) Ping(ctx context.Context) error {
	return h.db.PingContext(ctx)
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "sqlite"
}
