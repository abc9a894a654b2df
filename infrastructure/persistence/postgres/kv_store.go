package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/auditra/auditra/application/port/outbound"
)

// kvStore adapts a single-table Postgres key-value surface to the
// persistence boundary. Schema:
//
//	CREATE TABLE IF NOT EXISTS kv_store (
//	    key   TEXT PRIMARY KEY,
//	    value TEXT NOT NULL
//	)
type kvStore struct {
	db *sql.DB
}

func NewKVStore(db *sql.DB) outbound.KVStore {
	return &kvStore{db: db}
}

// EnsureSchema creates the backing table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS kv_store (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure kv_store schema: %w", err)
	}
	return nil
}

func (s *kvStore) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM kv_store WHERE key = $1`

	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *kvStore) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_store (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}
