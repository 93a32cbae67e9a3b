package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// MySQLAdapter backs the token store with a single-table key/value
// schema:
//
//	CREATE TABLE IF NOT EXISTS kv_store (
//	    k VARCHAR(191) PRIMARY KEY,
//	    v TEXT NOT NULL
//	);
type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

func (m *MySQLAdapter) Get(ctx context.Context, key string) (string, bool, error) {
	var val string
	err := m.db.QueryRowContext(ctx,
		`SELECT v FROM kv_store WHERE k = ?`, key,
	).Scan(&val)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query kv_store: %w", err)
	}
	return val, true, nil
}

func (m *MySQLAdapter) Set(ctx context.Context, key, value string) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO kv_store (k, v) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE v = VALUES(v)`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("upsert kv_store: %w", err)
	}
	return nil
}
