package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tasktracker/internal/core/ports"
)

const createKVTableQuery = `
CREATE TABLE IF NOT EXISTS kv_entries (
  k VARCHAR(191) NOT NULL PRIMARY KEY,
  v LONGTEXT NOT NULL,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_bin;
`

const getKVQuery = `SELECT v FROM kv_entries WHERE k = ?`

const upsertKVQuery = `
INSERT INTO kv_entries (k, v) VALUES (?, ?)
ON DUPLICATE KEY UPDATE v = VALUES(v);
`

const deleteKVQuery = `DELETE FROM kv_entries WHERE k = ?`

// KVRepository stores durable keys as rows of kv_entries. A single-row upsert
// keeps each Set atomic.
type KVRepository struct {
	db *sqlx.DB
}

var (
	_ ports.KVStore = (*KVRepository)(nil)
	_ ports.Pinger  = (*KVRepository)(nil)
)

func NewKVRepository(db *sqlx.DB) *KVRepository {
	return &KVRepository{db: db}
}

func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, createKVTableQuery); err != nil {
		return fmt.Errorf("create kv_entries table: %w", err)
	}
	return nil
}

func (r *KVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.GetContext(ctx, &value, getKVQuery, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *KVRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, upsertKVQuery, key, value)
	return err
}

func (r *KVRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, deleteKVQuery, key)
	return err
}

func (r *KVRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
