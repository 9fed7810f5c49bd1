package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

const upsertEntry = `INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

// SQLiteConfig holds configuration for the SQLite store
type SQLiteConfig struct {
	// DB must already have the kv_entries migration applied
	DB *sql.DB
}

// sqliteStore implements the Store interface on a single SQLite table
type sqliteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed key-value store
func NewSQLite(cfg *SQLiteConfig) (*sqliteStore, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("database cannot be nil")
	}

	return &sqliteStore{
		db: cfg.DB,
	}, nil
}

// Get retrieves the value under key
func (s *sqliteStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}

	return value, nil
}

// Set upserts the value under key
func (s *sqliteStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	_, err := s.db.ExecContext(ctx, upsertEntry, key, value, timestamp())
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	return nil
}

// Delete removes key
func (s *sqliteStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}

	return nil
}

// Update runs fn inside a BEGIN IMMEDIATE transaction. The write lock is taken
// before the read, so another process waits (up to the busy timeout) instead of
// committing in between.
func (s *sqliteStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if fn == nil {
		return errors.New("update func cannot be nil")
	}

	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, `BEGIN IMMEDIATE`); err != nil {
		return fmt.Errorf("failed to lock %s: %w", key, err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if _, err := conn.ExecContext(context.Background(), `ROLLBACK`); err != nil {
			logrus.WithError(err).WithField("key", key).Warn("failed to roll back update")
		}
	}()

	var current []byte
	found := true
	err = conn.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		current, found = nil, false
	} else if err != nil {
		return fmt.Errorf("failed to get %s: %w", key, err)
	}

	next, write, err := fn(current, found)
	if err != nil {
		return err
	}

	if write {
		if _, err := conn.ExecContext(ctx, upsertEntry, key, next, timestamp()); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	if _, err := conn.ExecContext(ctx, `COMMIT`); err != nil {
		return fmt.Errorf("failed to commit %s: %w", key, err)
	}
	committed = true

	return nil
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
