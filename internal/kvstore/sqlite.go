package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
)`

// SQLiteStore keeps every key as one row of a single kv table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path. ":memory:" works for tests.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite %q: %w", ErrStore, path, err)
	}
	// One connection serialises writers and keeps ":memory:" a single database.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: create kv table: %w", ErrStore, err)
	}
	return &SQLiteStore{db: db}, nil
}

var _ Store = (*SQLiteStore)(nil)

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getRow(ctx context.Context, q queryer, key string) ([]byte, bool, error) {
	var v []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok, err := getRow(ctx, s.db, key)
	if err != nil {
		return nil, false, fmt.Errorf("%w: sqlite get %q: %w", ErrStore, key, err)
	}
	return v, ok, nil
}

const upsertQuery = `INSERT INTO kv (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value`

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	if _, err := s.db.ExecContext(ctx, upsertQuery, key, value); err != nil {
		return fmt.Errorf("%w: sqlite set %q: %w", ErrStore, key, err)
	}
	return nil
}

func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("%w: sqlite remove %q: %w", ErrStore, key, err)
	}
	return nil
}

// Update runs the read-modify-write inside one transaction.
func (s *SQLiteStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: sqlite begin: %w", ErrStore, err)
	}
	defer tx.Rollback()

	current, ok, err := getRow(ctx, tx, key)
	if err != nil {
		return fmt.Errorf("%w: sqlite get %q: %w", ErrStore, key, err)
	}

	next, err := fn(current, ok)
	if err != nil {
		return err
	}
	if next == nil {
		next = []byte{}
	}

	if _, err := tx.ExecContext(ctx, upsertQuery, key, next); err != nil {
		return fmt.Errorf("%w: sqlite set %q: %w", ErrStore, key, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: sqlite commit: %w", ErrStore, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
