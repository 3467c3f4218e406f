package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `CREATE TABLE IF NOT EXISTS shiftmatch_kv (
	key   TEXT PRIMARY KEY,
	value BYTEA NOT NULL
)`

// PostgresStore keeps every key as one row of the shiftmatch_kv table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates the kv table if needed. The store owns pool from here on.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		return nil, fmt.Errorf("%w: create kv table: %w", ErrStore, err)
	}
	return &PostgresStore{pool: pool}, nil
}

var _ Store = (*PostgresStore)(nil)

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var v []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM shiftmatch_kv WHERE key = $1`, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: postgres get %q: %w", ErrStore, key, err)
	}
	return v, true, nil
}

const pgUpsertQuery = `INSERT INTO shiftmatch_kv (key, value) VALUES ($1, $2)
	ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	if _, err := s.pool.Exec(ctx, pgUpsertQuery, key, value); err != nil {
		return fmt.Errorf("%w: postgres set %q: %w", ErrStore, key, err)
	}
	return nil
}

func (s *PostgresStore) Remove(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM shiftmatch_kv WHERE key = $1`, key); err != nil {
		return fmt.Errorf("%w: postgres remove %q: %w", ErrStore, key, err)
	}
	return nil
}

// Update serialises writers on the key with a transaction-scoped advisory lock, which also
// covers keys that have no row yet.
func (s *PostgresStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: postgres begin: %w", ErrStore, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
		return fmt.Errorf("%w: postgres lock %q: %w", ErrStore, key, err)
	}

	var current []byte
	ok := true
	err = tx.QueryRow(ctx, `SELECT value FROM shiftmatch_kv WHERE key = $1`, key).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		current, ok = nil, false
	} else if err != nil {
		return fmt.Errorf("%w: postgres get %q: %w", ErrStore, key, err)
	}

	next, err := fn(current, ok)
	if err != nil {
		return err
	}
	if next == nil {
		next = []byte{}
	}

	if _, err := tx.Exec(ctx, pgUpsertQuery, key, next); err != nil {
		return fmt.Errorf("%w: postgres set %q: %w", ErrStore, key, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: postgres commit: %w", ErrStore, err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
