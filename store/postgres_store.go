package store

import (
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/lixenwraith/vi-snake/constants"
)

const (
	schemaSQL = `
	CREATE TABLE IF NOT EXISTS scores (
		key TEXT PRIMARY KEY,
		value INTEGER NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`

	loadSQL = `SELECT value FROM scores WHERE key = $1`

	// Monotonic upsert: the stored value never decreases
	saveSQL = `
	INSERT INTO scores (key, value) VALUES ($1, $2)
	ON CONFLICT (key)
	DO UPDATE SET
		value = GREATEST(scores.value, EXCLUDED.value),
		updated_at = NOW()
	`
)

// PostgresStore persists scores in a PostgreSQL table
type PostgresStore struct {
	db     *sql.DB
	closed atomic.Bool
}

// NewPostgresStore connects, pings and ensures the schema exists
func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := newPostgresStore(db)
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func newPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (ps *PostgresStore) initSchema() error {
	_, err := ps.db.Exec(schemaSQL)
	return err
}

func (ps *PostgresStore) Load() (int, error) {
	if ps.closed.Load() {
		return 0, ErrClosed
	}

	var value int
	err := ps.db.QueryRow(loadSQL, constants.HighScoreKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load high score: %w", err)
	}
	return value, nil
}

func (ps *PostgresStore) Save(score int) error {
	if ps.closed.Load() {
		return ErrClosed
	}
	if _, err := ps.db.Exec(saveSQL, constants.HighScoreKey, score); err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}
	return nil
}

func (ps *PostgresStore) Close() error {
	if !ps.closed.CompareAndSwap(false, true) {
		return nil
	}
	return ps.db.Close()
}
