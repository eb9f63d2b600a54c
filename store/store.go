// Package store persists the high score
package store

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/vi-snake/config"
)

// ErrClosed is returned by operations on a closed store
var ErrClosed = errors.New("store closed")

// ScoreStore persists a single integer high score
// Load returns 0 when nothing was saved yet
// Save keeps the stored value if it is already greater or equal
type ScoreStore interface {
	Load() (int, error)
	Save(score int) error
	Close() error
}

// Open selects the backend named by cfg.Backend
func Open(cfg config.Store) (ScoreStore, error) {
	switch cfg.Backend {
	case config.BackendJSON, "":
		return NewJSONStore(cfg.Path)
	case config.BackendPostgres:
		return NewPostgresStore(cfg.DatabaseURL)
	case config.BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
