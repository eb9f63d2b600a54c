package store

import (
	"sync"

	"github.com/lixenwraith/vi-snake/constants"
)

// MemoryStore keeps scores in process memory
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]int
	closed bool
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int)}
}

func (m *MemoryStore) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return 0, ErrClosed
	}
	return m.values[constants.HighScoreKey], nil
}

func (m *MemoryStore) Save(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	if score > m.values[constants.HighScoreKey] {
		m.values[constants.HighScoreKey] = score
	}
	return nil
}

func (m *MemoryStore) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	return nil
}
