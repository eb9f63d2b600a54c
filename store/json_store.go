package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/lixenwraith/vi-snake/constants"
)

// JSONStore persists scores as a key/value map in a local JSON file
type JSONStore struct {
	filePath string
	mutex    sync.Mutex
	data     map[string]int
	closed   bool
}

// NewJSONStore opens filePath, creating it when it does not exist
func NewJSONStore(filePath string) (*JSONStore, error) {
	if filePath == "" {
		filePath = constants.DefaultStoreFile
	}
	store := &JSONStore{
		filePath: filePath,
		data:     make(map[string]int),
	}

	raw, err := os.ReadFile(filePath)
	switch {
	case err == nil:
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &store.data); err != nil {
				return nil, fmt.Errorf("failed to load JSON store %s: %w", filePath, err)
			}
		}
	case errors.Is(err, fs.ErrNotExist):
		if err := store.saveLocked(); err != nil {
			return nil, fmt.Errorf("failed to create JSON store %s: %w", filePath, err)
		}
	default:
		return nil, fmt.Errorf("failed to read JSON store %s: %w", filePath, err)
	}

	return store, nil
}

func (js *JSONStore) Load() (int, error) {
	js.mutex.Lock()
	defer js.mutex.Unlock()
	if js.closed {
		return 0, ErrClosed
	}
	return js.data[constants.HighScoreKey], nil
}

func (js *JSONStore) Save(score int) error {
	js.mutex.Lock()
	defer js.mutex.Unlock()
	if js.closed {
		return ErrClosed
	}
	if score <= js.data[constants.HighScoreKey] {
		return nil
	}

	prev, had := js.data[constants.HighScoreKey]
	js.data[constants.HighScoreKey] = score
	if err := js.saveLocked(); err != nil {
		if had {
			js.data[constants.HighScoreKey] = prev
		} else {
			delete(js.data, constants.HighScoreKey)
		}
		return fmt.Errorf("failed to save high score: %w", err)
	}
	return nil
}

func (js *JSONStore) Close() error {
	js.mutex.Lock()
	js.closed = true
	js.mutex.Unlock()
	return nil
}

// saveLocked writes through a temp file and rename, caller holds the mutex
func (js *JSONStore) saveLocked() error {
	raw, err := json.MarshalIndent(js.data, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(js.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(js.filePath)+".*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), js.filePath)
}
