package store

import (
	"log/slog"

	"github.com/lixenwraith/vi-snake/service"
)

// Service opens the configured backend as a service.Service
// A backend that cannot be opened is replaced by a MemoryStore
type Service struct {
	store    ScoreStore
	fallback bool
}

// NewService creates the store service
func NewService() *Service {
	return &Service{}
}

func (s *Service) Name() string           { return "store" }
func (s *Service) Dependencies() []string { return nil }

// Init opens the backend named in the store config section
func (s *Service) Init(env *service.Env) error {
	log := env.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	st, err := Open(env.Config.Store)
	if err != nil {
		log.Warn("score store unavailable, high scores kept in memory",
			"backend", env.Config.Store.Backend, "error", err)
		s.store = NewMemoryStore()
		s.fallback = true
		return nil
	}

	log.Info("score store opened", "backend", env.Config.Store.Backend)
	s.store = st
	return nil
}

func (s *Service) Start() error { return nil }

// Stop closes the backend
func (s *Service) Stop() error {
	if s.store == nil {
		return nil
	}
	err := s.store.Close()
	s.store = nil
	return err
}

// Store returns the opened backend, nil before Init
func (s *Service) Store() ScoreStore {
	return s.store
}

// Fallback reports whether the configured backend failed to open
func (s *Service) Fallback() bool {
	return s.fallback
}
