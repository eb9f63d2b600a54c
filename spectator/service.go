package spectator

import (
	"context"
	"log/slog"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/service"
)

// Service runs the spectator server when an address is configured
// The hub is always available so callers can publish unconditionally
type Service struct {
	hub    *Hub
	server *Server
	log    *slog.Logger
}

// NewService creates the spectator service
func NewService() *Service {
	return &Service{}
}

func (s *Service) Name() string           { return "spectator" }
func (s *Service) Dependencies() []string { return nil }

// Init creates the hub and, if enabled, the HTTP server
func (s *Service) Init(env *service.Env) error {
	s.log = env.Log
	if s.log == nil {
		s.log = slog.New(slog.DiscardHandler)
	}
	s.hub = NewHub(env.Registry, s.log)
	if addr := env.Config.Spectator.Addr; addr != "" {
		s.server = NewServer(addr, s.hub, env.Registry, s.log)
	}
	return nil
}

// Start binds the listener; a bind failure disables the feed instead of failing the game
func (s *Service) Start() error {
	if s.server == nil {
		return nil
	}
	if err := s.server.Start(); err != nil {
		s.log.Warn("spectator feed disabled", "error", err)
		s.server = nil
	}
	return nil
}

// Stop implements service.Service
func (s *Service) Stop() error {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()
		err := s.server.Shutdown(ctx)
		s.server = nil
		return err
	}
	if s.hub != nil {
		s.hub.Close()
	}
	return nil
}

// Hub returns the frame hub, nil before Init
func (s *Service) Hub() *Hub {
	return s.hub
}

// Server returns the HTTP server, nil when disabled
func (s *Service) Server() *Server {
	return s.server
}
