package spectator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/status"
)

var upgrader = websocket.Upgrader{
	// Spectators are read-only, any origin may watch
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server exposes the spectator websocket and Prometheus metrics over HTTP
type Server struct {
	hub  *Hub
	log  *slog.Logger
	http *http.Server

	mu       sync.Mutex
	listener net.Listener
	wg       sync.WaitGroup
}

// NewServer builds the HTTP surface; reg is exported on the metrics path
func NewServer(addr string, hub *Hub, reg *status.Registry, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(
		status.NewCollector(reg),
		collectors.NewGoCollector(),
	)

	s := &Server{hub: hub, log: log}

	mux := http.NewServeMux()
	mux.HandleFunc(constants.SpectatorPath, s.serveWS)
	mux.Handle(constants.MetricsPath, promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}))

	s.http = &http.Server{Addr: addr, Handler: mux}
	return s
}

// Handler returns the HTTP routes, used directly by tests
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Start binds the listen address and serves in the background
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("spectator listen %s: %w", s.http.Addr, err)
	}

	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	s.wg.Add(1)
	core.Go(func() {
		defer s.wg.Done()
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("spectator server stopped", "error", err)
		}
	})
	s.log.Info("spectator feed listening", "addr", ln.Addr().String())
	return nil
}

// Addr returns the bound address, nil before Start
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Shutdown disconnects spectators and stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	err := s.http.Shutdown(ctx)
	s.wg.Wait()
	return err
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug("spectator upgrade failed", "error", err)
		return
	}

	c := NewConnection(ws)
	if !s.hub.Register(c) {
		ws.Close()
		return
	}
	s.log.Debug("spectator connected", "remote", ws.RemoteAddr().String())

	core.Go(c.writePump)
	core.Go(func() { c.readPump(s.hub, s.log) })
}
