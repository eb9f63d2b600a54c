package spectator

import (
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/status"
)

// Hub fans frames out to every connected spectator
// Publish never blocks: clients whose queue is full are dropped
type Hub struct {
	mu      sync.RWMutex
	clients map[*Connection]struct{}
	latest  []byte
	closed  bool

	log *slog.Logger

	statClients *atomic.Int64
	statFrames  *atomic.Int64
	statDropped *atomic.Int64
}

// NewHub creates an empty hub publishing metrics into reg
func NewHub(reg *status.Registry, log *slog.Logger) *Hub {
	if reg == nil {
		reg = status.NewRegistry()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Hub{
		clients:     make(map[*Connection]struct{}),
		log:         log,
		statClients: reg.Ints.Get("spectator.clients"),
		statFrames:  reg.Ints.Get("spectator.frames"),
		statDropped: reg.Ints.Get("spectator.dropped"),
	}
}

// Publish encodes f, remembers it for late joiners and sends it to every client
func (h *Hub) Publish(f Frame) {
	msg, err := json.Marshal(f)
	if err != nil {
		h.log.Error("failed to encode frame", "error", err)
		return
	}
	h.statFrames.Add(1)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.latest = msg
	for c := range h.clients {
		if !c.enqueue(msg) {
			h.dropLocked(c)
			h.statDropped.Add(1)
			h.log.Debug("spectator dropped, send queue full")
		}
	}
}

// Register adds c and replays the latest frame to it
func (h *Hub) Register(c *Connection) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		c.closeSend()
		return false
	}
	h.clients[c] = struct{}{}
	h.statClients.Store(int64(len(h.clients)))
	if h.latest != nil {
		c.enqueue(h.latest)
	}
	return true
}

// Unregister removes c, safe to call for an already dropped client
func (h *Hub) Unregister(c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(c)
}

// Count returns the number of connected spectators
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client and rejects new ones
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for c := range h.clients {
		h.dropLocked(c)
	}
}

func (h *Hub) dropLocked(c *Connection) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	c.closeSend()
	h.statClients.Store(int64(len(h.clients)))
}
