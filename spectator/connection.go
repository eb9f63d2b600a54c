package spectator

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/vi-snake/constants"
)

// Connection wraps one spectator websocket
type Connection struct {
	ws   *websocket.Conn
	send chan []byte

	closeOnce sync.Once
}

// NewConnection creates a connection with a buffered outgoing queue
func NewConnection(ws *websocket.Conn) *Connection {
	return &Connection{
		ws:   ws,
		send: make(chan []byte, constants.SpectatorSendBuffer),
	}
}

// enqueue offers a frame without blocking, false when the queue is full
func (c *Connection) enqueue(msg []byte) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// closeSend ends the write pump, the hub calls it exactly once per connection
func (c *Connection) closeSend() {
	c.closeOnce.Do(func() {
		close(c.send)
	})
}

// readPump discards client messages and detects disconnects
func (c *Connection) readPump(h *Hub, log *slog.Logger) {
	defer func() {
		h.Unregister(c)
		c.ws.Close()
	}()

	c.ws.SetReadLimit(constants.SpectatorReadLimit)
	c.ws.SetReadDeadline(time.Now().Add(constants.SpectatorPongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(constants.SpectatorPongWait))
	})

	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Debug("spectator read failed", "remote", c.ws.RemoteAddr().String(), "error", err)
			}
			return
		}
	}
}

// writePump forwards queued frames and keeps the connection alive with pings
func (c *Connection) writePump() {
	ticker := time.NewTicker(constants.SpectatorPingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(constants.SpectatorWriteWait))
			if !ok {
				c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.ws.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			if _, err := w.Write(message); err != nil {
				return
			}
			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(constants.SpectatorWriteWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
