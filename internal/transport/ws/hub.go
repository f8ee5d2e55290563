package ws

import (
	"encoding/json"
	"sync"

	"github.com/forest0xia/ai-career-navigator/internal/logger"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgCommunityUpdate MessageType = "community_update"
	MsgError           MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans community updates out to every connected dashboard
type Hub struct {
	conns map[*Connection]struct{}
	mu    sync.RWMutex
	log   *logger.Logger

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	broadcast  chan []byte
	done       chan struct{}
	closeOnce  sync.Once
}

// Connection represents a WebSocket connection
type Connection struct {
	ID   string
	Send chan []byte
	Hub  *Hub
}

// NewHub creates a new WebSocket hub and starts its loop
func NewHub(log *logger.Logger) *Hub {
	h := &Hub{
		conns:      make(map[*Connection]struct{}),
		log:        log.With("component", "ws"),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.conns[conn] = struct{}{}
			total := len(h.conns)
			h.mu.Unlock()
			h.log.Debug("dashboard connected", "conn", conn.ID, "connections", total)

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.conns[conn]; ok {
				delete(h.conns, conn)
				close(conn.Send)
			}
			h.mu.Unlock()
			h.log.Debug("dashboard disconnected", "conn", conn.ID)

		case data := <-h.broadcast:
			h.mu.RLock()
			for conn := range h.conns {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()

		case <-h.done:
			h.mu.Lock()
			for conn := range h.conns {
				delete(h.conns, conn)
				close(conn.Send)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.done:
		close(conn.Send)
	}
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// Count returns the number of connected dashboards
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Broadcast sends a message to every dashboard (implements service.Broadcaster).
// It never blocks; when the queue is full the update is dropped.
func (h *Hub) Broadcast(msgType string, payload interface{}) {
	data, err := encodeMessage(MessageType(msgType), payload)
	if err != nil {
		h.log.Warn("broadcast encode failed", "type", msgType, "error", err)
		return
	}

	select {
	case h.broadcast <- data:
	case <-h.done:
	default:
		h.log.Warn("broadcast queue full, dropping update", "type", msgType)
	}
}

// Close disconnects every dashboard and stops the hub loop
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}
