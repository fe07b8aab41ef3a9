// Package realtime pushes server events to users over websockets.
package realtime

import (
	"encoding/json"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/nutritrack/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

const (
	sendBuffer     = 16
	maxMessageSize = 512
)

// Message is the envelope of every pushed frame
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Hub tracks open connections per user. Each connection has a single writer
// goroutine; a client whose buffer is full is disconnected.
type Hub struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]map[*client]struct{}
	closed  bool

	pingInterval time.Duration
	writeTimeout time.Duration
	origins      []string
	logger       *zap.Logger
}

type client struct {
	userID uuid.UUID
	conn   *websocket.Conn
	send   chan []byte
	once   sync.Once
}

func (c *client) close() {
	c.once.Do(func() { close(c.send) })
}

// NewHub creates an empty hub
func NewHub(cfg config.RealtimeConfig, logger *zap.Logger) *Hub {
	h := &Hub{
		clients:      make(map[uuid.UUID]map[*client]struct{}),
		pingInterval: cfg.PingInterval,
		writeTimeout: cfg.WriteTimeout,
		origins:      cfg.AllowedOrigins,
		logger:       logger.Named("realtime"),
	}
	if h.pingInterval <= 0 {
		h.pingInterval = 30 * time.Second
	}
	if h.writeTimeout <= 0 {
		h.writeTimeout = 10 * time.Second
	}
	return h
}

// Upgrader returns a websocket upgrader honouring the allowed origins.
// An empty origin list accepts same-origin requests only.
func (h *Hub) Upgrader() *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
}

func (h *Hub) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if slices.Contains(h.origins, "*") || slices.Contains(h.origins, origin) {
		return true
	}
	return origin == "http://"+r.Host || origin == "https://"+r.Host
}

// Serve owns conn until the peer goes away. It blocks, so call it from the
// request goroutine.
func (h *Hub) Serve(conn *websocket.Conn, userID uuid.UUID) {
	c := &client{userID: userID, conn: conn, send: make(chan []byte, sendBuffer)}
	if !h.register(c) {
		_ = conn.Close()
		return
	}
	h.logger.Debug("Websocket connected", zap.String("user_id", userID.String()))

	done := make(chan struct{})
	go func() {
		h.writePump(c)
		close(done)
	}()
	h.readPump(c)

	h.unregister(c)
	<-done
	h.logger.Debug("Websocket disconnected", zap.String("user_id", userID.String()))
}

// SendToUser pushes a message to every connection of userID and returns how
// many connections it was queued for.
func (h *Hub) SendToUser(userID uuid.UUID, msgType string, data any) int {
	payload, err := json.Marshal(Message{Type: msgType, Data: data})
	if err != nil {
		h.logger.Error("Failed to encode realtime message", zap.String("type", msgType), zap.Error(err))
		return 0
	}

	var slow []*client
	sent := 0
	h.mu.RLock()
	for c := range h.clients[userID] {
		select {
		case c.send <- payload:
			sent++
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.Warn("Dropping slow websocket client", zap.String("user_id", userID.String()))
		h.unregister(c)
	}
	return sent
}

// Connections returns the number of open connections for userID
func (h *Hub) Connections(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Close disconnects everyone and rejects new connections
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for userID, set := range h.clients {
		for c := range set {
			c.close()
		}
		delete(h.clients, userID)
	}
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	set := h.clients[c.userID]
	if set == nil {
		set = make(map[*client]struct{})
		h.clients[c.userID] = set
	}
	set[c] = struct{}{}
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if set := h.clients[c.userID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.userID)
		}
	}
	h.mu.Unlock()
	c.close()
}

// readPump discards client frames; it exists to process control frames and
// notice when the peer disconnects.
func (h *Hub) readPump(c *client) {
	c.conn.SetReadLimit(maxMessageSize)
	deadline := func() error { return c.conn.SetReadDeadline(time.Now().Add(2 * h.pingInterval)) }
	_ = deadline()
	c.conn.SetPongHandler(func(string) error { return deadline() })
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(h.pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
