package preview

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Message types sent to browsers.
const (
	MessageDismiss = "dismiss"
	MessageAction  = "action"
	MessageShow    = "show"
	MessageError   = "error"
)

// Message is sent to browsers over the websocket.
type Message struct {
	Type  string `json:"type"`
	HID   string `json:"hid,omitempty"`
	ID    string `json:"id,omitempty"`
	HTML  string `json:"html,omitempty"`
	Error string `json:"error,omitempty"`
}

// ClientEvent is a DOM or hook event reported by a browser.
type ClientEvent struct {
	HID   string         `json:"hid"`
	Event string         `json:"event"`
	Data  map[string]any `json:"data,omitempty"`
}

const writeWait = 5 * time.Second

// client wraps a connection with a write lock; gorilla connections allow
// one concurrent writer.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// hub manages websocket clients.
type hub struct {
	clients  map[*client]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
	logger   *slog.Logger
	metrics  *metrics

	// onEvent handles a raw client message. A non-nil reply is written
	// back to the sender only.
	onEvent func(data []byte) *Message
}

func newHub(logger *slog.Logger, m *metrics) *hub {
	return &hub{
		clients: make(map[*client]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger:  logger,
		metrics: m,
	}
}

// ServeHTTP upgrades the request and reads client events until the
// connection closes.
func (h *hub) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &client{conn: conn}
	h.add(c)
	h.logger.Debug("client connected", "remote", req.RemoteAddr)

	defer func() {
		h.remove(c)
		h.logger.Debug("client disconnected", "remote", req.RemoteAddr)
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if h.onEvent == nil {
			continue
		}
		if reply := h.onEvent(data); reply != nil {
			if b, err := json.Marshal(reply); err == nil {
				_ = c.write(b)
			}
		}
	}
}

func (h *hub) add(c *client) {
	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()
	h.metrics.activeClients.Inc()
}

func (h *hub) remove(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()

	if ok {
		h.metrics.activeClients.Dec()
		c.conn.Close()
	}
}

// broadcast sends msg to all clients. Clients that fail a write are dropped.
func (h *hub) broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	h.metrics.broadcasts.WithLabelValues(msg.Type).Inc()

	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if err := c.write(data); err != nil {
			h.remove(c)
		}
	}
}

// count returns the number of connected clients.
func (h *hub) count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// close disconnects every client.
func (h *hub) close() {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		h.remove(c)
	}
}
