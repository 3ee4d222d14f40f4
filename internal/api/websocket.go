package api

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Message types sent to clients.
const (
	MessageConnected       = "connected"
	MessagePalettesChanged = "palettes_changed"
	MessagePalettesError   = "palettes_error"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	clientBuffer   = 256
	maxInboundSize = 512 // clients only send control frames
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // The preview server binds to localhost by default
	},
}

// WebSocketMessage is the JSON envelope for every message sent to clients.
type WebSocketMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// WebSocketHub fans palette events out to live-reload clients.
type WebSocketHub struct {
	mu      sync.RWMutex
	clients map[*WebSocketClient]struct{}
	status  func() any // payload of the connected message; may be nil
}

// WebSocketClient is one connected browser tab.
type WebSocketClient struct {
	hub  *WebSocketHub
	conn *websocket.Conn
	send chan []byte
}

// NewWebSocketHub creates an empty hub.
func NewWebSocketHub() *WebSocketHub {
	return &WebSocketHub{clients: make(map[*WebSocketClient]struct{})}
}

// SetStatus sets the function whose result greets each new client, so a
// page can render the current palettes before any change arrives.
func (h *WebSocketHub) SetStatus(status func() any) {
	h.mu.Lock()
	h.status = status
	h.mu.Unlock()
}

// Send broadcasts a typed message to every connected client.
func (h *WebSocketHub) Send(msgType string, payload any) {
	data, err := encodeMessage(msgType, payload)
	if err != nil {
		log.Printf("Failed to encode %s message: %v", msgType, err)
		return
	}
	h.broadcast(data)
}

func encodeMessage(msgType string, payload any) ([]byte, error) {
	return json.Marshal(WebSocketMessage{Type: msgType, Data: payload})
}

// broadcast snapshots the clients so slow ones can be dropped without
// holding the lock.
func (h *WebSocketHub) broadcast(data []byte) {
	h.mu.RLock()
	clients := make([]*WebSocketClient, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		h.deliver(client, data)
	}
}

// deliver queues data for one client, dropping the client when its buffer
// is full. A client removed since the snapshot has a closed channel; the
// send panics and is ignored.
func (h *WebSocketHub) deliver(client *WebSocketClient, data []byte) {
	defer func() { _ = recover() }()

	select {
	case client.send <- data:
	default:
		h.removeClient(client)
	}
}

func (h *WebSocketHub) addClient(client *WebSocketClient) {
	h.mu.Lock()
	h.clients[client] = struct{}{}
	h.mu.Unlock()
	MetricWebSocketClients.Inc()
}

// removeClient is safe to call more than once.
func (h *WebSocketHub) removeClient(client *WebSocketClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)
	MetricWebSocketClients.Dec()
}

// ClientCount returns the number of connected clients.
func (h *WebSocketHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeWS upgrades the request and greets the client with a connected
// message carrying the hub status.
func (h *WebSocketHub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &WebSocketClient{
		hub:  h,
		conn: conn,
		send: make(chan []byte, clientBuffer),
	}

	// Queue the greeting before registering so it is always first.
	h.mu.RLock()
	status := h.status
	h.mu.RUnlock()
	var payload any
	if status != nil {
		payload = status()
	}
	if data, err := encodeMessage(MessageConnected, payload); err == nil {
		client.send <- data
	}

	h.addClient(client)

	go client.writePump()
	go client.readPump()
}

// readPump discards inbound messages; reading is what notices disconnects.
func (c *WebSocketClient) readPump() {
	// writePump closes the connection once send is closed.
	defer c.hub.removeClient(c)

	c.conn.SetReadLimit(maxInboundSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}
	}
}

// writePump writes one frame per message so each frame is a whole JSON
// document, and pings idle connections.
func (c *WebSocketClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
