// Package notifications broadcasts fire-and-forget events (simulated
// SMS delivery, the live audit activity feed) to connected WebSocket
// clients.
package notifications

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	portssvc "github.com/SaloneDigital/business_registry_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The portal is a browser mock-up; allow all origins.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// event is the wire envelope for all broadcast messages.
type event struct {
	Type    string `json:"type"` // "sms" | "activity"
	Payload any    `json:"payload"`
}

type smsPayload struct {
	PhoneHint string `json:"phoneHint"`
	Body      string `json:"body"`
}

// Client is a single connected WebSocket subscriber.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub maintains the set of active clients and fans broadcast messages
// out to them. It implements ports/services.Notifier.
type Hub struct {
	logger     *slog.Logger
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client

	mu      sync.Mutex
	clients map[*Client]bool
}

var _ portssvc.Notifier = (*Hub)(nil)

// NewHub initializes a hub; call Run on its own goroutine.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:     logger,
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

// Run is the dispatch loop for register/unregister/broadcast events.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info("notification client connected")
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.Info("notification client disconnected")
		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer; drop it rather than stall the hub.
					delete(h.clients, client)
					close(client.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// PublishSMS broadcasts a simulated SMS delivery. Non-blocking: if the
// hub is saturated the message is dropped.
func (h *Hub) PublishSMS(phoneHint, body string) {
	h.publish(event{Type: "sms", Payload: smsPayload{PhoneHint: phoneHint, Body: body}})
}

// PublishActivity broadcasts an audit activity event. Non-blocking.
func (h *Hub) PublishActivity(ev portssvc.ActivityEvent) {
	h.publish(event{Type: "activity", Payload: ev})
}

func (h *Hub) publish(ev event) {
	data, err := json.Marshal(ev)
	if err != nil {
		h.logger.Error("failed to marshal notification", slog.String("error", err.Error()))
		return
	}
	select {
	case h.broadcast <- data:
	default:
		h.logger.Warn("notification dropped, broadcast buffer full")
	}
}

// ServeWS upgrades an HTTP request to a WebSocket subscription.
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	client := &Client{hub: h, conn: conn, send: make(chan []byte, 16)}
	h.register <- client

	go client.writePump()
	go client.readPump()
}

// writePump forwards hub messages to the peer until the send channel closes.
func (c *Client) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump discards inbound frames; the feed is one-way. It exists to
// notice the peer closing the connection.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
