// Package realtime pushes row-change notifications to websocket subscribers.
// Clients subscribe per table (optionally scoped to one user); views re-fetch
// when an event arrives rather than patching incrementally.
package realtime

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	EventInsert = "INSERT"
	EventUpdate = "UPDATE"
	EventDelete = "DELETE"
)

// Watched table names, mirroring the storefront's subscription channels.
const (
	TableOrders     = "orders"
	TableOrderItems = "order_items"
	TableFoodItems  = "food_items"
	TableVariants   = "food_item_variants"
)

// Event is one row change in a watched table.
type Event struct {
	Table  string      `json:"table"`
	Type   string      `json:"type"` // INSERT, UPDATE or DELETE
	UserID string      `json:"user_id,omitempty"`
	Record interface{} `json:"record,omitempty"`
}

// Subscription filters events by table and, optionally, by owning user.
type Subscription struct {
	Table  string `json:"table"`
	UserID string `json:"user_id,omitempty"`
}

// Matches reports whether an event should be delivered for this subscription.
// An empty UserID subscribes to the whole table.
func (s Subscription) Matches(e Event) bool {
	if s.Table != e.Table {
		return false
	}
	if s.UserID != "" && e.UserID != "" && s.UserID != e.UserID {
		return false
	}
	return true
}

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex // guards writes to conn
	subs []Subscription
}

func (c *client) subscribed(e Event) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, sub := range c.subs {
		if sub.Matches(e) {
			return true
		}
	}
	return false
}

func (c *client) send(e Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	return c.conn.WriteJSON(e)
}

// Hub fans events out to every matching subscriber.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*client]struct{})}
}

// Broadcast delivers the event to all matching subscribers. Clients that fail
// the write are dropped; no ordering guarantee beyond delivery order per
// connection.
func (h *Hub) Broadcast(e Event) {
	h.mu.Lock()
	targets := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		if c.subscribed(e) {
			targets = append(targets, c)
		}
	}
	h.mu.Unlock()

	for _, c := range targets {
		if err := c.send(e); err != nil {
			log.Printf("❌ websocket send failed, dropping client: %v", err)
			h.remove(c)
		}
	}
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		c.conn.Close()
	}
	h.mu.Unlock()
}

// ClientCount reports how many connections are registered.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
