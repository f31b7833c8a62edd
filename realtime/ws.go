package realtime

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// clientMessage is what a subscriber sends over the socket.
type clientMessage struct {
	Subscribe   *Subscription `json:"subscribe,omitempty"`
	Unsubscribe *Subscription `json:"unsubscribe,omitempty"`
}

// Handler upgrades the connection and services subscribe/unsubscribe messages
// until the peer goes away. The subscription list is confined to the read
// loop's goroutine; the hub only snapshots it under the client lock.
func (h *Hub) Handler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	cl := &client{conn: conn}
	h.add(cl)
	defer h.remove(cl)

	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if msg.Subscribe != nil {
			cl.mu.Lock()
			cl.subs = append(cl.subs, *msg.Subscribe)
			cl.mu.Unlock()
		}
		if msg.Unsubscribe != nil {
			cl.mu.Lock()
			kept := cl.subs[:0]
			for _, s := range cl.subs {
				if s != *msg.Unsubscribe {
					kept = append(kept, s)
				}
			}
			cl.subs = kept
			cl.mu.Unlock()
		}
	}
}
