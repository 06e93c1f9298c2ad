package ws

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Outbound messages buffered per connection before it is dropped.
	sendBufferSize = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// client is one dashboard connection. All writes go through the send channel
// and the write pump; the websocket permits only one writer at a time.
type client struct {
	hub      *Hub
	vendorID string
	conn     *websocket.Conn
	send     chan []byte
}

// writePump drains the send channel onto the connection. It is the only
// goroutine that writes to conn.
func (c *client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			c.hub.drop(c)
			return
		}
	}

	// Channel closed by the hub.
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump exists only to detect the peer going away.
func (c *client) readPump() {
	defer c.hub.drop(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
