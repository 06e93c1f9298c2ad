package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
)

// Event is a row-change notification pushed to a vendor's open dashboards,
// e.g. a new pending inquiry bumping the notification counter.
type Event struct {
	Type     string      `json:"type"`
	VendorID string      `json:"vendor_id"`
	Payload  interface{} `json:"payload,omitempty"`
}

// Hub tracks connected dashboard sessions per vendor and fans events out to
// them. Delivery is best effort: a slow or dead connection is dropped, never
// waited on.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*client]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]map[*client]bool)}
}

// Subscribe upgrades the request and registers the connection under the
// vendor. Each connection gets its own write pump so broadcasts from
// concurrent requests never touch the websocket directly.
func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request, vendorID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Subscribe: upgrade failed: %v", err)
		return
	}

	c := &client{
		hub:      h,
		vendorID: vendorID,
		conn:     conn,
		send:     make(chan []byte, sendBufferSize),
	}

	h.mu.Lock()
	if h.clients[vendorID] == nil {
		h.clients[vendorID] = make(map[*client]bool)
	}
	h.clients[vendorID][c] = true
	h.mu.Unlock()

	log.Printf("Subscribe: vendor %s dashboard connected", vendorID)

	go c.writePump()
	go c.readPump()
}

// Broadcast delivers the event to every open connection of the vendor. Each
// message is queued on the connection's own pump; a client whose buffer is
// full is dropped rather than blocking the caller.
func (h *Hub) Broadcast(event Event) {
	message, err := json.Marshal(event)
	if err != nil {
		log.Printf("Broadcast: failed to marshal event: %v", err)
		return
	}

	// Sends happen under the read lock: drop closes the channel only under
	// the write lock, so a queued send can never hit a closed channel.
	h.mu.RLock()
	var full []*client
	for c := range h.clients[event.VendorID] {
		select {
		case c.send <- message:
		default:
			full = append(full, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range full {
		h.drop(c)
	}
}

// drop unregisters the client and closes its send channel, which stops the
// write pump and closes the connection.
func (h *Hub) drop(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.clients[c.vendorID]
	if !ok || !conns[c] {
		return
	}
	delete(conns, c)
	if len(conns) == 0 {
		delete(h.clients, c.vendorID)
	}
	close(c.send)
}
