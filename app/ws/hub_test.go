package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTestHub(t *testing.T, hub *Hub, vendorID string) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.Subscribe(w, r, vendorID)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubBroadcastDelivers(t *testing.T) {
	hub := NewHub()
	conn := dialTestHub(t, hub, "vendor-1")

	// Subscription happens inside the handler goroutine; wait for it.
	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return len(hub.clients["vendor-1"]) == 1
	}, time.Second, 10*time.Millisecond)

	hub.Broadcast(Event{Type: "inquiry.created", VendorID: "vendor-1", Payload: map[string]int{"pending": 3}})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, message, err := conn.ReadMessage()
	require.NoError(t, err)

	var got Event
	require.NoError(t, json.Unmarshal(message, &got))
	assert.Equal(t, "inquiry.created", got.Type)
	assert.Equal(t, "vendor-1", got.VendorID)
}

// Broadcasts arrive from arbitrary request goroutines, so concurrent calls
// for the same vendor must all come through as intact frames.
func TestHubBroadcastConcurrent(t *testing.T) {
	const (
		goroutines = 8
		perSender  = 5
	)

	hub := NewHub()
	conn := dialTestHub(t, hub, "vendor-1")

	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return len(hub.clients["vendor-1"]) == 1
	}, time.Second, 10*time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perSender; j++ {
				hub.Broadcast(Event{Type: "inquiry.created", VendorID: "vendor-1"})
			}
		}()
	}
	wg.Wait()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for i := 0; i < goroutines*perSender; i++ {
		_, message, err := conn.ReadMessage()
		require.NoError(t, err, "message %d", i)

		var got Event
		require.NoError(t, json.Unmarshal(message, &got), "message %d", i)
		assert.Equal(t, "inquiry.created", got.Type)
		assert.Equal(t, "vendor-1", got.VendorID)
	}
}

func TestHubBroadcastNoClients(t *testing.T) {
	hub := NewHub()
	// Must be a no-op, not a panic.
	hub.Broadcast(Event{Type: "inquiry.created", VendorID: "nobody"})
}

func TestHubDropRemovesVendorEntry(t *testing.T) {
	hub := NewHub()
	conn := dialTestHub(t, hub, "vendor-1")

	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return len(hub.clients["vendor-1"]) == 1
	}, time.Second, 10*time.Millisecond)

	conn.Close()

	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		_, ok := hub.clients["vendor-1"]
		return !ok
	}, time.Second, 10*time.Millisecond)
}
