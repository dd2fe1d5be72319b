package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	Conn *websocket.Conn
}

// RealtimeHub fans newly logged entries out to every connected client so
// open dashboards update without polling.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// BroadcastEntry sends the payload to all clients; write failures are left
// for each client's read loop to notice and unregister on.
func (h *RealtimeHub) BroadcastEntry(payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
