package live

import (
	"sync"

	"github.com/gorilla/websocket"
)

// ChangeEvent is pushed to every connected dashboard after a successful
// project or equipment write, so clients refetch calendars and reports
// instead of rendering a stale overuse view.
type ChangeEvent struct {
	Type    string `json:"type"`
	Version uint64 `json:"version"`
}

type Hub struct {
	connections map[*websocket.Conn]struct{}
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[*websocket.Conn]struct{}),
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.connections[conn] = struct{}{}
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, exists := h.connections[conn]; exists {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}

// NotifyDataChanged broadcasts a change event to every connection. Dead
// connections are dropped on write failure. The write lock is held for
// the whole broadcast; gorilla connections allow only one writer at a
// time.
func (h *Hub) NotifyDataChanged(resource string, version uint64) {
	event := ChangeEvent{Type: resource + "_changed", Version: version}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.connections {
		if err := conn.WriteJSON(event); err != nil {
			_ = conn.Close()
			delete(h.connections, conn)
		}
	}
}

func (h *Hub) ConnectionCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}
