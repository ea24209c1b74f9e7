// Package realtime is the change-subscription channel for dashboard and diner
// clients: a websocket hub keyed by restaurant id. Notifications carry no diff
// payload; subscribers re-fetch on any change.
package realtime

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Event is the any-change ping sent to subscribers of a restaurant's orders.
type Event struct {
	Table        string `json:"table"`
	RestaurantID uint   `json:"restaurant_id"`
}

type Hub struct {
	mu      sync.Mutex
	clients map[uint]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[uint]map[*websocket.Conn]bool)}
}

// Orders is the process-wide hub for order-row changes.
var Orders = NewHub()

// Subscribe registers a connection for a restaurant and blocks reading until
// the peer goes away. Run from the websocket handler goroutine.
func (h *Hub) Subscribe(restaurantID uint, conn *websocket.Conn) {
	h.mu.Lock()
	if h.clients[restaurantID] == nil {
		h.clients[restaurantID] = make(map[*websocket.Conn]bool)
	}
	h.clients[restaurantID][conn] = true
	h.mu.Unlock()

	defer h.remove(restaurantID, conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) remove(restaurantID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients[restaurantID], conn)
	conn.Close()
}

// Notify pings every subscriber of the restaurant. Write failures drop the
// connection; the client re-subscribes.
func (h *Hub) Notify(restaurantID uint) {
	h.mu.Lock()
	defer h.mu.Unlock()
	event := Event{Table: "orders", RestaurantID: restaurantID}
	for conn := range h.clients[restaurantID] {
		if err := conn.WriteJSON(event); err != nil {
			delete(h.clients[restaurantID], conn)
			conn.Close()
		}
	}
}
