package ws

import (
	"encoding/json"
	"sync"
)

// Event represents a WebSocket message to be broadcast
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// kindEvent is an internal struct for routing events to one document kind's room
type kindEvent struct {
	Kind  string
	Event Event
}

// Hub maintains the set of active clients and broadcasts submission
// events to them, one room per document kind
type Hub struct {
	// Registered clients by document kind
	rooms map[string]map[*Client]bool

	// Inbound messages from clients (register/unregister)
	register   chan *Client
	unregister chan *Client

	// Outbound messages to broadcast
	broadcast chan *kindEvent

	// Mutex for thread-safe room access
	mu sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *kindEvent, 256),
	}
}

// Run starts the hub's main loop
// This should be called as a goroutine: go hub.Run()
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.kind] == nil {
				h.rooms[client.kind] = make(map[*Client]bool)
			}
			h.rooms[client.kind][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[client.kind]; ok {
				if _, exists := clients[client]; exists {
					delete(clients, client)
					close(client.send)
					// Clean up empty rooms
					if len(clients) == 0 {
						delete(h.rooms, client.kind)
					}
				}
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.Lock()
			clients := h.rooms[event.Kind]

			// Marshal event to JSON once
			message, err := json.Marshal(event.Event)
			if err != nil {
				h.mu.Unlock()
				continue
			}

			// Send to all clients in this kind's room
			for client := range clients {
				select {
				case client.send <- message:
				default:
					// Client's send buffer is full, close and unregister
					close(client.send)
					delete(h.rooms[event.Kind], client)
					if len(h.rooms[event.Kind]) == 0 {
						delete(h.rooms, event.Kind)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast queues an event for every client subscribed to the given
// document kind. Non-blocking: drops the event if the hub is backed up.
func (h *Hub) Broadcast(kind string, event Event) {
	select {
	case h.broadcast <- &kindEvent{Kind: kind, Event: event}:
	default:
	}
}

// ClientCount returns the number of clients subscribed to a kind.
func (h *Hub) ClientCount(kind string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[kind])
}
