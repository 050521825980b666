package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub fans out live election updates (tally changes, winner declarations) to
// every client watching an election.
type Hub struct {
	mu        sync.RWMutex
	elections map[uint]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		elections: make(map[uint]map[*websocket.Conn]bool),
	}
}

func (h *Hub) AddConnection(electionID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.elections[electionID] == nil {
		h.elections[electionID] = make(map[*websocket.Conn]bool)
	}
	h.elections[electionID][conn] = true
	log.Printf("ws: client connected to election %d (total: %d)", electionID, len(h.elections[electionID]))
}

func (h *Hub) RemoveConnection(electionID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.elections[electionID]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.elections, electionID)
		}
		log.Printf("ws: client disconnected from election %d", electionID)
	}
}

// Broadcast sends message to every client watching the election. It holds the
// write lock for the whole fan-out: each connection allows at most one
// concurrent writer, and failed connections are pruned from the shared map.
func (h *Hub) Broadcast(electionID uint, message WSMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.elections[electionID]
	if !ok {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write error: %v", err)
			conn.Close()
			delete(conns, conn)
		}
	}
	if len(conns) == 0 {
		delete(h.elections, electionID)
	}
}
