package main

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"
)

// Hub fans game events out to every connected websocket client.
type Hub struct {
	mu               sync.Mutex
	clients          map[*Client]struct{}
	broadcastHistory chan historyPayload
	broadcastStatus  chan StatusResponse
	broadcastReset   chan StatusResponse
}

type Client struct {
	hub  *Hub
	send chan []byte
}

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type historyPayload struct {
	History []historyEntryDTO `json:"history"`
}

func NewHub() *Hub {
	return &Hub{
		clients:          make(map[*Client]struct{}),
		broadcastHistory: make(chan historyPayload, 32),
		broadcastStatus:  make(chan StatusResponse, 32),
		broadcastReset:   make(chan StatusResponse, 8),
	}
}

func (h *Hub) Run(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case payload := <-h.broadcastHistory:
			h.broadcast(wsMessage{Type: "history", Payload: mustMarshal(payload)})
		case payload := <-h.broadcastStatus:
			h.broadcast(wsMessage{Type: "status", Payload: mustMarshal(payload)})
		case payload := <-h.broadcastReset:
			h.broadcast(wsMessage{Type: "reset", Payload: mustMarshal(payload)})
		}
	}
}

func (h *Hub) broadcast(msg wsMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		client.sendJSON(msg)
	}
}

// PublishMove queues the latest history entry and the new status. Events are
// dropped when the queue is full, e.g. once Run has stopped.
func (h *Hub) PublishMove(entry HistoryEntry, status StatusResponse) {
	enqueue(h.broadcastHistory, historyPayload{History: []historyEntryDTO{historyEntryToDTO(entry)}}, "history")
	enqueue(h.broadcastStatus, status, "status")
}

func (h *Hub) PublishReset(status StatusResponse) {
	enqueue(h.broadcastReset, status, "reset")
}

func enqueue[T any](ch chan<- T, payload T, kind string) bool {
	select {
	case ch <- payload:
		return true
	default:
		log.Warn().Str("type", kind).Msg("hub queue full, dropping event")
		return false
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()
	log.Debug().Int("clients", count).Msg("ws client connected")
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// sendJSON drops the message when the client's buffer is full.
func (c *Client) sendJSON(msg wsMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
		log.Warn().Str("type", msg.Type).Msg("ws client buffer full, dropping message")
	}
}
