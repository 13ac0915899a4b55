// Package ws fans storage change notifications out to connected UI clients.
// The browser original broadcast in-page events; here every open view holds a
// websocket and re-fetches the affected table when a channel message arrives.
package ws

import (
	"encoding/json"
	"sync"
	"time"

	"autoluxe/pkg/logger"
)

type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *logger.Logger
}

// Message mirrors the notification channels: the channel name plus an
// optional payload (only mail-incoming carries one).
type Message struct {
	Channel   string      `json:"channel"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

// Broadcast queues a channel notification for every connected client.
func (h *Hub) Broadcast(channel string, payload interface{}) {
	message := Message{
		Channel:   channel,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}
	data, err := json.Marshal(message)
	if err != nil {
		h.logger.WithError(err).Error("failed to marshal broadcast message")
		return
	}

	select {
	case h.broadcast <- data:
	default:
		h.logger.WithField("channel", channel).Warn("broadcast queue full, dropping notification")
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.clients[client] = true
	h.logger.WithField("clients", len(h.clients)).Debug("websocket client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
		h.logger.WithField("clients", len(h.clients)).Debug("websocket client unregistered")
	}
}

func (h *Hub) broadcastMessage(message []byte) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		select {
		case client.send <- message:
		default:
			close(client.send)
			delete(h.clients, client)
		}
	}
}
