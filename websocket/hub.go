package websocket

import (
	"context"
	"log"
	"sync"

	"github.com/anjiri1684/faq_board/models"
)

// Conn is the part of a websocket connection the hub writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

type Client struct {
	Conn Conn
}

// Hub fans board events out to every connected client. Publish never blocks
// the caller; when the buffer is full the event is dropped.
type Hub struct {
	clients    map[*Client]struct{}
	clientsMu  sync.RWMutex
	register   chan *Client
	unregister chan *Client
	broadcast  chan models.BoardEvent
	done       chan struct{}
}

func NewHub(buffer int) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan models.BoardEvent, buffer),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case client := <-h.register:
			h.clientsMu.Lock()
			h.clients[client] = struct{}{}
			h.clientsMu.Unlock()
		case client := <-h.unregister:
			h.clientsMu.Lock()
			delete(h.clients, client)
			h.clientsMu.Unlock()
		case evt := <-h.broadcast:
			h.deliver(evt)
		}
	}
}

func (h *Hub) deliver(evt models.BoardEvent) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	for client := range h.clients {
		if err := client.Conn.WriteJSON(evt); err != nil {
			log.Printf("Error sending board event to client: %v", err)
			client.Conn.Close()
			delete(h.clients, client)
		}
	}
}

func (h *Hub) closeAll() {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	for client := range h.clients {
		client.Conn.Close()
		delete(h.clients, client)
	}
}

// Register adds conn to the hub. It returns nil once the hub has stopped.
func (h *Hub) Register(conn Conn) *Client {
	client := &Client{Conn: conn}
	select {
	case h.register <- client:
		return client
	case <-h.done:
		return nil
	}
}

func (h *Hub) Unregister(client *Client) {
	if client == nil {
		return
	}
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) Publish(evt models.BoardEvent) {
	select {
	case h.broadcast <- evt:
	default:
		log.Printf("⚠️ Board event buffer full, dropping %s for %s", evt.Type, evt.ID)
	}
}

func (h *Hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}
