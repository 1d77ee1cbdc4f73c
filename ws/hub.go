package ws

// Hub bertanggung jawab untuk:
// menyimpan koneksi client, menerima event dari service, dan
// melakukan broadcast event ke seluruh client yang terhubung.

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Client mewakili koneksi WebSocket
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub mengelola semua koneksi client
type Hub struct {
	Clients    map[*Client]bool
	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client

	log      zerolog.Logger
	done     chan struct{}
	doneOnce sync.Once
	mu       sync.RWMutex
}

func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Broadcast:  make(chan []byte, 256),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		log:        logger,
		done:       make(chan struct{}),
	}
}

// Run memproses register/unregister/broadcast sampai ctx dibatalkan.
func (h *Hub) Run(ctx context.Context) {
	defer h.doneOnce.Do(func() { close(h.done) })
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.Clients {
				close(client.Send)
				delete(h.Clients, client)
			}
			h.mu.Unlock()
			return
		case client := <-h.Register:
			h.mu.Lock()
			h.Clients[client] = true
			h.mu.Unlock()
			h.log.Debug().Msg("client registered")
		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
				h.log.Debug().Msg("client unregistered")
			}
			h.mu.Unlock()
		case message := <-h.Broadcast:
			h.mu.Lock()
			for client := range h.Clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.Clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish meng-encode v sebagai JSON lalu mengantrekannya untuk broadcast.
// Tidak pernah memblok: bila antrean penuh event dibuang.
func (h *Hub) Publish(v interface{}) {
	message, err := json.Marshal(v)
	if err != nil {
		h.log.Error().Err(err).Msg("gagal encode event")
		return
	}
	select {
	case h.Broadcast <- message:
	default:
		h.log.Warn().Msg("antrean broadcast penuh, event dibuang")
	}
}

// ClientCount mengembalikan jumlah client yang sedang terhubung.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.Clients)
}

func (h *Hub) register(c *Client) bool {
	select {
	case h.Register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) unregister(c *Client) {
	select {
	case h.Unregister <- c:
	case <-h.done:
	}
}
