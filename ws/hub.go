package ws

// Hub bertanggung jawab untuk:
// menyimpan koneksi client, menerima event perubahan data pemeriksaan,
// lalu mem-broadcast event tersebut ke seluruh client yang terhubung.

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/c14220110/radiologi-backend/internal/pemeriksaan/models"
	"github.com/gorilla/websocket"
)

// TipePemeriksaanUpdate dipakai client untuk memuat ulang daftar bulan yang terdampak.
const TipePemeriksaanUpdate = "pemeriksaan_update"

// Client mewakili koneksi WebSocket
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Pesan adalah amplop JSON yang dikirim ke client.
type Pesan struct {
	Type string       `json:"type"`
	Data models.Event `json:"data"`
}

// Hub mengelola semua koneksi client
type Hub struct {
	Clients    map[*Client]bool
	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client

	done chan struct{}
	log  *slog.Logger
}

func NewHub(log *slog.Logger) *Hub {
	if log == nil {
		log = slog.Default()
	}
	return &Hub{
		Clients:    make(map[*Client]bool),
		Broadcast:  make(chan []byte, 64),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Run melayani register, unregister, dan broadcast sampai ctx selesai.
// Saat berhenti semua channel Send client ditutup.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			for client := range h.Clients {
				close(client.Send)
				delete(h.Clients, client)
			}
			return
		case client := <-h.Register:
			h.Clients[client] = true
			h.log.Debug("client websocket terdaftar", "jumlah", len(h.Clients))
		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
				h.log.Debug("client websocket keluar", "jumlah", len(h.Clients))
			}
		case message := <-h.Broadcast:
			h.log.Debug("broadcast pesan", "pesan", string(message))
			for client := range h.Clients {
				select {
				case client.Send <- message:
				default:
					// Client lambat diputus supaya broadcast tidak tertahan.
					close(client.Send)
					delete(h.Clients, client)
				}
			}
		}
	}
}

// BroadcastEvent mengirim event create/update/delete ke semua client.
// Tidak memblok: bila antrean broadcast penuh, event dibuang dan dicatat.
func (h *Hub) BroadcastEvent(ev models.Event) {
	msg, err := json.Marshal(Pesan{Type: TipePemeriksaanUpdate, Data: ev})
	if err != nil {
		h.log.Error("gagal marshal pesan websocket", "error", err)
		return
	}
	select {
	case h.Broadcast <- msg:
	default:
		h.log.Warn("antrean broadcast penuh, event dibuang", "aksi", ev.Aksi, "id", ev.ID)
	}
}
