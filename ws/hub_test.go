package ws

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/c14220110/radiologi-backend/internal/pemeriksaan/models"
	"github.com/c14220110/radiologi-backend/pkg/logger"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_BroadcastEventReachesClient(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(logger.Discard())
	go hub.Run(ctx)

	e := echo.New()
	e.GET("/ws", ServeWS(hub))
	srv := httptest.NewServer(e)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	ev := models.Event{Aksi: models.AksiCreate, ID: "abc", Bulan: "2024-02"}
	// Register diproses secara asinkron; kirim ulang sampai pesan diterima.
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	received := make(chan []byte, 1)
	go func() {
		_, msg, err := conn.ReadMessage()
		if err == nil {
			received <- msg
		}
	}()

	var msg []byte
	deadline := time.After(5 * time.Second)
loop:
	for {
		hub.BroadcastEvent(ev)
		select {
		case msg = <-received:
			break loop
		case <-deadline:
			t.Fatal("pesan websocket tidak diterima")
		case <-time.After(50 * time.Millisecond):
		}
	}

	var got Pesan
	require.NoError(t, json.Unmarshal(msg, &got))
	assert.Equal(t, TipePemeriksaanUpdate, got.Type)
	assert.Equal(t, ev, got.Data)
}

func TestHub_BroadcastEventDoesNotBlockWithoutRunner(t *testing.T) {
	hub := NewHub(logger.Discard())
	done := make(chan struct{})
	go func() {
		for i := 0; i < cap(hub.Broadcast)+10; i++ {
			hub.BroadcastEvent(models.Event{Aksi: models.AksiDelete, ID: "x"})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("BroadcastEvent memblok")
	}
	assert.Len(t, hub.Broadcast, cap(hub.Broadcast))
}

func TestHub_RunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(logger.Discard())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	client := &Client{Send: make(chan []byte, 1)}
	hub.Register <- client
	cancel()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("hub tidak berhenti")
	}
	_, open := <-client.Send
	assert.False(t, open)
}
