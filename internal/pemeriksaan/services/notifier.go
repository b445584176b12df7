package services

import (
	"log/slog"
	"sync"
)

// Notifier menyampaikan notifikasi singkat ke pengguna (toast).
type Notifier interface {
	Sukses(pesan string)
	Gagal(pesan string)
}

// LogNotifier menulis notifikasi ke log; dipakai server dan CLI.
type LogNotifier struct {
	Log *slog.Logger
}

func (n LogNotifier) Sukses(pesan string) { n.Log.Info(pesan) }

func (n LogNotifier) Gagal(pesan string) { n.Log.Warn(pesan) }

type Notifikasi struct {
	Sukses bool
	Pesan  string
}

// NotifikasiRecorder menyimpan semua notifikasi yang masuk.
type NotifikasiRecorder struct {
	mu    sync.Mutex
	items []Notifikasi
}

func (r *NotifikasiRecorder) Sukses(pesan string) { r.add(true, pesan) }

func (r *NotifikasiRecorder) Gagal(pesan string) { r.add(false, pesan) }

func (r *NotifikasiRecorder) add(ok bool, pesan string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, Notifikasi{Sukses: ok, Pesan: pesan})
}

func (r *NotifikasiRecorder) Items() []Notifikasi {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notifikasi, len(r.items))
	copy(out, r.items)
	return out
}

type nopNotifier struct{}

func (nopNotifier) Sukses(string) {}
func (nopNotifier) Gagal(string)  {}
