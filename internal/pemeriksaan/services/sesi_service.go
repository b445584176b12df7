package services

import (
	"sync"
	"time"
)

type sesi struct {
	listing  *Listing
	form     *Form
	lastSeen time.Time
}

// SesiRegistry menyimpan satu Listing dan satu Form per sesi browser. Sesi
// yang tidak dipakai lebih lama dari TTL dibuang saat registry diakses.
type SesiRegistry struct {
	TTL        time.Duration
	NewListing func() *Listing
	NewForm    func() *Form
	Now        func() time.Time

	mu    sync.Mutex
	items map[string]*sesi
}

func NewSesiRegistry(ttl time.Duration, newListing func() *Listing, newForm func() *Form) *SesiRegistry {
	return &SesiRegistry{
		TTL:        ttl,
		NewListing: newListing,
		NewForm:    newForm,
		Now:        time.Now,
		items:      map[string]*sesi{},
	}
}

// Listing mengembalikan Listing milik sesi id, membuatnya bila belum ada.
func (r *SesiRegistry) Listing(id string) *Listing {
	return r.ambil(id).listing
}

// Form mengembalikan Form milik sesi id. Submit ganda dalam satu sesi
// tertahan oleh penanda sibuk Form ini.
func (r *SesiRegistry) Form(id string) *Form {
	return r.ambil(id).form
}

// Len mengembalikan jumlah sesi aktif.
func (r *SesiRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

func (r *SesiRegistry) ambil(id string) *sesi {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.Now()
	r.buangKedaluwarsa(now)

	s, ok := r.items[id]
	if !ok {
		s = &sesi{listing: r.NewListing(), form: r.NewForm()}
		r.items[id] = s
	}
	s.lastSeen = now
	return s
}

func (r *SesiRegistry) buangKedaluwarsa(now time.Time) {
	if r.TTL <= 0 {
		return
	}
	for id, s := range r.items {
		if now.Sub(s.lastSeen) > r.TTL {
			delete(r.items, id)
		}
	}
}
