package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestRegistry(ttl time.Duration) *SesiRegistry {
	store := &MockStore{}
	return NewSesiRegistry(ttl,
		func() *Listing { return newTestListing(store, nil) },
		func() *Form { return newTestForm(store, nil, nil) },
	)
}

func TestSesiRegistry_OneListingPerSession(t *testing.T) {
	reg := newTestRegistry(time.Hour)

	a := reg.Listing("a")
	assert.Same(t, a, reg.Listing("a"))
	assert.Same(t, reg.Form("a"), reg.Form("a"))
	b := reg.Listing("b")
	assert.NotSame(t, a, b)
	assert.NotSame(t, reg.Form("a"), reg.Form("b"))
	assert.Equal(t, 2, reg.Len())

	a.RequestDelete("x")
	_, ok := b.PendingDelete()
	assert.False(t, ok, "hapus yang menunggu tidak bocor ke sesi lain")
}

func TestSesiRegistry_ExpiresIdleSessions(t *testing.T) {
	now := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)
	reg := newTestRegistry(time.Hour)
	reg.Now = func() time.Time { return now }

	lama := reg.Listing("lama")
	now = now.Add(30 * time.Minute)
	reg.Listing("baru")
	assert.Equal(t, 2, reg.Len())

	now = now.Add(45 * time.Minute)
	assert.Same(t, reg.Listing("baru"), reg.Listing("baru"))
	assert.Equal(t, 1, reg.Len())
	assert.NotSame(t, lama, reg.Listing("lama"))
}

func TestSesiRegistry_ZeroTTLNeverExpires(t *testing.T) {
	now := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)
	reg := newTestRegistry(0)
	reg.Now = func() time.Time { return now }

	a := reg.Listing("a")
	now = now.Add(24 * 365 * time.Hour)
	assert.Same(t, a, reg.Listing("a"))
}
