package tarif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_Known(t *testing.T) {
	e := Lookup("THORAX")
	assert.Equal(t, []int{122500, 130500, 145500, 153500}, e.Tarif)
	assert.Equal(t, []int{40000, 46000, 54000, 58000}, e.Jasa)
}

func TestLookup_UltrasoundHasNoFixedJasa(t *testing.T) {
	e := Lookup("USG ABDOMEN")
	assert.True(t, e.HasTarif())
	assert.False(t, e.HasJasa())
	assert.True(t, e.AllowsJasa(125000))
	assert.False(t, e.AllowsJasa(-1))
}

func TestLookup_UnknownIsFreeForm(t *testing.T) {
	for _, jenis := range []string{"", "MRI", "thorax"} {
		e := Lookup(jenis)
		assert.Empty(t, e.Tarif, jenis)
		assert.Empty(t, e.Jasa, jenis)
		assert.True(t, e.AllowsTarif(0), jenis)
		assert.True(t, e.AllowsTarif(999999), jenis)
		assert.False(t, e.AllowsTarif(-5), jenis)
	}
	assert.False(t, Known("MRI"))
}

func TestLookup_ReturnsCopy(t *testing.T) {
	e := Lookup("THORAX")
	e.Tarif[0] = 1
	assert.Equal(t, 122500, Lookup("THORAX").Tarif[0])
}

func TestCatalogMembership(t *testing.T) {
	for _, jenis := range JenisPemeriksaan() {
		e := Lookup(jenis)
		for _, v := range e.Tarif {
			assert.True(t, e.AllowsTarif(v), "%s tarif %d", jenis, v)
		}
		for _, v := range e.Jasa {
			assert.True(t, e.AllowsJasa(v), "%s jasa %d", jenis, v)
		}
		if e.HasTarif() {
			assert.False(t, e.AllowsTarif(e.Tarif[0]+1), "%s harus menolak tarif di luar katalog", jenis)
		}
		if e.HasJasa() {
			assert.False(t, e.AllowsJasa(e.Jasa[0]+1), "%s harus menolak jasa di luar katalog", jenis)
		}
	}
}

func TestJenisPemeriksaan_Order(t *testing.T) {
	list := JenisPemeriksaan()
	require.Len(t, list, 24)
	assert.Equal(t, "THORAX", list[0])
	assert.Equal(t, "USG LAIN LAIN", list[len(list)-1])

	list[0] = "diubah"
	assert.Equal(t, "THORAX", JenisPemeriksaan()[0])
}

func TestUsgLainLain(t *testing.T) {
	assert.True(t, Known("USG LAIN LAIN"))
	e := Lookup("USG LAIN LAIN")
	assert.False(t, e.HasTarif())
	assert.False(t, e.HasJasa())
}
