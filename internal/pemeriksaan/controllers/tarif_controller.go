package controllers

import (
	"net/http"

	"github.com/c14220110/radiologi-backend/internal/pemeriksaan/models"
	"github.com/c14220110/radiologi-backend/internal/pemeriksaan/tarif"
	"github.com/labstack/echo/v4"
)

type TarifController struct{}

func NewTarifController() *TarifController {
	return &TarifController{}
}

type jenisTarif struct {
	JenisPemeriksaan string `json:"jenis_pemeriksaan"`
	tarif.Entry
}

// ListTarif mengembalikan seluruh katalog tarif beserta pilihan tetap form.
func (tc *TarifController) ListTarif(c echo.Context) error {
	katalog := make([]jenisTarif, 0)
	for _, jenis := range tarif.JenisPemeriksaan() {
		katalog = append(katalog, jenisTarif{JenisPemeriksaan: jenis, Entry: tarif.Lookup(jenis)})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Katalog tarif berhasil diambil",
		"data": map[string]interface{}{
			"katalog":             katalog,
			"jasa_radiografer":    tarif.JasaRadiografer,
			"jasa_bahaya_radiasi": tarif.JasaBahayaRadiasi,
			"kode_penjamin":       models.KodePenjaminList,
			"jenis_kelamin":       models.JenisKelaminList,
			"kelas":               models.KelasList,
			"jenis_dokter":        models.JenisDokterList,
			"dokter_pengirim":     models.DokterPengirimList,
			"pengulangan_foto":    models.PengulanganFotoList,
			"radiografer":         models.RadiograferList,
		},
	})
}

// GetTarif mengembalikan pilihan tarif dan jasa dokter untuk satu jenis pemeriksaan.
// Jenis yang tidak dikenal menghasilkan pilihan kosong (isian bebas), bukan error.
func (tc *TarifController) GetTarif(c echo.Context) error {
	jenis := c.Param("jenis")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Pilihan tarif berhasil diambil",
		"data": map[string]interface{}{
			"jenis_pemeriksaan": jenis,
			"dikenal":           tarif.Known(jenis),
			"tarif":             tarif.Lookup(jenis).Tarif,
			"jasa":              tarif.Lookup(jenis).Jasa,
		},
	})
}
