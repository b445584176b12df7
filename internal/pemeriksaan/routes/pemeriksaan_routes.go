package routes

import (
	"github.com/c14220110/radiologi-backend/internal/pemeriksaan/controllers"
	"github.com/labstack/echo/v4"
)

// RegisterTarifRoutes menghubungkan endpoint katalog tarif. Katalog tidak butuh sesi.
func RegisterTarifRoutes(api *echo.Group, tc *controllers.TarifController) {
	tarif := api.Group("/tarif")
	tarif.GET("", tc.ListTarif)
	tarif.GET("/:jenis", tc.GetTarif)
}

// RegisterPemeriksaanRoutes menghubungkan endpoint data pemeriksaan. Semua
// endpoint memakai sesi supaya hapus dua tahap tersimpan per browser.
func RegisterPemeriksaanRoutes(api *echo.Group, pc *controllers.PemeriksaanController, sesi echo.MiddlewareFunc) {
	pemeriksaan := api.Group("/pemeriksaan", sesi)
	pemeriksaan.GET("", pc.ListPemeriksaan)
	pemeriksaan.POST("", pc.CreatePemeriksaan)
	pemeriksaan.GET("/export", pc.ExportPemeriksaan)
	pemeriksaan.PUT("/:id", pc.UpdatePemeriksaan)

	hapus := pemeriksaan.Group("/hapus")
	hapus.POST("", pc.RequestHapus)
	hapus.POST("/konfirmasi", pc.KonfirmasiHapus)
	hapus.POST("/batal", pc.BatalHapus)
}
