package controllers

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/c14220110/radiologi-backend/internal/common/middlewares"
	"github.com/c14220110/radiologi-backend/internal/pemeriksaan/models"
	"github.com/c14220110/radiologi-backend/internal/pemeriksaan/services"
	"github.com/labstack/echo/v4"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	pesanKonfirmasiHapus = "Apakah Anda yakin ingin menghapus data pemeriksaan ini? Tindakan ini tidak dapat dibatalkan."
)

type PemeriksaanController struct {
	Sesi *services.SesiRegistry
	Log  *slog.Logger
	// Now dipakai untuk bulan default daftar; diganti di test.
	Now func() time.Time
}

func NewPemeriksaanController(sesi *services.SesiRegistry, log *slog.Logger, loc *time.Location) *PemeriksaanController {
	if loc == nil {
		loc = time.UTC
	}
	return &PemeriksaanController{
		Sesi: sesi,
		Log:  log,
		Now:  func() time.Time { return time.Now().In(loc) },
	}
}

// ListPemeriksaan mengembalikan data satu bulan (query bulan=yyyy-MM, default bulan ini).
func (pc *PemeriksaanController) ListPemeriksaan(c echo.Context) error {
	now := pc.Now()
	bulan := strings.TrimSpace(c.QueryParam("bulan"))
	if bulan == "" {
		bulan = now.Format("2006-01")
	}

	listing := pc.Sesi.Listing(middlewares.SesiID(c))
	data, err := listing.SelectMonth(c.Request().Context(), bulan)
	if err != nil {
		return pc.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Data pemeriksaan berhasil diambil",
		"data": map[string]interface{}{
			"bulan":          bulan,
			"pemeriksaan":    data,
			"pilihan_bulan":  services.RecentMonths(now, 12),
			"hapus_menunggu": pendingOrNil(listing),
		},
	})
}

// CreatePemeriksaan menyimpan record baru dari isian form.
func (pc *PemeriksaanController) CreatePemeriksaan(c echo.Context) error {
	var req models.FormPemeriksaan
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request body: " + err.Error(),
			"data":    nil,
		})
	}

	form := pc.Sesi.Form(middlewares.SesiID(c))
	record, err := form.SubmitCreate(c.Request().Context(), req)
	if err != nil {
		return pc.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"status":  http.StatusCreated,
		"message": services.PesanSimpanBerhasil,
		"data":    record,
	})
}

// UpdatePemeriksaan mengganti seluruh isi record :id.
func (pc *PemeriksaanController) UpdatePemeriksaan(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "id harus diberikan",
			"data":    nil,
		})
	}

	var req models.FormPemeriksaan
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request body: " + err.Error(),
			"data":    nil,
		})
	}

	form := pc.Sesi.Form(middlewares.SesiID(c))
	record, err := form.SubmitEdit(c.Request().Context(), id, req)
	if err != nil {
		return pc.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": services.PesanUpdateBerhasil,
		"data":    record,
	})
}

type hapusRequest struct {
	ID string `json:"id"`
}

// RequestHapus menandai record untuk dihapus; belum ada yang dihapus sampai dikonfirmasi.
func (pc *PemeriksaanController) RequestHapus(c echo.Context) error {
	var req hapusRequest
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.ID) == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "id harus diberikan",
			"data":    nil,
		})
	}

	id := strings.TrimSpace(req.ID)
	pc.Sesi.Listing(middlewares.SesiID(c)).RequestDelete(id)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": pesanKonfirmasiHapus,
		"data":    map[string]interface{}{"id": id},
	})
}

// KonfirmasiHapus menghapus record yang menunggu konfirmasi di sesi ini.
func (pc *PemeriksaanController) KonfirmasiHapus(c echo.Context) error {
	listing := pc.Sesi.Listing(middlewares.SesiID(c))
	id, _ := listing.PendingDelete()
	if err := listing.ConfirmDelete(c.Request().Context()); err != nil {
		return pc.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": services.PesanHapusBerhasil,
		"data": map[string]interface{}{
			"id":          id,
			"pemeriksaan": listing.Records(),
		},
	})
}

func (pc *PemeriksaanController) BatalHapus(c echo.Context) error {
	pc.Sesi.Listing(middlewares.SesiID(c)).CancelDelete()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Penghapusan dibatalkan",
		"data":    nil,
	})
}

// ExportPemeriksaan mengunduh daftar bulan yang sedang tampil sebagai file Excel.
// Query bulan, bila ada dan berbeda, memuat bulan tersebut terlebih dahulu.
func (pc *PemeriksaanController) ExportPemeriksaan(c echo.Context) error {
	listing := pc.Sesi.Listing(middlewares.SesiID(c))
	bulan := strings.TrimSpace(c.QueryParam("bulan"))
	if bulan == "" && listing.Month() == "" {
		bulan = pc.Now().Format("2006-01")
	}
	if bulan != "" && bulan != listing.Month() {
		if _, err := listing.SelectMonth(c.Request().Context(), bulan); err != nil {
			return pc.respondError(c, err)
		}
	}

	var buf bytes.Buffer
	fileName, err := listing.ExportCurrentMonth(&buf)
	if err != nil {
		return pc.respondError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return c.Blob(http.StatusOK, mimeXLSX, buf.Bytes())
}

// respondError memetakan error service ke status HTTP dengan envelope standar.
func (pc *PemeriksaanController) respondError(c echo.Context, err error) error {
	var (
		verrs  services.ValidationErrors
		serr   *services.StoreError
		eksErr *services.ExportPreconditionError
	)
	status, message := http.StatusInternalServerError, err.Error()
	var data interface{}

	switch {
	case errors.As(err, &verrs):
		status, message, data = http.StatusBadRequest, "Data tidak valid", verrs
	case errors.As(err, &eksErr):
		status, message = http.StatusBadRequest, services.PesanExportKosong
	case errors.Is(err, services.ErrBulanTidakValid), errors.Is(err, services.ErrTidakAdaHapus):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrSedangDiproses):
		status = http.StatusConflict
	case errors.Is(err, services.ErrNotFound):
		status, message = http.StatusNotFound, services.ErrNotFound.Error()
	case errors.As(err, &serr):
		message = serr.Pesan
	default:
		pc.Log.Error("permintaan pemeriksaan gagal", "path", c.Path(), "error", err)
		message = "Terjadi kesalahan pada server"
	}

	return c.JSON(status, map[string]interface{}{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func pendingOrNil(l *services.Listing) interface{} {
	if id, ok := l.PendingDelete(); ok {
		return id
	}
	return nil
}
