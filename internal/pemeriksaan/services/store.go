package services

import (
	"context"
	"fmt"

	"github.com/c14220110/radiologi-backend/internal/pemeriksaan/models"
)

// PemeriksaanStore adalah penyimpanan tabel radiology_examinations.
type PemeriksaanStore interface {
	// Insert menyimpan record baru dan mengembalikan ID yang diberikan penyimpanan.
	Insert(ctx context.Context, p models.Pemeriksaan) (string, error)
	// Update mengganti seluruh record dengan ID tersebut.
	Update(ctx context.Context, id string, p models.Pemeriksaan) error
	Delete(ctx context.Context, id string) error
	// ListByDateRange mengambil record dengan start <= tgl_pemeriksaan <= end (yyyy-MM-dd).
	ListByDateRange(ctx context.Context, start, end string, descending bool) ([]models.Pemeriksaan, error)
}

// Migrator membuat tabel bila belum ada.
type Migrator interface {
	Migrate(ctx context.Context) error
}

func arahUrutan(descending bool) string {
	if descending {
		return "DESC"
	}
	return "ASC"
}

func urutanQuery(descending bool) string {
	// id ikut diurutkan supaya urutan record dengan tanggal sama stabil.
	return fmt.Sprintf(" ORDER BY tgl_pemeriksaan %s, id %s", arahUrutan(descending), arahUrutan(descending))
}
