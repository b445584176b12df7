package services

import (
	"errors"
	"sort"
	"strings"
)

// Pesan untuk pengguna, satu per kategori operasi.
const (
	PesanSimpanBerhasil = "Data berhasil disimpan!"
	PesanUpdateBerhasil = "Data berhasil diupdate!"
	PesanSimpanGagal    = "Gagal menyimpan data. Silakan coba lagi."
	PesanMuatGagal      = "Gagal memuat data"
	PesanHapusBerhasil  = "Data berhasil dihapus"
	PesanHapusGagal     = "Gagal menghapus data"
	PesanExportKosong   = "Tidak ada data untuk diekspor"
	PesanExportGagal    = "Gagal membuat file Excel"

	PesanNominalTerlaluBesar = "Nominal terlalu besar, maksimal 2147483647"
)

var (
	ErrNotFound           = errors.New("data pemeriksaan tidak ditemukan")
	ErrSedangDiproses     = errors.New("permintaan sebelumnya masih diproses")
	ErrBulanTidakValid    = errors.New("format bulan tidak valid, gunakan YYYY-MM")
	ErrTidakAdaHapus      = errors.New("tidak ada data yang menunggu konfirmasi hapus")
	ErrDriverTidakDikenal = errors.New("DB_DRIVER tidak dikenal")
)

// ValidationErrors memetakan nama field ke pesan pelanggaran.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v[f])
	}
	return "validasi gagal: " + strings.Join(parts, "; ")
}

// StoreError membungkus kegagalan penyimpanan. Pesan ditujukan ke pengguna,
// Err menyimpan penyebab aslinya untuk log dan errors.Is.
type StoreError struct {
	Op    string
	Pesan string
	Err   error
}

func (e *StoreError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }

// ExportPreconditionError dikembalikan bila export diminta saat daftar kosong.
type ExportPreconditionError struct {
	Bulan string
}

func (e *ExportPreconditionError) Error() string { return PesanExportKosong }
