package services

import (
	"fmt"
	"io"
	"time"

	"github.com/c14220110/radiologi-backend/internal/pemeriksaan/models"
	"github.com/goodsign/monday"
	"github.com/xuri/excelize/v2"
)

const SheetExport = "Data Pemeriksaan"

// KolomExport adalah judul kolom file Excel, dalam urutan tetap.
var KolomExport = []string{
	"NO",
	"Kode Penjamin",
	"Tanggal Pemeriksaan",
	"Nama Pasien",
	"Jenis Kelamin",
	"Kelas",
	"Jenis Dokter",
	"Dokter Pengirim",
	"Jumlah Film",
	"Pengulangan Foto",
	"Penggunaan Faktor Eksposi",
	"Radiografer",
	"Jasa Radiografer",
	"Jasa Bahaya Radiasi",
	"Jenis Pemeriksaan",
	"Tarif Pemeriksaan",
	"Jasa Dokter",
}

// BarisExport mengubah record menjadi satu baris sesuai KolomExport.
// Field teks opsional yang kosong ditulis "-", nominal tetap angka mentah.
func BarisExport(p models.Pemeriksaan) []interface{} {
	return []interface{}{
		atauStrip(p.No),
		p.KodePenjamin,
		TanggalPanjang(p.TglPemeriksaan),
		p.NamaPasien,
		p.JenisKelamin,
		p.Kelas,
		p.JenisDokter,
		p.DokterPengirim,
		atauStrip(p.JumlahFilm),
		p.PengulanganFoto,
		atauStrip(p.PenggunaanFaktorEksposi),
		p.Radiografer,
		p.JasaRadiografer,
		p.JasaBahayaRadiasi,
		p.JenisPemeriksaan,
		p.TarifPemeriksaan,
		p.JasaDokter,
	}
}

// TulisExcel menulis workbook berisi satu sheet "Data Pemeriksaan" ke w.
func TulisExcel(w io.Writer, data []models.Pemeriksaan) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetExport); err != nil {
		return err
	}

	header := make([]interface{}, len(KolomExport))
	for i, k := range KolomExport {
		header[i] = k
	}
	if err := f.SetSheetRow(SheetExport, "A1", &header); err != nil {
		return err
	}

	for i, p := range data {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := BarisExport(p)
		if err := f.SetSheetRow(SheetExport, cell, &row); err != nil {
			return fmt.Errorf("baris %d: %w", i+2, err)
		}
	}

	return f.Write(w)
}

// TanggalPanjang memformat yyyy-MM-dd menjadi "05 Februari 2024".
// Tanggal yang tidak bisa di-parse dikembalikan apa adanya.
func TanggalPanjang(tgl string) string {
	t, err := time.Parse(models.LayoutTanggal, tgl)
	if err != nil {
		return tgl
	}
	return monday.Format(t, "02 January 2006", monday.LocaleIdID)
}

// NamaBulan memformat yyyy-MM menjadi "Februari 2024".
func NamaBulan(bulan string) string {
	t, err := time.Parse(layoutBulan, bulan)
	if err != nil {
		return bulan
	}
	return monday.Format(t, "January 2006", monday.LocaleIdID)
}

// NamaFileExport menghasilkan Data_Pemeriksaan_<Bulan Tahun>.xlsx.
func NamaFileExport(bulan string) string {
	return "Data_Pemeriksaan_" + NamaBulan(bulan) + ".xlsx"
}

func atauStrip(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
