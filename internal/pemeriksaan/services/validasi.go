package services

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/c14220110/radiologi-backend/internal/pemeriksaan/models"
	"github.com/c14220110/radiologi-backend/internal/pemeriksaan/tarif"
)

// Validator memeriksa nilai form sebelum disimpan.
// StrictTarif menolak tarif/jasa dokter di luar katalog bila jenis
// pemeriksaan punya pilihan tetap.
type Validator struct {
	StrictTarif bool
}

// ValidatePemeriksaan memakai Validator dengan pemeriksaan katalog aktif.
func ValidatePemeriksaan(f models.FormPemeriksaan) (models.Pemeriksaan, ValidationErrors) {
	return Validator{StrictTarif: true}.Validate(f)
}

var wajib = map[string]string{
	"kode_penjamin":       "Kode penjamin wajib diisi",
	"tgl_pemeriksaan":     "Tanggal pemeriksaan wajib diisi",
	"nama_pasien":         "Nama pasien wajib diisi",
	"jenis_kelamin":       "Jenis kelamin wajib diisi",
	"kelas":               "Kelas wajib diisi",
	"jenis_dokter":        "Jenis dokter wajib diisi",
	"dokter_pengirim":     "Dokter pengirim wajib diisi",
	"pengulangan_foto":    "Pengulangan foto wajib diisi",
	"radiografer":         "Radiografer wajib diisi",
	"jasa_radiografer":    "Jasa radiografer wajib diisi",
	"jasa_bahaya_radiasi": "Jasa bahaya radiasi wajib diisi",
	"jenis_pemeriksaan":   "Jenis pemeriksaan wajib diisi",
	"tarif_pemeriksaan":   "Tarif pemeriksaan wajib diisi",
	"jasa_dokter":         "Jasa dokter wajib diisi",
}

// Validate mengembalikan record yang sudah dinormalisasi, atau pesan per field.
// Tidak ada efek samping.
func (v Validator) Validate(f models.FormPemeriksaan) (models.Pemeriksaan, ValidationErrors) {
	errs := ValidationErrors{}

	for _, field := range f.Fields() {
		*field.Value = strings.TrimSpace(*field.Value)
		if pesan, ok := wajib[field.Name]; ok && *field.Value == "" {
			errs[field.Name] = pesan
		}
	}

	pilihan := func(name, value string, list []string) {
		if _, kosong := errs[name]; kosong {
			return
		}
		if !models.Contains(list, value) {
			errs[name] = "Pilihan tidak valid: " + value
		}
	}
	pilihan("kode_penjamin", f.KodePenjamin, models.KodePenjaminList)
	pilihan("jenis_kelamin", f.JenisKelamin, models.JenisKelaminList)
	pilihan("kelas", f.Kelas, models.KelasList)
	pilihan("jenis_dokter", f.JenisDokter, models.JenisDokterList)
	pilihan("dokter_pengirim", f.DokterPengirim, models.DokterPengirimList)
	pilihan("pengulangan_foto", f.PengulanganFoto, models.PengulanganFotoList)
	pilihan("radiografer", f.Radiografer, models.RadiograferList)
	pilihan("jenis_pemeriksaan", f.JenisPemeriksaan, tarif.JenisPemeriksaan())

	angka := func(name, value string) int {
		if _, kosong := errs[name]; kosong {
			return 0
		}
		n, err := strconv.Atoi(value)
		if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(value, "-") {
			errs[name] = PesanNominalTerlaluBesar
			return 0
		}
		if err != nil {
			errs[name] = "Harus berupa angka bulat"
			return 0
		}
		if n < 0 {
			errs[name] = "Tidak boleh negatif"
			return 0
		}
		// Kolom nominal bertipe INT.
		if n > math.MaxInt32 {
			errs[name] = PesanNominalTerlaluBesar
			return 0
		}
		return n
	}
	jasaRadiografer := angka("jasa_radiografer", f.JasaRadiografer)
	jasaBahaya := angka("jasa_bahaya_radiasi", f.JasaBahayaRadiasi)
	tarifPemeriksaan := angka("tarif_pemeriksaan", f.TarifPemeriksaan)
	jasaDokter := angka("jasa_dokter", f.JasaDokter)

	if _, gagal := errs["jasa_radiografer"]; !gagal && !tarif.ContainsInt(tarif.JasaRadiografer, jasaRadiografer) {
		errs["jasa_radiografer"] = "Jasa radiografer harus salah satu dari 5000, 6000, 7000, 8000"
	}
	if _, gagal := errs["jasa_bahaya_radiasi"]; !gagal && !tarif.ContainsInt(tarif.JasaBahayaRadiasi, jasaBahaya) {
		errs["jasa_bahaya_radiasi"] = "Jasa bahaya radiasi harus salah satu dari 3500, 4200, 5000, 6000"
	}

	if v.StrictTarif {
		if _, gagal := errs["jenis_pemeriksaan"]; !gagal {
			entry := tarif.Lookup(f.JenisPemeriksaan)
			if _, gagal := errs["tarif_pemeriksaan"]; !gagal && !entry.AllowsTarif(tarifPemeriksaan) {
				errs["tarif_pemeriksaan"] = "Tarif tidak tersedia untuk " + f.JenisPemeriksaan
			}
			if _, gagal := errs["jasa_dokter"]; !gagal && !entry.AllowsJasa(jasaDokter) {
				errs["jasa_dokter"] = "Jasa dokter tidak tersedia untuk " + f.JenisPemeriksaan
			}
		}
	}

	var tanggal string
	if _, kosong := errs["tgl_pemeriksaan"]; !kosong {
		t, err := time.Parse(models.LayoutTanggal, f.TglPemeriksaan)
		if err != nil {
			errs["tgl_pemeriksaan"] = "Format tanggal tidak valid. Gunakan format YYYY-MM-DD"
		} else {
			tanggal = t.Format(models.LayoutTanggal)
		}
	}

	if len(errs) > 0 {
		return models.Pemeriksaan{}, errs
	}

	return models.Pemeriksaan{
		No:                      models.Opsional(f.No),
		KodePenjamin:            f.KodePenjamin,
		TglPemeriksaan:          tanggal,
		NamaPasien:              f.NamaPasien,
		JenisKelamin:            f.JenisKelamin,
		Kelas:                   f.Kelas,
		JenisDokter:             f.JenisDokter,
		DokterPengirim:          f.DokterPengirim,
		JumlahFilm:              models.Opsional(f.JumlahFilm),
		PengulanganFoto:         f.PengulanganFoto,
		PenggunaanFaktorEksposi: models.Opsional(f.PenggunaanFaktorEksposi),
		Radiografer:             f.Radiografer,
		JasaRadiografer:         jasaRadiografer,
		JasaBahayaRadiasi:       jasaBahaya,
		JenisPemeriksaan:        f.JenisPemeriksaan,
		TarifPemeriksaan:        tarifPemeriksaan,
		JasaDokter:              jasaDokter,
	}, nil
}
