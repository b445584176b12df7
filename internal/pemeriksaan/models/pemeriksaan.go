package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// LayoutTanggal adalah format tgl_pemeriksaan di penyimpanan (yyyy-MM-dd).
const LayoutTanggal = "2006-01-02"

// Pemeriksaan mewakili satu baris tabel radiology_examinations.
// ID kosong berarti record belum disimpan.
type Pemeriksaan struct {
	ID                      string  `json:"id,omitempty"`
	No                      *string `json:"no"`
	KodePenjamin            string  `json:"kode_penjamin"`
	TglPemeriksaan          string  `json:"tgl_pemeriksaan"`
	NamaPasien              string  `json:"nama_pasien"`
	JenisKelamin            string  `json:"jenis_kelamin"`
	Kelas                   string  `json:"kelas"`
	JenisDokter             string  `json:"jenis_dokter"`
	DokterPengirim          string  `json:"dokter_pengirim"`
	JumlahFilm              *string `json:"jumlah_film"`
	PengulanganFoto         string  `json:"pengulangan_foto"`
	PenggunaanFaktorEksposi *string `json:"penggunaan_faktor_eksposi"`
	Radiografer             string  `json:"radiografer"`
	JasaRadiografer         int     `json:"jasa_radiografer"`
	JasaBahayaRadiasi       int     `json:"jasa_bahaya_radiasi"`
	JenisPemeriksaan        string  `json:"jenis_pemeriksaan"`
	TarifPemeriksaan        int     `json:"tarif_pemeriksaan"`
	JasaDokter              int     `json:"jasa_dokter"`
}

// FormPemeriksaan adalah nilai form apa adanya: semua field berupa teks,
// termasuk field angka dan tanggal, sampai divalidasi.
type FormPemeriksaan struct {
	No                      string `json:"no"`
	KodePenjamin            string `json:"kode_penjamin"`
	TglPemeriksaan          string `json:"tgl_pemeriksaan"`
	NamaPasien              string `json:"nama_pasien"`
	JenisKelamin            string `json:"jenis_kelamin"`
	Kelas                   string `json:"kelas"`
	JenisDokter             string `json:"jenis_dokter"`
	DokterPengirim          string `json:"dokter_pengirim"`
	JumlahFilm              string `json:"jumlah_film"`
	PengulanganFoto         string `json:"pengulangan_foto"`
	PenggunaanFaktorEksposi string `json:"penggunaan_faktor_eksposi"`
	Radiografer             string `json:"radiografer"`
	JasaRadiografer         string `json:"jasa_radiografer"`
	JasaBahayaRadiasi       string `json:"jasa_bahaya_radiasi"`
	JenisPemeriksaan        string `json:"jenis_pemeriksaan"`
	TarifPemeriksaan        string `json:"tarif_pemeriksaan"`
	JasaDokter              string `json:"jasa_dokter"`
}

// Fields memetakan nama kolom ke pointer field form, dalam urutan kolom tabel.
func (f *FormPemeriksaan) Fields() []FormField {
	return []FormField{
		{"no", &f.No},
		{"kode_penjamin", &f.KodePenjamin},
		{"tgl_pemeriksaan", &f.TglPemeriksaan},
		{"nama_pasien", &f.NamaPasien},
		{"jenis_kelamin", &f.JenisKelamin},
		{"kelas", &f.Kelas},
		{"jenis_dokter", &f.JenisDokter},
		{"dokter_pengirim", &f.DokterPengirim},
		{"jumlah_film", &f.JumlahFilm},
		{"pengulangan_foto", &f.PengulanganFoto},
		{"penggunaan_faktor_eksposi", &f.PenggunaanFaktorEksposi},
		{"radiografer", &f.Radiografer},
		{"jasa_radiografer", &f.JasaRadiografer},
		{"jasa_bahaya_radiasi", &f.JasaBahayaRadiasi},
		{"jenis_pemeriksaan", &f.JenisPemeriksaan},
		{"tarif_pemeriksaan", &f.TarifPemeriksaan},
		{"jasa_dokter", &f.JasaDokter},
	}
}

type FormField struct {
	Name  string
	Value *string
}

// UnmarshalJSON menerima string, angka, atau null untuk setiap field,
// karena client bisa mengirim tarif sebagai angka maupun teks.
func (f *FormPemeriksaan) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	for _, field := range f.Fields() {
		v, ok := raw[field.Name]
		if !ok {
			continue
		}
		s, err := teksDariJSON(v)
		if err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
		*field.Value = s
	}
	return nil
}

func teksDariJSON(v json.RawMessage) (string, error) {
	v = bytes.TrimSpace(v)
	if len(v) == 0 || string(v) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(v, &n); err != nil {
		return "", fmt.Errorf("nilai harus berupa teks atau angka")
	}
	return n.String(), nil
}

// FormDari mengubah record tersimpan menjadi nilai form yang bisa diedit:
// angka menjadi teks desimal, field opsional yang NULL menjadi teks kosong.
func FormDari(p Pemeriksaan) FormPemeriksaan {
	return FormPemeriksaan{
		No:                      deref(p.No),
		KodePenjamin:            p.KodePenjamin,
		TglPemeriksaan:          p.TglPemeriksaan,
		NamaPasien:              p.NamaPasien,
		JenisKelamin:            p.JenisKelamin,
		Kelas:                   p.Kelas,
		JenisDokter:             p.JenisDokter,
		DokterPengirim:          p.DokterPengirim,
		JumlahFilm:              deref(p.JumlahFilm),
		PengulanganFoto:         p.PengulanganFoto,
		PenggunaanFaktorEksposi: deref(p.PenggunaanFaktorEksposi),
		Radiografer:             p.Radiografer,
		JasaRadiografer:         strconv.Itoa(p.JasaRadiografer),
		JasaBahayaRadiasi:       strconv.Itoa(p.JasaBahayaRadiasi),
		JenisPemeriksaan:        p.JenisPemeriksaan,
		TarifPemeriksaan:        strconv.Itoa(p.TarifPemeriksaan),
		JasaDokter:              strconv.Itoa(p.JasaDokter),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Opsional mengembalikan nil untuk teks kosong, selain itu pointer ke s.
func Opsional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
