package services

import (
	"errors"
	"strconv"
	"testing"

	"github.com/c14220110/radiologi-backend/internal/pemeriksaan/models"
	"github.com/c14220110/radiologi-backend/internal/pemeriksaan/tarif"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Valid(t *testing.T) {
	p, errs := ValidatePemeriksaan(formValid())
	require.Empty(t, errs)
	assert.Equal(t, recordValid(""), p)
}

func TestValidate_TrimsAndNormalizesOptional(t *testing.T) {
	f := formValid()
	f.NamaPasien = "  Siti Aminah  "
	f.No = "   "
	f.JumlahFilm = ""
	f.PenggunaanFaktorEksposi = " 70kV "

	p, errs := ValidatePemeriksaan(f)
	require.Empty(t, errs)
	assert.Equal(t, "Siti Aminah", p.NamaPasien)
	assert.Nil(t, p.No)
	assert.Nil(t, p.JumlahFilm)
	require.NotNil(t, p.PenggunaanFaktorEksposi)
	assert.Equal(t, "70kV", *p.PenggunaanFaktorEksposi)
}

func TestValidate_EachRequiredFieldNamed(t *testing.T) {
	for name := range wajib {
		t.Run(name, func(t *testing.T) {
			f := formValid()
			for _, field := range f.Fields() {
				if field.Name == name {
					*field.Value = "   "
				}
			}
			_, errs := ValidatePemeriksaan(f)
			require.Contains(t, errs, name)
			assert.Equal(t, wajib[name], errs[name])
		})
	}
}

func TestValidate_OptionalFieldsMayBeEmpty(t *testing.T) {
	f := formValid()
	f.No = ""
	f.JumlahFilm = ""
	f.PenggunaanFaktorEksposi = ""
	_, errs := ValidatePemeriksaan(f)
	assert.Empty(t, errs)
}

func TestValidate_Numbers(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*models.FormPemeriksaan)
		field string
	}{
		{"tarif bukan angka", func(f *models.FormPemeriksaan) { f.TarifPemeriksaan = "seratus" }, "tarif_pemeriksaan"},
		{"jasa desimal", func(f *models.FormPemeriksaan) { f.JasaDokter = "400.5" }, "jasa_dokter"},
		{"jasa radiografer di luar katalog", func(f *models.FormPemeriksaan) { f.JasaRadiografer = "5500" }, "jasa_radiografer"},
		{"jasa bahaya di luar katalog", func(f *models.FormPemeriksaan) { f.JasaBahayaRadiasi = "4000" }, "jasa_bahaya_radiasi"},
		{"tarif negatif", func(f *models.FormPemeriksaan) {
			f.JenisPemeriksaan = "USG LAIN LAIN"
			f.TarifPemeriksaan = "-1"
		}, "tarif_pemeriksaan"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := formValid()
			tt.edit(&f)
			_, errs := ValidatePemeriksaan(f)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestValidate_Date(t *testing.T) {
	for _, tgl := range []string{"2024-02-30", "10-02-2024", "2023-02-29", "kemarin"} {
		f := formValid()
		f.TglPemeriksaan = tgl
		_, errs := ValidatePemeriksaan(f)
		assert.Contains(t, errs, "tgl_pemeriksaan", tgl)
	}

	f := formValid()
	f.TglPemeriksaan = "2024-02-29"
	p, errs := ValidatePemeriksaan(f)
	require.Empty(t, errs)
	assert.Equal(t, "2024-02-29", p.TglPemeriksaan)
}

func TestValidate_Enumerations(t *testing.T) {
	f := formValid()
	f.KodePenjamin = "ASURANSI"
	f.Radiografer = "budi"
	f.JenisPemeriksaan = "MRI"
	_, errs := ValidatePemeriksaan(f)
	assert.Contains(t, errs, "kode_penjamin")
	assert.Contains(t, errs, "radiografer")
	assert.Contains(t, errs, "jenis_pemeriksaan")
}

func TestValidate_CatalogMembershipForEveryType(t *testing.T) {
	for _, jenis := range tarif.JenisPemeriksaan() {
		entry := tarif.Lookup(jenis)
		t.Run(jenis, func(t *testing.T) {
			f := formValid()
			f.JenisPemeriksaan = jenis
			f.TarifPemeriksaan = "1"
			f.JasaDokter = "1"

			_, errs := ValidatePemeriksaan(f)
			assert.Equal(t, entry.HasTarif(), errs["tarif_pemeriksaan"] != "")
			assert.Equal(t, entry.HasJasa(), errs["jasa_dokter"] != "")

			for _, v := range entry.Tarif {
				f.TarifPemeriksaan = strconv.Itoa(v)
				_, errs = ValidatePemeriksaan(f)
				assert.NotContains(t, errs, "tarif_pemeriksaan")
			}
			for _, v := range entry.Jasa {
				f.JasaDokter = strconv.Itoa(v)
				_, errs = ValidatePemeriksaan(f)
				assert.NotContains(t, errs, "jasa_dokter")
			}
		})
	}
}

func TestValidate_NonStrictAcceptsOffCatalogTarif(t *testing.T) {
	f := formValid()
	f.TarifPemeriksaan = "100"
	f.JasaDokter = "100"

	_, errs := Validator{StrictTarif: false}.Validate(f)
	assert.Empty(t, errs)

	_, errs = Validator{StrictTarif: true}.Validate(f)
	assert.Contains(t, errs, "tarif_pemeriksaan")
	assert.Contains(t, errs, "jasa_dokter")
}

func TestValidationErrors_Error(t *testing.T) {
	var err error = ValidationErrors{"b": "dua", "a": "satu"}
	assert.Equal(t, "validasi gagal: a: satu; b: dua", err.Error())

	var verrs ValidationErrors
	assert.True(t, errors.As(err, &verrs))
}

func TestValidate_AmountMustFitIntColumn(t *testing.T) {
	f := formValid()
	f.JenisPemeriksaan = "USG LAIN LAIN"
	f.TarifPemeriksaan = "3000000000"
	f.JasaDokter = "99999999999999999999"

	_, errs := ValidatePemeriksaan(f)
	assert.Equal(t, PesanNominalTerlaluBesar, errs["tarif_pemeriksaan"])
	assert.Equal(t, PesanNominalTerlaluBesar, errs["jasa_dokter"])

	f.TarifPemeriksaan = "2147483647"
	f.JasaDokter = "0"
	p, errs := Validator{StrictTarif: false}.Validate(f)
	require.Empty(t, errs)
	assert.Equal(t, 2147483647, p.TarifPemeriksaan)
}
