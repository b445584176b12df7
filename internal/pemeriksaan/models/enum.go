package models

// Pilihan tetap pada form pemeriksaan.
var (
	KodePenjaminList = []string{"ROBPJS", "ROUMUM", "USGBPJS", "USGUMUM"}

	JenisKelaminList = []string{"Laki-laki", "Perempuan"}

	KelasList = []string{
		"ASYYIFA",
		"MULTAZAM",
		"SALSABILA",
		"FIRDAUS",
		"POLI UMUM",
		"LUAR RUMAH SAKIT",
		"UGD",
		"POLI DALAM",
		"POLI ANAK",
		"RUJUKAN LUAR",
	}

	JenisDokterList = []string{"UMUM", "SPESIALIS"}

	DokterPengirimList = []string{
		"dr. Rini Nurul Hidayah",
		"dr. Dadang Ismanaf",
		"dr. Misbakhul Munir",
		"dr. Kurbiyanto",
		"dr. Rakhma Nur Aziza",
		"dr. Herry Purwanto",
		"dr. Khoirul Anwar, Sp.PD",
		"dr. Yudha Irla Saputra, Sp.PD, M.M.R",
		"dr. Faiza Risty Aryani Septarini, Sp.A",
	}

	PengulanganFotoList = []string{"Ya", "Tidak"}

	RadiograferList = []string{"umar", "wafiq", "eko"}
)

// Contains melaporkan apakah v ada di daftar pilihan.
func Contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
