// Package tarif berisi katalog tarif pemeriksaan dan jasa dokter per jenis pemeriksaan.
//
// Katalog dibangun sekali saat package di-load dan tidak pernah diubah.
// Jenis pemeriksaan yang tidak dikenal dianggap tidak punya pilihan tetap,
// sehingga tarif dan jasa diisi manual.
package tarif

// Entry menyimpan pilihan tarif dan jasa dokter untuk satu jenis pemeriksaan,
// berurutan per tingkat harga. Keduanya dipilih terpisah, bukan berpasangan.
type Entry struct {
	Tarif []int `json:"tarif"`
	Jasa  []int `json:"jasa"`
}

// Pilihan tetap jasa radiografer dan jasa bahaya radiasi.
var (
	JasaRadiografer   = []int{5000, 6000, 7000, 8000}
	JasaBahayaRadiasi = []int{3500, 4200, 5000, 6000}
)

type item struct {
	jenis string
	entry Entry
}

var daftar = []item{
	{"THORAX", Entry{
		Tarif: []int{122500, 130500, 145500, 153500},
		Jasa:  []int{40000, 46000, 54000, 58000},
	}},
	{"LUMBAL", Entry{
		Tarif: []int{190500, 195500, 202500, 209500},
		Jasa:  []int{66000, 70000, 74000, 76000},
	}},
	{"ABDOMEN 3 PSS", Entry{
		Tarif: []int{302500, 326500, 366000, 388500},
		Jasa:  []int{124000, 138000, 160000, 174000},
	}},
	{"KEPALA", Entry{
		Tarif: []int{150000, 216000, 259200, 311040},
		Jasa:  []int{36000, 39000, 41000, 43000},
	}},
	{"CERVICAL", Entry{
		Tarif: []int{167000, 190500, 205000, 217500},
		Jasa:  []int{66000, 80000, 88000, 96000},
	}},
	{"CLAVICULA", Entry{
		Tarif: []int{104000, 116500, 124000, 131000},
		Jasa:  []int{33000, 40000, 44000, 48000},
	}},
	{"SHOULDER", Entry{
		Tarif: []int{147500, 154500, 162500, 171500},
		Jasa:  []int{52000, 55000, 60000, 64000},
	}},
	{"HUMERUS", Entry{
		Tarif: []int{147500, 154500, 162500, 171500},
		Jasa:  []int{52000, 55000, 60000, 64000},
	}},
	{"ANTEBRACHI", Entry{
		Tarif: []int{147500, 154500, 162500, 171500},
		Jasa:  []int{52000, 55000, 60000, 64000},
	}},
	{"ELBOW", Entry{
		Tarif: []int{147500, 154500, 162500, 171500},
		Jasa:  []int{52000, 55000, 60000, 64000},
	}},
	{"THORACHOLUMBAL", Entry{
		Tarif: []int{228000, 273600, 328320, 393984},
		Jasa:  []int{78796, 65664, 54720, 45600},
	}},
	{"THORACHAL", Entry{
		Tarif: []int{190500, 195500, 202500, 209500},
		Jasa:  []int{66000, 70000, 74000, 76000},
	}},
	{"PEDIS", Entry{
		Tarif: []int{149500, 154500, 162500, 171500},
		Jasa:  []int{50000, 55000, 60000, 64000},
	}},
	{"ANKLE", Entry{
		Tarif: []int{149500, 154500, 162500, 171500},
		Jasa:  []int{50000, 55000, 60000, 64000},
	}},
	{"GENU", Entry{
		Tarif: []int{149500, 154500, 162500, 171500},
		Jasa:  []int{50000, 55000, 60000, 64000},
	}},
	{"CRURIS", Entry{
		Tarif: []int{172500, 179500, 186500, 193500},
		Jasa:  []int{66000, 70000, 73000, 76000},
	}},
	{"FEMUR", Entry{
		Tarif: []int{172500, 179500, 186500, 193500},
		Jasa:  []int{66000, 70000, 73000, 76000},
	}},
	{"WRIST", Entry{
		Tarif: []int{158500, 165500, 173500, 182500},
		Jasa:  []int{5000, 6000, 7000, 8000},
	}},
	{"MANUS", Entry{
		Tarif: []int{158500, 165500, 173500, 182500},
		Jasa:  []int{52000, 55000, 60000, 64000},
	}},
	{"USG ABDOMEN", Entry{Tarif: []int{400000, 440000, 480000, 520000}}},
	{"USG TIROID", Entry{Tarif: []int{175000, 192000, 210000, 227500}}},
	{"USG MAMAE", Entry{Tarif: []int{190000, 209000, 219000, 228000}}},
	{"USG DOPLER", Entry{Tarif: []int{220000, 242000, 264000, 286000}}},
	{"USG LAIN LAIN", Entry{}},
}

var (
	katalog = make(map[string]Entry, len(daftar))
	urutan  = make([]string, 0, len(daftar))
)

func init() {
	for _, it := range daftar {
		katalog[it.jenis] = it.entry
		urutan = append(urutan, it.jenis)
	}
}

// Lookup mengembalikan pilihan tarif dan jasa untuk jenis pemeriksaan.
// Jenis yang tidak dikenal menghasilkan Entry kosong. Slice yang dikembalikan
// adalah salinan, jadi aman diubah pemanggil.
func Lookup(jenis string) Entry {
	e, ok := katalog[jenis]
	if !ok {
		return Entry{Tarif: []int{}, Jasa: []int{}}
	}
	return Entry{Tarif: salin(e.Tarif), Jasa: salin(e.Jasa)}
}

// Known melaporkan apakah jenis ada di katalog.
func Known(jenis string) bool {
	_, ok := katalog[jenis]
	return ok
}

// JenisPemeriksaan mengembalikan semua jenis pemeriksaan dalam urutan katalog.
func JenisPemeriksaan() []string {
	out := make([]string, len(urutan))
	copy(out, urutan)
	return out
}

// HasTarif melaporkan apakah ada pilihan tarif tetap.
func (e Entry) HasTarif() bool { return len(e.Tarif) > 0 }

func (e Entry) HasJasa() bool { return len(e.Jasa) > 0 }

// AllowsTarif: jika ada pilihan tetap, v harus salah satunya; jika tidak, cukup tidak negatif.
func (e Entry) AllowsTarif(v int) bool { return allows(e.Tarif, v) }

func (e Entry) AllowsJasa(v int) bool { return allows(e.Jasa, v) }

func allows(options []int, v int) bool {
	if len(options) == 0 {
		return v >= 0
	}
	return ContainsInt(options, v)
}

func ContainsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func salin(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	return out
}
