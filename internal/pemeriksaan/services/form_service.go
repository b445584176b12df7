package services

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/c14220110/radiologi-backend/internal/pemeriksaan/models"
	"github.com/c14220110/radiologi-backend/internal/pemeriksaan/tarif"
)

type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

type FormOptions struct {
	Validator Validator
	Notifier  Notifier
	Log       *slog.Logger
	// ClearStaleOnChange mengosongkan tarif/jasa yang tidak lagi ada di pilihan
	// ketika jenis pemeriksaan diganti. Default: pilihan lama dibiarkan.
	ClearStaleOnChange bool
	// OnSuccess dipanggil setelah create/update berhasil, untuk memuat ulang daftar.
	OnSuccess func(models.Event)
}

// Form mengatur alur isi form pemeriksaan: mode create atau edit, pilihan
// tarif yang mengikuti jenis pemeriksaan, dan penyimpanan.
type Form struct {
	store PemeriksaanStore
	opts  FormOptions

	mu           sync.Mutex
	mode         Mode
	id           string
	values       models.FormPemeriksaan
	tarifOptions []int
	jasaOptions  []int
	submitting   bool
}

func NewForm(store PemeriksaanStore, opts FormOptions) *Form {
	if opts.Notifier == nil {
		opts.Notifier = nopNotifier{}
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	return &Form{store: store, opts: opts}
}

// Initialize menyiapkan form. existing nil berarti mode create dengan semua
// field kosong (tanggal belum dipilih); selain itu mode edit berisi nilai record.
// Selama submit berjalan, mode tidak boleh diganti.
func (f *Form) Initialize(existing *models.Pemeriksaan) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return ErrSedangDiproses
	}

	if existing == nil {
		f.mode = ModeCreate
		f.id = ""
		f.values = models.FormPemeriksaan{}
	} else {
		f.mode = ModeEdit
		f.id = existing.ID
		f.values = models.FormDari(*existing)
	}
	f.turunkanPilihan(f.values.JenisPemeriksaan)
	return nil
}

func (f *Form) Mode() Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

func (f *Form) Values() models.FormPemeriksaan {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// OnJenisPemeriksaanChange mengganti jenis pemeriksaan dan mengembalikan
// pilihan tarif dan jasa dokter yang baru. Slice kosong berarti isian bebas.
func (f *Form) OnJenisPemeriksaanChange(jenis string) (tarifOptions, jasaOptions []int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values.JenisPemeriksaan = jenis
	f.turunkanPilihan(jenis)
	if f.opts.ClearStaleOnChange {
		if f.staleTarif() {
			f.values.TarifPemeriksaan = ""
		}
		if f.staleJasa() {
			f.values.JasaDokter = ""
		}
	}
	return salinInt(f.tarifOptions), salinInt(f.jasaOptions)
}

func (f *Form) TarifOptions() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return salinInt(f.tarifOptions)
}

func (f *Form) JasaOptions() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return salinInt(f.jasaOptions)
}

// StaleTarif melaporkan tarif terpilih yang tidak ada di pilihan jenis saat ini.
func (f *Form) StaleTarif() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.staleTarif()
}

func (f *Form) StaleJasa() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.staleJasa()
}

func (f *Form) staleTarif() bool { return stale(f.tarifOptions, f.values.TarifPemeriksaan) }

func (f *Form) staleJasa() bool { return stale(f.jasaOptions, f.values.JasaDokter) }

func (f *Form) turunkanPilihan(jenis string) {
	entry := tarif.Lookup(jenis)
	f.tarifOptions = entry.Tarif
	f.jasaOptions = entry.Jasa
}

// Submit memvalidasi lalu menyimpan nilai form. Create memanggil Insert, edit
// memanggil Update dengan ID record awal. Bila penyimpanan gagal, nilai form
// tetap ada supaya pengguna bisa mencoba lagi.
func (f *Form) Submit(ctx context.Context, values models.FormPemeriksaan) (models.Pemeriksaan, error) {
	return f.submit(ctx, values, nil)
}

// SubmitCreate memilih mode create dan menyimpan dalam satu langkah, sehingga
// request lain di sesi yang sama tidak bisa mengganti mode di tengah jalan.
func (f *Form) SubmitCreate(ctx context.Context, values models.FormPemeriksaan) (models.Pemeriksaan, error) {
	return f.submit(ctx, values, func() {
		f.mode, f.id = ModeCreate, ""
	})
}

// SubmitEdit seperti SubmitCreate, untuk mengganti record id.
func (f *Form) SubmitEdit(ctx context.Context, id string, values models.FormPemeriksaan) (models.Pemeriksaan, error) {
	return f.submit(ctx, values, func() {
		f.mode, f.id = ModeEdit, id
	})
}

// submit menjalankan pilihMode, bila ada, di bawah lock yang sama dengan
// penanda sibuk.
func (f *Form) submit(ctx context.Context, values models.FormPemeriksaan, pilihMode func()) (models.Pemeriksaan, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return models.Pemeriksaan{}, ErrSedangDiproses
	}
	if pilihMode != nil {
		pilihMode()
	}
	f.submitting = true
	f.values = values
	f.turunkanPilihan(values.JenisPemeriksaan)
	mode, id := f.mode, f.id
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	record, verrs := f.opts.Validator.Validate(values)
	if len(verrs) > 0 {
		return models.Pemeriksaan{}, verrs
	}

	var err error
	if mode == ModeEdit {
		err = f.store.Update(ctx, id, record)
	} else {
		id, err = f.store.Insert(ctx, record)
	}
	if err != nil {
		f.opts.Log.Error("gagal menyimpan data pemeriksaan", "mode", mode.String(), "id", id, "error", err)
		f.opts.Notifier.Gagal(PesanSimpanGagal)
		return models.Pemeriksaan{}, &StoreError{Op: "simpan", Pesan: PesanSimpanGagal, Err: err}
	}
	record.ID = id

	f.mu.Lock()
	f.values = models.FormPemeriksaan{}
	f.turunkanPilihan("")
	f.mu.Unlock()

	aksi := models.AksiCreate
	pesan := PesanSimpanBerhasil
	if mode == ModeEdit {
		aksi = models.AksiUpdate
		pesan = PesanUpdateBerhasil
	}
	f.opts.Notifier.Sukses(pesan)
	if f.opts.OnSuccess != nil {
		f.opts.OnSuccess(models.Event{Aksi: aksi, ID: id, Bulan: BulanDari(record.TglPemeriksaan)})
	}
	return record, nil
}

func stale(options []int, value string) bool {
	if len(options) == 0 || value == "" {
		return false
	}
	for _, o := range options {
		if strconv.Itoa(o) == value {
			return false
		}
	}
	return true
}

func salinInt(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	return out
}
