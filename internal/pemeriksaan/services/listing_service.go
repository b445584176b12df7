package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/c14220110/radiologi-backend/internal/pemeriksaan/models"
)

const layoutBulan = "2006-01"

// MonthRange menghitung rentang inklusif [tanggal 1, tanggal terakhir] untuk bulan yyyy-MM.
func MonthRange(bulan string) (string, string, error) {
	t, err := time.Parse(layoutBulan, bulan)
	if err != nil {
		return "", "", ErrBulanTidakValid
	}
	awal := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	akhir := awal.AddDate(0, 1, -1)
	return awal.Format(models.LayoutTanggal), akhir.Format(models.LayoutTanggal), nil
}

// RecentMonths mengembalikan n bulan terakhir (yyyy-MM), dimulai dari bulan now.
func RecentMonths(now time.Time, n int) []string {
	awal := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, awal.AddDate(0, -i, 0).Format(layoutBulan))
	}
	return out
}

// BulanDari mengambil yyyy-MM dari tanggal yyyy-MM-dd.
func BulanDari(tgl string) string {
	if len(tgl) < len(layoutBulan) {
		return ""
	}
	return tgl[:len(layoutBulan)]
}

type ListingOptions struct {
	Notifier Notifier
	Log      *slog.Logger
	// OnDelete dipanggil setelah penghapusan berhasil.
	OnDelete func(models.Event)
}

// Listing adalah daftar pemeriksaan per bulan beserta hapus dua tahap dan export.
// Satu Listing mewakili satu sesi tampilan; penghapusan yang menunggu
// konfirmasi hanya berlaku di Listing ini.
type Listing struct {
	store PemeriksaanStore
	opts  ListingOptions

	mu    sync.Mutex
	bulan string
	data  []models.Pemeriksaan
	// dataBulan adalah bulan asal data; bisa tertinggal dari bulan bila muat gagal.
	dataBulan string
	loading   bool
	hapusID   string
}

func NewListing(store PemeriksaanStore, opts ListingOptions) *Listing {
	if opts.Notifier == nil {
		opts.Notifier = nopNotifier{}
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	return &Listing{store: store, opts: opts, data: []models.Pemeriksaan{}}
}

// SelectMonth mengganti filter bulan lalu memuat ulang data.
func (l *Listing) SelectMonth(ctx context.Context, bulan string) ([]models.Pemeriksaan, error) {
	if _, _, err := MonthRange(bulan); err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.bulan = bulan
	l.mu.Unlock()
	return l.Refresh(ctx)
}

// Refresh memuat ulang bulan yang sedang dipilih. Bila gagal, data lama dipertahankan.
func (l *Listing) Refresh(ctx context.Context) ([]models.Pemeriksaan, error) {
	l.mu.Lock()
	bulan := l.bulan
	l.loading = true
	l.mu.Unlock()

	data, err := l.FetchForMonth(ctx, bulan)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.loading = false
	if err != nil {
		return nil, err
	}
	// Respons terakhir yang tiba yang dipakai.
	l.data = data
	l.dataBulan = bulan
	return salinData(data), nil
}

// FetchForMonth mengambil semua record di bulan tersebut, tanggal terbaru di atas.
func (l *Listing) FetchForMonth(ctx context.Context, bulan string) ([]models.Pemeriksaan, error) {
	awal, akhir, err := MonthRange(bulan)
	if err != nil {
		return nil, err
	}
	data, err := l.store.ListByDateRange(ctx, awal, akhir, true)
	if err != nil {
		l.opts.Log.Error("gagal memuat data pemeriksaan", "bulan", bulan, "error", err)
		l.opts.Notifier.Gagal(PesanMuatGagal)
		return nil, &StoreError{Op: "muat", Pesan: PesanMuatGagal, Err: err}
	}
	if data == nil {
		data = []models.Pemeriksaan{}
	}
	return data, nil
}

func (l *Listing) Month() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bulan
}

func (l *Listing) Records() []models.Pemeriksaan {
	l.mu.Lock()
	defer l.mu.Unlock()
	return salinData(l.data)
}

func (l *Listing) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// RequestDelete menandai id untuk dihapus. Permintaan sebelumnya yang belum
// dikonfirmasi digantikan.
func (l *Listing) RequestDelete(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hapusID = id
}

// CancelDelete membatalkan penghapusan yang menunggu; tidak menyentuh penyimpanan.
func (l *Listing) CancelDelete() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hapusID = ""
}

// PendingDelete mengembalikan id yang menunggu konfirmasi, jika ada.
func (l *Listing) PendingDelete() (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hapusID, l.hapusID != ""
}

// ConfirmDelete menghapus record yang menunggu konfirmasi lalu memuat ulang bulan
// yang sedang dipilih. Tanda hapus dibersihkan baik berhasil maupun gagal.
func (l *Listing) ConfirmDelete(ctx context.Context) error {
	l.mu.Lock()
	id := l.hapusID
	l.hapusID = ""
	l.mu.Unlock()

	if id == "" {
		return ErrTidakAdaHapus
	}

	if err := l.store.Delete(ctx, id); err != nil {
		l.opts.Log.Error("gagal menghapus data pemeriksaan", "id", id, "error", err)
		l.opts.Notifier.Gagal(PesanHapusGagal)
		return &StoreError{Op: "hapus", Pesan: PesanHapusGagal, Err: err}
	}
	l.opts.Notifier.Sukses(PesanHapusBerhasil)
	if l.opts.OnDelete != nil {
		l.opts.OnDelete(models.Event{Aksi: models.AksiDelete, ID: id, Bulan: l.Month()})
	}

	if l.Month() == "" {
		return nil
	}
	// Kegagalan muat ulang sudah dilaporkan lewat notifier; penghapusan tetap berhasil.
	_, _ = l.Refresh(ctx)
	return nil
}

// ExportCurrentMonth menulis daftar yang sedang tampil ke w sebagai file Excel
// dan mengembalikan nama filenya. Daftar kosong tidak menghasilkan file apa pun.
// Nama file mengikuti bulan asal data, bukan bulan yang terakhir dipilih.
func (l *Listing) ExportCurrentMonth(w io.Writer) (string, error) {
	l.mu.Lock()
	bulan := l.bulan
	data := salinData(l.data)
	if len(data) > 0 {
		bulan = l.dataBulan
	}
	l.mu.Unlock()

	if len(data) == 0 {
		l.opts.Notifier.Gagal(PesanExportKosong)
		return "", &ExportPreconditionError{Bulan: bulan}
	}

	if err := TulisExcel(w, data); err != nil {
		l.opts.Log.Error("gagal membuat file excel", "bulan", bulan, "error", err)
		l.opts.Notifier.Gagal(PesanExportGagal)
		return "", err
	}

	l.opts.Notifier.Sukses("Data " + NamaBulan(bulan) + " berhasil diunduh")
	return NamaFileExport(bulan), nil
}

func salinData(data []models.Pemeriksaan) []models.Pemeriksaan {
	out := make([]models.Pemeriksaan, len(data))
	copy(out, data)
	return out
}
