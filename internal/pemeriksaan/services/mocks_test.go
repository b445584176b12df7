package services

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/c14220110/radiologi-backend/internal/pemeriksaan/models"
)

var _ PemeriksaanStore = (*MockStore)(nil)

// MockStore adalah PemeriksaanStore dengan perilaku yang diatur per test.
type MockStore struct {
	InsertFunc func(ctx context.Context, p models.Pemeriksaan) (string, error)
	UpdateFunc func(ctx context.Context, id string, p models.Pemeriksaan) error
	DeleteFunc func(ctx context.Context, id string) error
	ListFunc   func(ctx context.Context, start, end string, descending bool) ([]models.Pemeriksaan, error)

	InsertCount int32
	UpdateCount int32
	DeleteCount int32
	ListCount   int32
}

func (m *MockStore) Insert(ctx context.Context, p models.Pemeriksaan) (string, error) {
	atomic.AddInt32(&m.InsertCount, 1)
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, p)
	}
	return "", errors.New("InsertFunc not implemented in mock")
}

func (m *MockStore) Update(ctx context.Context, id string, p models.Pemeriksaan) error {
	atomic.AddInt32(&m.UpdateCount, 1)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, p)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *MockStore) Delete(ctx context.Context, id string) error {
	atomic.AddInt32(&m.DeleteCount, 1)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errors.New("DeleteFunc not implemented in mock")
}

func (m *MockStore) ListByDateRange(ctx context.Context, start, end string, descending bool) ([]models.Pemeriksaan, error) {
	atomic.AddInt32(&m.ListCount, 1)
	if m.ListFunc != nil {
		return m.ListFunc(ctx, start, end, descending)
	}
	return nil, nil
}

// memStore menyimpan record di memori, cukup untuk uji alur form dan listing.
type memStore struct {
	mu   sync.Mutex
	seq  int
	rows map[string]models.Pemeriksaan
}

func newMemStore() *memStore {
	return &memStore{rows: map[string]models.Pemeriksaan{}}
}

func (s *memStore) Insert(_ context.Context, p models.Pemeriksaan) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	id := "id-" + strconv.Itoa(s.seq)
	p.ID = id
	s.rows[id] = p
	return id, nil
}

func (s *memStore) Update(_ context.Context, id string, p models.Pemeriksaan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return ErrNotFound
	}
	p.ID = id
	s.rows[id] = p
	return nil
}

func (s *memStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func (s *memStore) ListByDateRange(_ context.Context, start, end string, descending bool) ([]models.Pemeriksaan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Pemeriksaan{}
	for _, p := range s.rows {
		if p.TglPemeriksaan >= start && p.TglPemeriksaan <= end {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TglPemeriksaan == out[j].TglPemeriksaan {
			return out[i].ID < out[j].ID
		}
		if descending {
			return out[i].TglPemeriksaan > out[j].TglPemeriksaan
		}
		return out[i].TglPemeriksaan < out[j].TglPemeriksaan
	})
	return out, nil
}

// formValid mengembalikan isian form lengkap untuk THORAX.
func formValid() models.FormPemeriksaan {
	return models.FormPemeriksaan{
		No:                "12",
		KodePenjamin:      "ROBPJS",
		TglPemeriksaan:    "2024-02-10",
		NamaPasien:        "Siti Aminah",
		JenisKelamin:      "Perempuan",
		Kelas:             "UGD",
		JenisDokter:       "UMUM",
		DokterPengirim:    "dr. Kurbiyanto",
		JumlahFilm:        "1",
		PengulanganFoto:   "Tidak",
		Radiografer:       "umar",
		JasaRadiografer:   "5000",
		JasaBahayaRadiasi: "3500",
		JenisPemeriksaan:  "THORAX",
		TarifPemeriksaan:  "122500",
		JasaDokter:        "40000",
	}
}

// recordValid adalah record tersimpan yang setara dengan formValid.
func recordValid(id string) models.Pemeriksaan {
	no, film := "12", "1"
	return models.Pemeriksaan{
		ID:                id,
		No:                &no,
		KodePenjamin:      "ROBPJS",
		TglPemeriksaan:    "2024-02-10",
		NamaPasien:        "Siti Aminah",
		JenisKelamin:      "Perempuan",
		Kelas:             "UGD",
		JenisDokter:       "UMUM",
		DokterPengirim:    "dr. Kurbiyanto",
		JumlahFilm:        &film,
		PengulanganFoto:   "Tidak",
		Radiografer:       "umar",
		JasaRadiografer:   5000,
		JasaBahayaRadiasi: 3500,
		JenisPemeriksaan:  "THORAX",
		TarifPemeriksaan:  122500,
		JasaDokter:        40000,
	}
}
