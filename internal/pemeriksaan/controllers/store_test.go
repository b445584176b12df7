package controllers

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"

	"github.com/c14220110/radiologi-backend/internal/pemeriksaan/models"
	"github.com/c14220110/radiologi-backend/internal/pemeriksaan/services"
)

// fakeStore menyimpan record di memori; failWith membuat semua operasi gagal.
type fakeStore struct {
	mu       sync.Mutex
	seq      int
	rows     map[string]models.Pemeriksaan
	failWith error
	deletes  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: map[string]models.Pemeriksaan{}}
}

func (s *fakeStore) Insert(_ context.Context, p models.Pemeriksaan) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return "", s.failWith
	}
	s.seq++
	id := "rec-" + strconv.Itoa(s.seq)
	p.ID = id
	s.rows[id] = p
	return id, nil
}

func (s *fakeStore) Update(_ context.Context, id string, p models.Pemeriksaan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	if _, ok := s.rows[id]; !ok {
		return services.ErrNotFound
	}
	p.ID = id
	s.rows[id] = p
	return nil
}

func (s *fakeStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes++
	if s.failWith != nil {
		return s.failWith
	}
	if _, ok := s.rows[id]; !ok {
		return services.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func (s *fakeStore) ListByDateRange(_ context.Context, start, end string, descending bool) ([]models.Pemeriksaan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	out := []models.Pemeriksaan{}
	for _, p := range s.rows {
		if p.TglPemeriksaan >= start && p.TglPemeriksaan <= end {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if descending {
			return out[i].TglPemeriksaan > out[j].TglPemeriksaan
		}
		return out[i].TglPemeriksaan < out[j].TglPemeriksaan
	})
	return out, nil
}

var errDown = errors.New("database down")
