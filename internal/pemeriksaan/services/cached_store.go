package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/c14220110/radiologi-backend/internal/pemeriksaan/models"
	"github.com/redis/go-redis/v9"
)

const kunciGenerasi = "radiologi:pemeriksaan:gen"

// redisClient adalah bagian dari *redis.Client yang dipakai CachedStore.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// CachedStore menyimpan hasil ListByDateRange di Redis. Setiap penulisan
// menaikkan nomor generasi, sehingga semua cache daftar lama tidak terpakai lagi.
// Kegagalan Redis hanya dicatat; permintaan tetap dilayani store di bawahnya.
type CachedStore struct {
	Next PemeriksaanStore
	RDB  redisClient
	TTL  time.Duration
	Log  *slog.Logger
}

func NewCachedStore(next PemeriksaanStore, rdb redisClient, ttl time.Duration, log *slog.Logger) *CachedStore {
	return &CachedStore{Next: next, RDB: rdb, TTL: ttl, Log: log}
}

func (s *CachedStore) Insert(ctx context.Context, p models.Pemeriksaan) (string, error) {
	id, err := s.Next.Insert(ctx, p)
	if err == nil {
		s.invalidate(ctx)
	}
	return id, err
}

func (s *CachedStore) Update(ctx context.Context, id string, p models.Pemeriksaan) error {
	err := s.Next.Update(ctx, id, p)
	if err == nil {
		s.invalidate(ctx)
	}
	return err
}

func (s *CachedStore) Delete(ctx context.Context, id string) error {
	err := s.Next.Delete(ctx, id)
	if err == nil {
		s.invalidate(ctx)
	}
	return err
}

func (s *CachedStore) ListByDateRange(ctx context.Context, start, end string, descending bool) ([]models.Pemeriksaan, error) {
	gen, err := s.RDB.Get(ctx, kunciGenerasi).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		s.Log.Warn("gagal membaca generasi cache", "error", err)
		return s.Next.ListByDateRange(ctx, start, end, descending)
	}

	key := fmt.Sprintf("radiologi:pemeriksaan:%d:%s:%s:%t", gen, start, end, descending)
	if raw, err := s.RDB.Get(ctx, key).Bytes(); err == nil {
		var cached []models.Pemeriksaan
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		s.Log.Warn("cache daftar pemeriksaan rusak", "key", key)
	} else if !errors.Is(err, redis.Nil) {
		s.Log.Warn("gagal membaca cache", "key", key, "error", err)
	}

	list, err := s.Next.ListByDateRange(ctx, start, end, descending)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(list); err == nil {
		if err := s.RDB.Set(ctx, key, raw, s.TTL).Err(); err != nil {
			s.Log.Warn("gagal menulis cache", "key", key, "error", err)
		}
	}
	return list, nil
}

func (s *CachedStore) invalidate(ctx context.Context) {
	if err := s.RDB.Incr(ctx, kunciGenerasi).Err(); err != nil {
		s.Log.Warn("gagal menaikkan generasi cache", "error", err)
	}
}
