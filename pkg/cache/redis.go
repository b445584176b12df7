package cache

import (
	"context"
	"log/slog"

	"github.com/c14220110/radiologi-backend/config"
	"github.com/redis/go-redis/v9"
)

// Connect membuat client Redis. Mengembalikan nil jika REDIS_ADDR kosong
// atau server tidak dapat dihubungi; pemanggil lalu berjalan tanpa cache.
func Connect(ctx context.Context, cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		slog.Warn("REDIS_ADDR tidak diset, cache daftar pemeriksaan dinonaktifkan")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		slog.Error("Tidak dapat terhubung ke Redis", "addr", cfg.RedisAddr, "error", err)
		rdb.Close()
		return nil
	}

	slog.Info("Berhasil terhubung ke Redis.", "addr", cfg.RedisAddr)
	return rdb
}
