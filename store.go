package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/c14220110/radiologi-backend/config"
	"github.com/c14220110/radiologi-backend/internal/pemeriksaan/services"
	"github.com/c14220110/radiologi-backend/pkg/cache"
	"github.com/c14220110/radiologi-backend/pkg/storage/mariadb"
	"github.com/c14220110/radiologi-backend/pkg/storage/postgres"
)

const cacheTTL = 5 * time.Minute

// storeHandle adalah store yang sudah terhubung beserta fungsi penutup koneksinya.
type storeHandle struct {
	Store    services.PemeriksaanStore
	Migrator services.Migrator
	closers  []func()
}

func (h *storeHandle) Close() {
	for i := len(h.closers) - 1; i >= 0; i-- {
		h.closers[i]()
	}
}

// openStore memilih adapter sesuai DB_DRIVER lalu membungkusnya dengan cache
// Redis bila REDIS_ADDR tersedia.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*storeHandle, error) {
	h := &storeHandle{}

	switch driver := strings.ToLower(strings.TrimSpace(cfg.DBDriver)); driver {
	case "mariadb", "mysql":
		db, err := mariadb.Connect(cfg)
		if err != nil {
			return nil, err
		}
		s := services.NewMariaDBStore(db)
		h.Store, h.Migrator = s, s
		h.closers = append(h.closers, func() { db.Close() })
	case "postgres", "postgresql":
		pool, err := postgres.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		s := services.NewPostgresStore(pool)
		h.Store, h.Migrator = s, s
		h.closers = append(h.closers, pool.Close)
	default:
		return nil, fmt.Errorf("%w: %q", services.ErrDriverTidakDikenal, cfg.DBDriver)
	}

	if rdb := cache.Connect(ctx, cfg); rdb != nil {
		h.Store = services.NewCachedStore(h.Store, rdb, cacheTTL, log)
		h.closers = append(h.closers, func() { rdb.Close() })
	}
	return h, nil
}
