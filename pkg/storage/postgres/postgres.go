package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/c14220110/radiologi-backend/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnString memakai DATABASE_URL bila ada, selain itu disusun dari DB_* env.
func ConnString(cfg *config.Config) string {
	if cfg.DatabaseURL != "" {
		return cfg.DatabaseURL
	}
	port := cfg.DBPort
	if port == "" {
		port = "5432"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, port, cfg.DBName)
}

// Connect membuka pool koneksi Postgres.
func Connect(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(ConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("gagal membuka pool postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("gagal melakukan ping ke postgres: %w", err)
	}

	slog.Info("Berhasil terhubung ke Postgres.", "host", poolConfig.ConnConfig.Host, "db", poolConfig.ConnConfig.Database)
	return pool, nil
}
