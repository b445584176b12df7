package mariadb

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/c14220110/radiologi-backend/config"
	_ "github.com/go-sql-driver/mysql"
)

// DSN menyusun connection string MariaDB dari konfigurasi.
// Format: username:password@tcp(host:port)/dbname?parseTime=true&loc=<timezone>
func DSN(cfg *config.Config) string {
	port := cfg.DBPort
	if port == "" {
		port = "3306"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&loc=%s",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, port, cfg.DBName, url.QueryEscape(cfg.Timezone))
}

// Connect membuka koneksi ke database MariaDB dan memastikan server dapat di-ping.
func Connect(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("gagal membuka koneksi ke database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("gagal melakukan ping ke database: %w", err)
	}

	slog.Info("Berhasil terhubung ke MariaDB.", "host", cfg.DBHost, "db", cfg.DBName)
	return db, nil
}
