package postgres

import (
	"testing"

	"github.com/c14220110/radiologi-backend/config"
	"github.com/stretchr/testify/assert"
)

func TestConnString(t *testing.T) {
	cfg := &config.Config{DBUser: "radiologi", DBPassword: "rahasia", DBHost: "db", DBName: "klinik"}
	assert.Equal(t, "postgres://radiologi:rahasia@db:5432/klinik?sslmode=disable", ConnString(cfg))

	cfg.DBPort = "6543"
	assert.Equal(t, "postgres://radiologi:rahasia@db:6543/klinik?sslmode=disable", ConnString(cfg))

	cfg.DatabaseURL = "postgres://u:p@supabase.example:5432/postgres"
	assert.Equal(t, cfg.DatabaseURL, ConnString(cfg))
}
