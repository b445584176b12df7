package config

import (
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv      string
	Port        string
	DBDriver    string // "mariadb" atau "postgres"
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string
	DatabaseURL string // dipakai driver postgres jika diisi
	RedisAddr   string
	JWTSecret   string
	TarifStrict bool
	SessionTTL  time.Duration
	LogLevel    string
	Timezone    string
}

var (
	cfg  *Config
	once sync.Once
)

// LoadConfig membaca .env (jika ada) lalu environment variable, satu kali per proses.
func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			slog.Warn(".env file tidak ditemukan, memakai environment variable saja")
		}
		cfg = FromEnv()
	})
	return cfg
}

// FromEnv membangun Config dari environment saat ini tanpa cache.
func FromEnv() *Config {
	return &Config{
		AppEnv:      os.Getenv("APP_ENV"),
		Port:        getEnv("PORT", "8080"),
		DBDriver:    getEnv("DB_DRIVER", "mariadb"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBHost:      getEnv("DB_HOST", "127.0.0.1"),
		DBPort:      os.Getenv("DB_PORT"),
		DBName:      os.Getenv("DB_NAME"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		JWTSecret:   os.Getenv("JWT_SECRET_KEY"),
		TarifStrict: getBool("TARIF_STRICT", true),
		SessionTTL:  getDuration("SESSION_TTL", 12*time.Hour),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Timezone:    getEnv("TIMEZONE", "Asia/Jakarta"),
	}
}

// Location mengembalikan zona waktu klinik; jatuh ke UTC jika nama zona tidak dikenal.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		slog.Warn("zona waktu tidak dikenal, memakai UTC", "timezone", c.Timezone, "error", err)
		return time.UTC
	}
	return loc
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("nilai boolean tidak valid", "key", key, "value", v)
		return def
	}
	return b
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("durasi tidak valid", "key", key, "value", v)
		return def
	}
	return d
}
