package middlewares

import (
	"log/slog"
	"strings"
	"time"

	"github.com/c14220110/radiologi-backend/pkg/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Definisikan tipe kustom untuk context key
type contextKey string

const (
	ContextKeySesi contextKey = "id_sesi"

	// HeaderSesiToken dikirim ke client ketika sesi baru dibuat.
	HeaderSesiToken = "X-Sesi-Token"
)

// SesiMiddleware mengambil ID sesi dari header Authorization (Bearer <token>).
// Token kosong, rusak, atau kedaluwarsa tidak ditolak: sesi baru dibuat dan
// tokennya dikembalikan lewat header X-Sesi-Token.
func SesiMiddleware(secret []byte, ttl time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if id, ok := sesiDariHeader(secret, c.Request().Header.Get(echo.HeaderAuthorization)); ok {
				c.Set(string(ContextKeySesi), id)
				return next(c)
			}

			id := uuid.NewString()
			token, err := utils.GenerateSesiToken(secret, id, time.Now().Add(ttl))
			if err != nil {
				slog.Error("gagal membuat token sesi", "error", err)
			} else {
				c.Response().Header().Set(HeaderSesiToken, token)
			}
			c.Set(string(ContextKeySesi), id)
			return next(c)
		}
	}
}

func sesiDariHeader(secret []byte, authHeader string) (string, bool) {
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	claims, err := utils.ValidateSesiToken(secret, parts[1])
	if err != nil {
		slog.Debug("token sesi ditolak", "error", err)
		return "", false
	}
	return claims.IDSesi, true
}

// SesiID mengembalikan ID sesi yang dipasang oleh SesiMiddleware.
func SesiID(c echo.Context) string {
	id, _ := c.Get(string(ContextKeySesi)).(string)
	return id
}
