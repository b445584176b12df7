package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Claims token sesi. Hanya membawa ID sesi listing, bukan identitas pengguna.
type Claims struct {
	IDSesi string `json:"id_sesi"`
	jwt.RegisteredClaims
}

// GenerateSesiToken membuat token JWT HS256 untuk ID sesi dengan masa berlaku exp.
func GenerateSesiToken(secret []byte, idSesi string, exp time.Time) (string, error) {
	if len(secret) == 0 {
		return "", fmt.Errorf("JWT secret key is missing")
	}

	claims := Claims{
		IDSesi: idSesi,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateSesiToken memvalidasi token dan mengembalikan klaimnya.
func ValidateSesiToken(secret []byte, tokenString string) (*Claims, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("JWT secret key is missing")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.IDSesi == "" {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
