package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("rahasia-test")

func TestSesiToken_RoundTrip(t *testing.T) {
	token, err := GenerateSesiToken(testSecret, "sesi-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	claims, err := ValidateSesiToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "sesi-1", claims.IDSesi)
}

func TestSesiToken_Expired(t *testing.T) {
	token, err := GenerateSesiToken(testSecret, "sesi-1", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = ValidateSesiToken(testSecret, token)
	assert.Error(t, err)
}

func TestSesiToken_WrongSecret(t *testing.T) {
	token, err := GenerateSesiToken(testSecret, "sesi-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = ValidateSesiToken([]byte("lain"), token)
	assert.Error(t, err)
}

func TestSesiToken_MissingSecret(t *testing.T) {
	_, err := GenerateSesiToken(nil, "sesi-1", time.Now().Add(time.Hour))
	assert.Error(t, err)

	_, err = ValidateSesiToken(nil, "apa saja")
	assert.Error(t, err)
}
