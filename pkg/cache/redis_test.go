package cache

import (
	"context"
	"testing"

	"github.com/c14220110/radiologi-backend/config"
	"github.com/stretchr/testify/assert"
)

func TestConnect_DisabledWithoutAddr(t *testing.T) {
	assert.Nil(t, Connect(context.Background(), &config.Config{}))
}
