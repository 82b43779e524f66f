package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SHOPQL_JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":5000", cfg.Addr)
	assert.Equal(t, "shopql-data", cfg.DataDir)
	assert.Equal(t, 72*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SHOPQL_JWT_SECRET", "test-secret")
	t.Setenv("SHOPQL_ADDR", ":8080")
	t.Setenv("SHOPQL_DATA_DIR", "/tmp/x")
	t.Setenv("SHOPQL_TOKEN_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "/tmp/x", cfg.DataDir)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("SHOPQL_JWT_SECRET", "")
	_, err := Load()
	require.Error(t, err)
}
