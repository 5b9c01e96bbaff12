package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesFields(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-key")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")
	t.Setenv("APP_TOKEN_DURATION", "90m")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env/db")
	t.Setenv("SERVER_ADDRESS", "localhost:7777")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "30s")
	t.Setenv("PATTERNS_VALIDATE_IPS", "true")
	t.Setenv("CONFIG", "/tmp/cfg.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 90*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://env/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:7777", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Patterns.ValidateIPs)
	assert.Equal(t, "/tmp/cfg.json", cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnvironment(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "not-a-duration")

	cfg := &StructuredConfig{}
	require.Error(t, parseEnv(cfg))
}
