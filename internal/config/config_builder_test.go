package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  "key",
			TokenIssuer:   "blackraven",
			TokenDuration: time.Hour,
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/blackraven"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
}

func TestBuild_MergePrecedence(t *testing.T) {
	// an earlier config in the list wins for non-zero fields
	b := newConfigBuilder()
	first := validConfig()
	first.Server.HTTPAddress = "localhost:1111"

	second := validConfig()
	second.Server.HTTPAddress = "localhost:2222"
	second.Patterns.ValidateIPs = true

	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "localhost:1111", cfg.Server.HTTPAddress)
	// zero fields are filled from later sources
	assert.True(t, cfg.Patterns.ValidateIPs)
}

func TestBuild_ValidationFailure(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{
			name:    "empty DSN",
			mutate:  func(c *StructuredConfig) { c.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty token sign key",
			mutate:  func(c *StructuredConfig) { c.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero token duration",
			mutate:  func(c *StructuredConfig) { c.App.TokenDuration = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "empty http address",
			mutate:  func(c *StructuredConfig) { c.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			cfg := validConfig()
			tt.mutate(cfg)
			b.configs = append(b.configs, cfg)

			_, err := b.build()
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWithJSON_MergesFile(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "config.json")
	content := `{
		"app": {"token_sign_key": "json-key", "token_issuer": "json-issuer", "token_duration": "2h"},
		"storage": {"db": {"dsn": "postgres://json/db"}},
		"server": {"http_address": "localhost:9999", "request_timeout": "45s"},
		"patterns": {"validate_ips": true}
	}`
	require.NoError(t, os.WriteFile(jsonPath, []byte(content), 0o600))

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: jsonPath})
	b.withJSON()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://json/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Patterns.ValidateIPs)
}

func TestWithJSON_MissingFileIsAnError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()

	_, err := b.build()
	require.Error(t, err)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())
	b.withJSON()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/blackraven", cfg.Storage.DB.DSN)
}
