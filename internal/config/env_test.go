package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesFields(t *testing.T) {
	t.Setenv("APP_ROUNDS", "8")
	t.Setenv("APP_PASSWORD_LENGTH", "24")
	t.Setenv("STORAGE_BACKEND", "sqlite")
	t.Setenv("STORAGE_VAULT_PATH", "/tmp/vault.txt")
	t.Setenv("STORAGE_DATABASE_URI", "/tmp/vault.db")
	t.Setenv("CONFIG", "/tmp/config.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, 8, cfg.App.Rounds)
	assert.Equal(t, 24, cfg.App.PasswordLength)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/vault.txt", cfg.Storage.VaultPath)
	assert.Equal(t, "/tmp/vault.db", cfg.Storage.DSN)
	assert.Equal(t, "/tmp/config.json", cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnvironmentIsValid(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Zero(t, cfg.App.Rounds)
	assert.Empty(t, cfg.Storage.Backend)
}
