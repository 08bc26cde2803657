package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("FORMSPREE_ENDPOINT", "")
	t.Setenv("RELAY_TIMEOUT", "")
	t.Setenv("PORT", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("MAX_SESSIONS", "")

	cfg := LoadConfig(New())

	assert.Equal(t, DefaultRelayEndpoint, cfg.RelayEndpoint)
	assert.Equal(t, 15*time.Second, cfg.RelayTimeout)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 10000, cfg.MaxSessions)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("FORMSPREE_ENDPOINT", "https://formspree.io/f/abc123")
	t.Setenv("RELAY_TIMEOUT", "3s")
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CONTACT_EMAIL", "me@example.com")
	t.Setenv("MAX_SESSIONS", "250")

	cfg := LoadConfig(New())

	assert.Equal(t, "https://formspree.io/f/abc123", cfg.RelayEndpoint)
	assert.Equal(t, 3*time.Second, cfg.RelayTimeout)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "me@example.com", cfg.ContactEmail)
	assert.Equal(t, 250, cfg.MaxSessions)
}

func TestLoadConfigRejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("RELAY_TIMEOUT", "-1s")
	cfg := LoadConfig(New())
	assert.Equal(t, 15*time.Second, cfg.RelayTimeout)
}

func TestLoadConfigRejectsNonPositiveMaxSessions(t *testing.T) {
	t.Setenv("MAX_SESSIONS", "0")
	cfg := LoadConfig(New())
	assert.Equal(t, 10000, cfg.MaxSessions)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("CONTACT_EMAIL=env-file@example.com\n"), 0o600))

	t.Setenv("CONTACT_EMAIL", "")
	require.NoError(t, os.Unsetenv("CONTACT_EMAIL"))

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "env-file@example.com", LoadConfig(New()).ContactEmail)
}

func TestLoadEnvFileMissing(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
}
