package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://admin@localhost/storefront?sslmode=disable")
	t.Setenv("AUTH_HMAC_SECRET", "dev-secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 5*time.Minute, cfg.DBConnMaxLifetime)
	assert.Equal(t, float64(20), cfg.RateLimitRPS)
}

func TestLoadReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=9090\nAUTH_HMAC_SECRET=from-file\n"), 0o600))
	t.Setenv("DATABASE_URL", "postgres://admin@localhost/storefront")
	// godotenv never overrides variables already present in the process.
	t.Setenv("APP_PORT", "")
	os.Unsetenv("APP_PORT")
	t.Setenv("AUTH_HMAC_SECRET", "")
	os.Unsetenv("AUTH_HMAC_SECRET")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "from-file", cfg.AuthHMACSecret)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")
	t.Setenv("AUTH_HMAC_SECRET", "dev-secret")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoadRequiresVerificationKey(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://admin@localhost/storefront")
	t.Setenv("AUTH_HMAC_SECRET", "")
	t.Setenv("AUTH_PUBLIC_KEY_PEM", "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "AUTH_PUBLIC_KEY_PEM")
}

func TestLoadDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://admin@localhost/storefront")

	url, err := LoadDatabase(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "postgres://admin@localhost/storefront", url)
}

func TestLoadLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")

	level, err := LoadLogLevel(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "info", level)

	path := filepath.Join(t.TempDir(), "debug.env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\n"), 0o600))
	level, err = LoadLogLevel(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", level)
}
