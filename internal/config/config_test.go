package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_ENV",
	"APP_HOST",
	"APP_PORT",
	"POSTGRES_DSN",
	"AUTH_COOKIE_NAME",
	"AUTH_JWT_SECRET",
	"AUTH_ACCESS_TOKEN_TTL_MINUTES",
	"AUTH_COOKIE_SECURE",
	"CACHE_EMPLOYEES_TTL_SECONDS",
	"REDIS_DB",
}

// isolateEnv unsets every key Load reads so host values don't leak into tests.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolateEnv(t)
	t.Setenv("POSTGRES_DSN", "postgres://localhost/directory")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL())
	assert.Equal(t, "token", cfg.Auth.CookieName)
	assert.False(t, cfg.Auth.CookieSecure)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.Cache.EmployeesTTL())
}

func TestLoad_ProductionCookieIsSecure(t *testing.T) {
	isolateEnv(t)
	t.Setenv("POSTGRES_DSN", "postgres://localhost/directory")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()

	require.NoError(t, err)
	assert.True(t, cfg.App.IsProduction())
	assert.True(t, cfg.Auth.CookieSecure)
}

func TestLoad_MissingSecret(t *testing.T) {
	isolateEnv(t)
	t.Setenv("POSTGRES_DSN", "postgres://localhost/directory")

	cfg, err := Load()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "AUTH_JWT_SECRET is required")
}

func TestLoad_MissingDSNAndSecret(t *testing.T) {
	isolateEnv(t)

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "POSTGRES_DSN is required")
	assert.Contains(t, err.Error(), "AUTH_JWT_SECRET is required")
}

func TestLoad_InvalidRedisDB(t *testing.T) {
	isolateEnv(t)
	t.Setenv("POSTGRES_DSN", "postgres://localhost/directory")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	t.Setenv("REDIS_DB", "zero")

	_, err := Load()

	require.Error(t, err)
}

func TestLoad_CacheDisabled(t *testing.T) {
	isolateEnv(t)
	t.Setenv("POSTGRES_DSN", "postgres://localhost/directory")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	t.Setenv("CACHE_EMPLOYEES_TTL_SECONDS", "0")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Zero(t, cfg.Cache.EmployeesTTL())
}
