package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv removes a variable for the duration of the test. t.Setenv is called
// first so the original value is restored on cleanup.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "bazario")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "bazario_db")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_POOL_SIZE", "JWT_ACCESS_TOKEN_DURATION", "OTP_TTL", "PORT"} {
		unsetenv(t, key)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "bazario", cfg.DB.User)
	assert.Equal(t, 10, cfg.DB.MaxSize)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenDuration)
	assert.Equal(t, 15*time.Minute, cfg.OTP.TTL)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_POOL_SIZE", "25")
	t.Setenv("JWT_ACCESS_TOKEN_DURATION", "30m")
	t.Setenv("OTP_TTL", "5m")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 5433, cfg.DB.Port)
	assert.Equal(t, 25, cfg.DB.MaxSize)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenDuration)
	assert.Equal(t, 5*time.Minute, cfg.OTP.TTL)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadConfigMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	// Removing one required variable must fail the whole load, and the error
	// must name the variable.
	unsetenv(t, "JWT_SECRET")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadConfigCollectsAllErrors(t *testing.T) {
	setRequiredEnv(t)
	unsetenv(t, "DB_USER")
	unsetenv(t, "DB_PASSWORD")
	t.Setenv("DB_PORT", "not-a-number")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_USER")
	assert.Contains(t, err.Error(), "DB_PASSWORD")
	assert.Contains(t, err.Error(), "DB_PORT")
}

func TestLoadConfigInvalidDuration(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("OTP_TTL", "fifteen minutes")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OTP_TTL")
}

func TestClampPoolSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, clampPoolSize(1))
	assert.Equal(t, 5, clampPoolSize(5))
	assert.Equal(t, 42, clampPoolSize(42))
	assert.Equal(t, 100, clampPoolSize(100))
	assert.Equal(t, 100, clampPoolSize(500))
}
