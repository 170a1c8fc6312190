package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFailsWithoutSigningKey(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingSigningKey)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "unit-test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "unit-test-key", cfg.JWT.SigningKey)
	assert.Equal(t, 24, cfg.JWT.ExpirationHours)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, time.Hour, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "unit-test-key")
	t.Setenv("JWT_EXPIRATION_HOURS", "1")
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.JWT.ExpirationHours)
	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, 30*time.Minute, cfg.DB.ConnMaxLifetime)
}

func TestGetDSN(t *testing.T) {
	c := DBConfig{
		Host: "db", Port: "5432", User: "app",
		Password: "secret", DBName: "notes", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=db port=5432 user=app password=secret dbname=notes sslmode=disable",
		c.GetDSN())
}
