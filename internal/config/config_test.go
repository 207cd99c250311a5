package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("JWT_LIFETIME_HOURS", "")
	t.Setenv("SESSION_TTL_SECONDS", "")
	t.Setenv("BCRYPT_COST", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, 24, cfg.JWTLifetimeHours)
	assert.Equal(t, 86400, cfg.SessionTTLSeconds)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_LIFETIME_HOURS", "2")
	t.Setenv("SESSION_TTL_SECONDS", "7200")
	t.Setenv("BCRYPT_COST", "10")

	cfg := Load()

	assert.Equal(t, "9000", cfg.AppPort)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 2, cfg.JWTLifetimeHours)
	assert.Equal(t, 7200, cfg.SessionTTLSeconds)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestLoadBadNumbersFallBack(t *testing.T) {
	t.Setenv("JWT_LIFETIME_HOURS", "soon")
	t.Setenv("BCRYPT_COST", "99")

	cfg := Load()

	assert.Equal(t, 24, cfg.JWTLifetimeHours)
	assert.Equal(t, 12, cfg.BcryptCost)
}
