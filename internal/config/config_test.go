package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "")
	t.Setenv("FRONTEND_URL", "")
	t.Setenv("REDIS_DB", "")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, "http://localhost:3000", cfg.FrontendOrigin)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "8081")
	t.Setenv("FRONTEND_URL", "https://app.example.com")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "8081", cfg.ServerPort)
	assert.Equal(t, "https://app.example.com", cfg.FrontendOrigin)
	assert.Equal(t, 3, cfg.RedisDB)
}
