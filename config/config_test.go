package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("VISION_API_KEY", "test-key")
	t.Setenv("DB_PASSWORD", "test-pass")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "https://api.openai.com/v1/chat/completions", cfg.VisionAPIURL)
	assert.Equal(t, 0, cfg.RedisDB)
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("VISION_API_KEY", "test-key")
	t.Setenv("DB_PASSWORD", "test-pass")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadRedisDB(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("VISION_API_KEY", "test-key")
	t.Setenv("DB_PASSWORD", "test-pass")
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}
