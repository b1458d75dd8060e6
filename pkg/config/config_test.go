package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ReturnsDefaultConfig(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Equal(t, BackendRedis, cfg.Backend)
	assert.Equal(t, "redis", cfg.RedisHost)
	assert.Equal(t, 6379, cfg.RedisPort)
	assert.Empty(t, cfg.RedisPassword)
	assert.Equal(t, time.Second, cfg.StoreTimeout)
	assert.Equal(t, "redis:6379", cfg.RedisAddr())
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_PASSWORD", "s3cret")
	t.Setenv("STORE_TIMEOUT", "250ms")
	t.Setenv("STORE_BACKEND", "MEMORY")
	t.Setenv("HEXKV_URL", "http://kv.local:9000/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "cache.internal:6380", cfg.RedisAddr())
	assert.Equal(t, "s3cret", cfg.RedisPassword)
	assert.Equal(t, 250*time.Millisecond, cfg.StoreTimeout)
	assert.Equal(t, BackendMemory, cfg.Backend)
	assert.Equal(t, "http://kv.local:9000", cfg.ServerURL)
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "etcd")

	_, err := Load()
	assert.ErrorContains(t, err, "invalid store backend")
}

func TestValidate(t *testing.T) {
	base := Config{Backend: BackendRedis, RedisPort: 6379, StoreTimeout: time.Second}

	t.Run("valid", func(t *testing.T) {
		cfg := base
		assert.NoError(t, cfg.Validate())
	})
	t.Run("bad port", func(t *testing.T) {
		cfg := base
		cfg.RedisPort = 70000
		assert.Error(t, cfg.Validate())
	})
	t.Run("zero timeout", func(t *testing.T) {
		cfg := base
		cfg.StoreTimeout = 0
		assert.Error(t, cfg.Validate())
	})
}
