package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annotation-microservice/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
	assert.Equal(t, "./data", cfg.Storage.DataDir)
	assert.Equal(t, config.TileBackendFS, cfg.Tile.Backend)
	assert.Equal(t, "./tiles", cfg.Tile.Dir)
	assert.Equal(t, time.Hour, cfg.Cache.TilesCacheTTL)
	assert.Equal(t, 5*time.Minute, cfg.Cache.StatsCacheTTL)
	assert.Equal(t, "annotation-stats-workers", cfg.Worker.ConsumerGroup)
	assert.False(t, cfg.HasRedis())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("REDIS_HOST", "redis.internal")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("TILE_BACKEND", "gcs")
	t.Setenv("GCS_BUCKET", "annotation-tiles")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.HasRedis())
	assert.Equal(t, "redis.internal:6380", cfg.GetRedisAddr())
	assert.Equal(t, config.TileBackendGCS, cfg.Tile.Backend)
	assert.Equal(t, "annotation-tiles", cfg.Tile.GCSBucket)
}

func TestLoad_RejectsBadTileBackend(t *testing.T) {
	t.Setenv("TILE_BACKEND", "s3")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_GCSBackendRequiresBucket(t *testing.T) {
	t.Setenv("TILE_BACKEND", "gcs")
	t.Setenv("GCS_BUCKET", "")

	_, err := config.Load()
	assert.Error(t, err)
}
