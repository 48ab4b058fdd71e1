package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Tile    TileConfig
	Redis   RedisConfig
	Cache   CacheConfig
	Log     LogConfig
	Worker  WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type StorageConfig struct {
	// DataDir holds the two collection documents
	// (substations.json, component_polygons.json).
	DataDir string
}

// TileBackend values for TileConfig.Backend.
const (
	TileBackendFS  = "fs"
	TileBackendGCS = "gcs"
)

type TileConfig struct {
	Backend      string
	Dir          string
	GCSBucket    string
	SignedURLs   bool
	SignedURLTTL time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	TilesCacheTTL time.Duration
	StatsCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A .env file is optional; environment variables alone are fine.
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Storage: StorageConfig{
			DataDir: viper.GetString("DATA_DIR"),
		},
		Tile: TileConfig{
			Backend:      viper.GetString("TILE_BACKEND"),
			Dir:          viper.GetString("TILE_DIR"),
			GCSBucket:    viper.GetString("GCS_BUCKET"),
			SignedURLs:   viper.GetBool("GCS_SIGNED_URLS"),
			SignedURLTTL: time.Duration(viper.GetInt("GCS_SIGNED_URL_TTL")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			TilesCacheTTL: time.Duration(viper.GetInt("TILES_CACHE_TTL")) * time.Second,
			StatsCacheTTL: time.Duration(viper.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:       viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup: viper.GetString("WORKER_CONSUMER_GROUP"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = "./data"
	}
	if cfg.Tile.Backend == "" {
		cfg.Tile.Backend = TileBackendFS
	}
	if cfg.Tile.Dir == "" {
		cfg.Tile.Dir = "./tiles"
	}
	if cfg.Tile.SignedURLTTL == 0 {
		cfg.Tile.SignedURLTTL = 15 * time.Minute
	}
	if cfg.Cache.TilesCacheTTL == 0 {
		cfg.Cache.TilesCacheTTL = time.Hour
	}
	if cfg.Cache.StatsCacheTTL == 0 {
		cfg.Cache.StatsCacheTTL = 5 * time.Minute
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "annotation-stats-workers"
	}

	if cfg.Tile.Backend != TileBackendFS && cfg.Tile.Backend != TileBackendGCS {
		return nil, fmt.Errorf("unknown TILE_BACKEND %q (want %q or %q)", cfg.Tile.Backend, TileBackendFS, TileBackendGCS)
	}
	if cfg.Tile.Backend == TileBackendGCS && cfg.Tile.GCSBucket == "" {
		return nil, fmt.Errorf("TILE_BACKEND=gcs requires GCS_BUCKET")
	}

	return cfg, nil
}

// HasRedis reports whether a cache/stream backend is configured. Without it
// the service runs with a no-op cache and no change feed.
func (c *Config) HasRedis() bool {
	return c.Redis.Host != ""
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
