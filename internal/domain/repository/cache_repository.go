package repository

import (
	"context"
	"time"

	"github.com/annotation-microservice/internal/domain"
)

// CacheRepository is the read-through cache used for tile bytes and
// statistics. A nil-value, nil-error Get is a cache miss.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	GetTile(ctx context.Context, addr domain.TileAddress) ([]byte, error)
	SetTile(ctx context.Context, addr domain.TileAddress, data []byte, ttl time.Duration) error

	GetStats(ctx context.Context) (*domain.Statistics, error)
	SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error
}
