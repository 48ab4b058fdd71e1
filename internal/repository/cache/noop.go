package cache

import (
	"context"
	"time"

	"github.com/annotation-microservice/internal/domain"
	"github.com/annotation-microservice/internal/domain/repository"
)

// noopCache stands in when no Redis is configured: every read is a miss and
// every write succeeds silently. Lets the service run as a single local
// process with zero infrastructure.
type noopCache struct{}

func NewNoop() repository.CacheRepository {
	return noopCache{}
}

func (noopCache) Get(ctx context.Context, key string) ([]byte, error) { return nil, nil }

func (noopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (noopCache) Delete(ctx context.Context, key string) error { return nil }

func (noopCache) Exists(ctx context.Context, key string) (bool, error) { return false, nil }

func (noopCache) GetTile(ctx context.Context, addr domain.TileAddress) ([]byte, error) {
	return nil, nil
}

func (noopCache) SetTile(ctx context.Context, addr domain.TileAddress, data []byte, ttl time.Duration) error {
	return nil
}

func (noopCache) GetStats(ctx context.Context) (*domain.Statistics, error) { return nil, nil }

func (noopCache) SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error {
	return nil
}
