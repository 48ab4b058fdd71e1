package repository

import (
	"context"

	"github.com/annotation-microservice/internal/domain"
)

// TileRepository resolves a tile address against a stored pyramid. A missing
// tile is reported as errors.ErrTileNotFound; pyramids are sparse, so that
// outcome is expected and frequent.
type TileRepository interface {
	GetTile(ctx context.Context, addr domain.TileAddress) ([]byte, error)
}

// TileURLSigner is implemented by backends that can hand out a time-limited
// read URL for the computed storage key instead of streaming the bytes.
type TileURLSigner interface {
	SignTileURL(ctx context.Context, addr domain.TileAddress) (string, error)
}
