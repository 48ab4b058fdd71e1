package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/annotation-microservice/internal/domain"
	"github.com/annotation-microservice/internal/domain/repository"
	apperrors "github.com/annotation-microservice/internal/pkg/errors"
	"github.com/annotation-microservice/internal/usecase/dto"
)

type TileUseCase struct {
	tileRepo     repository.TileRepository
	signer       repository.TileURLSigner // nil unless the backend can mint signed URLs
	cacheRepo    repository.CacheRepository
	logger       *zap.Logger
	tileCacheTTL time.Duration
}

func NewTileUseCase(
	tileRepo repository.TileRepository,
	signer repository.TileURLSigner,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	tileCacheTTL time.Duration,
) *TileUseCase {
	return &TileUseCase{
		tileRepo:     tileRepo,
		signer:       signer,
		cacheRepo:    cacheRepo,
		logger:       logger,
		tileCacheTTL: tileCacheTTL,
	}
}

// GetTile returns the PNG bytes for one tile address, read-through cached.
// A sparse-pyramid miss comes back as ErrTileNotFound and is never cached.
func (uc *TileUseCase) GetTile(ctx context.Context, addr domain.TileAddress) ([]byte, error) {
	cached, err := uc.cacheRepo.GetTile(ctx, addr)
	if err == nil && cached != nil {
		return cached, nil
	}

	data, err := uc.tileRepo.GetTile(ctx, addr)
	if err != nil {
		if errors.Is(err, apperrors.ErrTileNotFound) {
			uc.logger.Debug("Tile miss",
				zap.String("dataset", addr.Dataset),
				zap.Uint32("z", addr.Z),
				zap.Uint32("x", addr.X),
				zap.Uint32("y", addr.Y))
			return nil, err
		}
		uc.logger.Error("Failed to resolve tile",
			zap.String("key", addr.StorageKey()),
			zap.Error(err))
		return nil, err
	}

	if err := uc.cacheRepo.SetTile(ctx, addr, data, uc.tileCacheTTL); err != nil {
		uc.logger.Warn("Failed to cache tile", zap.Error(err))
	}

	return data, nil
}

// CanSignURLs reports whether the configured backend redirects clients to
// scoped, time-limited object URLs instead of streaming bytes.
func (uc *TileUseCase) CanSignURLs() bool {
	return uc.signer != nil
}

// SignTileURL mints a time-limited read URL for the computed storage key.
func (uc *TileUseCase) SignTileURL(ctx context.Context, addr domain.TileAddress) (string, error) {
	if uc.signer == nil {
		return "", apperrors.ErrInternalServer.WithMessage("tile backend does not support signed URLs")
	}
	return uc.signer.SignTileURL(ctx, addr)
}

// Info resolves a tile address without touching storage: the TMS row, the
// storage key and the geographic extent.
func (uc *TileUseCase) Info(addr domain.TileAddress) dto.TileInfo {
	bound := addr.Bound()
	return dto.TileInfo{
		Dataset:    addr.Dataset,
		Z:          addr.Z,
		X:          addr.X,
		Y:          addr.Y,
		TMSRow:     addr.TMSRow(),
		StorageKey: addr.StorageKey(),
		West:       bound.Min[0],
		South:      bound.Min[1],
		East:       bound.Max[0],
		North:      bound.Max[1],
	}
}
