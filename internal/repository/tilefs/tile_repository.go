package tilefs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/annotation-microservice/internal/domain"
	"github.com/annotation-microservice/internal/domain/repository"
	apperrors "github.com/annotation-microservice/internal/pkg/errors"
)

// tileRepository serves pre-rendered PNG tiles from a static directory tree
// laid out as {dataset}/{z}/{x}/{tmsY}.png. The tree is provisioned
// out-of-band and read-only from this service's perspective.
type tileRepository struct {
	fs     afero.Fs
	dir    string
	logger *zap.Logger
}

func NewTileRepository(fsys afero.Fs, dir string, logger *zap.Logger) repository.TileRepository {
	return &tileRepository{
		fs:     fsys,
		dir:    dir,
		logger: logger,
	}
}

func (r *tileRepository) GetTile(ctx context.Context, addr domain.TileAddress) ([]byte, error) {
	path := filepath.Join(r.dir, filepath.FromSlash(addr.StorageKey()))

	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			// Pyramids are sparse; a miss is a normal outcome.
			return nil, apperrors.ErrTileNotFound
		}
		r.logger.Error("Failed to read tile",
			zap.String("path", path),
			zap.Error(err))
		return nil, apperrors.ErrStorage.WithDetails(map[string]interface{}{
			"key":   addr.StorageKey(),
			"cause": err.Error(),
		})
	}

	return data, nil
}
