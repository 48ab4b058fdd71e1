package tilegcs

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"cloud.google.com/go/storage"
	"go.uber.org/zap"

	"github.com/annotation-microservice/internal/domain"
	apperrors "github.com/annotation-microservice/internal/pkg/errors"
)

// TileRepository resolves tiles against a GCS bucket using the same
// {dataset}/{z}/{x}/{tmsY}.png key scheme as the filesystem backend. It can
// also mint V4 signed read URLs scoped to exactly one key, so long-lived
// bucket credentials never reach the map client.
type TileRepository struct {
	client  *storage.Client
	bucket  string
	signTTL time.Duration
	logger  *zap.Logger
}

func NewTileRepository(ctx context.Context, bucket string, signTTL time.Duration, logger *zap.Logger) (*TileRepository, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, err
	}

	logger.Info("GCS tile backend initialized",
		zap.String("bucket", bucket),
		zap.Duration("signed_url_ttl", signTTL))

	return &TileRepository{
		client:  client,
		bucket:  bucket,
		signTTL: signTTL,
		logger:  logger,
	}, nil
}

func (r *TileRepository) GetTile(ctx context.Context, addr domain.TileAddress) ([]byte, error) {
	rc, err := r.client.Bucket(r.bucket).Object(addr.StorageKey()).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, apperrors.ErrTileNotFound
		}
		r.logger.Error("Failed to open tile object",
			zap.String("key", addr.StorageKey()),
			zap.Error(err))
		return nil, apperrors.ErrStorage.WithDetails(map[string]interface{}{
			"key":   addr.StorageKey(),
			"cause": err.Error(),
		})
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		r.logger.Error("Failed to read tile object",
			zap.String("key", addr.StorageKey()),
			zap.Error(err))
		return nil, apperrors.ErrStorage.WithDetails(map[string]interface{}{
			"key":   addr.StorageKey(),
			"cause": err.Error(),
		})
	}

	return data, nil
}

// SignTileURL returns a time-limited GET URL for the computed key. The key
// mapping and TMS flip are identical to the byte-serving path.
func (r *TileRepository) SignTileURL(ctx context.Context, addr domain.TileAddress) (string, error) {
	url, err := r.client.Bucket(r.bucket).SignedURL(addr.StorageKey(), &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  http.MethodGet,
		Expires: time.Now().Add(r.signTTL),
	})
	if err != nil {
		r.logger.Error("Failed to sign tile URL",
			zap.String("key", addr.StorageKey()),
			zap.Error(err))
		return "", apperrors.ErrStorage.WithDetails(map[string]interface{}{
			"key":   addr.StorageKey(),
			"cause": err.Error(),
		})
	}

	return url, nil
}

func (r *TileRepository) Close() error {
	return r.client.Close()
}
