package tilefs_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/annotation-microservice/internal/domain"
	apperrors "github.com/annotation-microservice/internal/pkg/errors"
	"github.com/annotation-microservice/internal/repository/tilefs"
)

var pngStub = []byte("\x89PNG\r\n\x1a\nstub")

func TestTileRepository_GetTile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	// XYZ request z=3 x=2 y=7 resolves to TMS row 0 on disk.
	require.NoError(t, afero.WriteFile(fsys, "/tiles/sub1/3/2/0.png", pngStub, 0o644))

	repo := tilefs.NewTileRepository(fsys, "/tiles", zap.NewNop())

	data, err := repo.GetTile(context.Background(), domain.TileAddress{
		Dataset: "sub1", Z: 3, X: 2, Y: 7,
	})

	assert.NoError(t, err)
	assert.Equal(t, pngStub, data)
}

func TestTileRepository_GetTileMissing(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/tiles/sub1/3/2/0.png", pngStub, 0o644))

	repo := tilefs.NewTileRepository(fsys, "/tiles", zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name string
		addr domain.TileAddress
	}{
		{"hole in the pyramid", domain.TileAddress{Dataset: "sub1", Z: 3, X: 2, Y: 6}},
		{"unknown dataset", domain.TileAddress{Dataset: "sub2", Z: 3, X: 2, Y: 7}},
		{"unrendered zoom", domain.TileAddress{Dataset: "sub1", Z: 9, X: 0, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := repo.GetTile(ctx, tt.addr)
			assert.Nil(t, data)
			assert.ErrorIs(t, err, apperrors.ErrTileNotFound)
		})
	}
}
