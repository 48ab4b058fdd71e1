package file_test

import (
	"context"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/annotation-microservice/internal/domain"
	"github.com/annotation-microservice/internal/repository/file"
)

func TestSubstationRepository_ListAbsentFile(t *testing.T) {
	store := newTestStore(t)
	repo := file.NewSubstationRepository(store, zap.NewNop())

	records, version, err := repo.List(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []domain.Substation{}, records)
	assert.Equal(t, file.VersionAbsent, version)
}

func TestSubstationRepository_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	repo := file.NewSubstationRepository(store, zap.NewNop())
	ctx := context.Background()

	created := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	records := []domain.Substation{
		{
			ID:             "s1",
			Name:           strPtr("Umspannwerk Ost"),
			SubstationType: strPtr("transmission"),
			Geometry:       geojson.NewGeometry(orb.Point{13.405, 52.52}),
			CreatedAt:      created,
			Completed:      true,
		},
	}

	version, err := repo.ReplaceAll(ctx, records, "")
	require.NoError(t, err)
	assert.NotEqual(t, file.VersionAbsent, version)

	got, gotVersion, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, version, gotVersion)
	require.Len(t, got, 1)

	assert.Equal(t, "s1", got[0].ID)
	assert.Equal(t, "Umspannwerk Ost", *got[0].Name)
	assert.Equal(t, "transmission", *got[0].SubstationType)
	assert.True(t, got[0].Completed)
	assert.True(t, created.Equal(got[0].CreatedAt))
	assert.Equal(t, "Point", got[0].Geometry.Type)
	assert.Nil(t, got[0].FullID)
}

func TestSubstationRepository_EmptyArrayRoundTrip(t *testing.T) {
	store := newTestStore(t)
	repo := file.NewSubstationRepository(store, zap.NewNop())
	ctx := context.Background()

	_, err := repo.ReplaceAll(ctx, []domain.Substation{}, "")
	require.NoError(t, err)

	got, version, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []domain.Substation{}, got)
	assert.NotEqual(t, file.VersionAbsent, version)
}
