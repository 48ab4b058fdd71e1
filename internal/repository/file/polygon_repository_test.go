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

func strPtr(s string) *string { return &s }

func TestPolygonRepository_ListAbsentFile(t *testing.T) {
	store := newTestStore(t)
	repo := file.NewPolygonRepository(store, zap.NewNop())

	records, version, err := repo.List(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []domain.ComponentPolygon{}, records)
	assert.Equal(t, file.VersionAbsent, version)
}

func TestPolygonRepository_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	repo := file.NewPolygonRepository(store, zap.NewNop())
	ctx := context.Background()

	created := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	records := []domain.ComponentPolygon{
		{
			ID:             "c1",
			SubstationUUID: strPtr("s1"),
			Label:          "Power Transformer",
			Geometry: geojson.NewGeometry(orb.Polygon{
				{{13.4, 52.5}, {13.4, 52.6}, {13.5, 52.6}, {13.4, 52.5}},
			}),
			CreatedAt:    created,
			AnnotationBy: strPtr("alice"),
		},
		{
			ID:        "c2",
			Label:     "highway=service",
			Geometry:  geojson.NewGeometry(orb.LineString{{13.4, 52.5}, {13.5, 52.5}}),
			CreatedAt: created,
			FromOSM:   true,
		},
	}

	version, err := repo.ReplaceAll(ctx, records, "")
	require.NoError(t, err)

	got, gotVersion, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, version, gotVersion)
	require.Len(t, got, 2)

	assert.Equal(t, "c1", got[0].ID)
	assert.Equal(t, "Power Transformer", got[0].Label)
	assert.Equal(t, "s1", *got[0].SubstationUUID)
	assert.Equal(t, "alice", *got[0].AnnotationBy)
	assert.True(t, created.Equal(got[0].CreatedAt))
	assert.Equal(t, "Polygon", got[0].Geometry.Type)

	assert.True(t, got[1].FromOSM)
	assert.Equal(t, "LineString", got[1].Geometry.Type)
}

func TestPolygonRepository_ReplaceAllNilBecomesEmptyArray(t *testing.T) {
	store := newTestStore(t)
	repo := file.NewPolygonRepository(store, zap.NewNop())

	_, err := repo.ReplaceAll(context.Background(), nil, "")
	require.NoError(t, err)

	data, _, err := store.Read(file.PolygonsFile)
	assert.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestPolygonRepository_NormalizesLegacyLabels(t *testing.T) {
	store := newTestStore(t)
	repo := file.NewPolygonRepository(store, zap.NewNop())
	ctx := context.Background()

	point := geojson.NewGeometry(orb.Point{13.4, 52.5})
	stored := []domain.ComponentPolygon{
		{ID: "c1", Label: "Other: cooling radiator", Geometry: point},
		{ID: "c2", Label: "other", Geometry: point},
		{ID: "c3", Label: "Other: ignored", AdditionalInfo: strPtr("kept"), Geometry: point},
		{ID: "c4", Label: "Busbar", Geometry: point},
	}
	_, err := repo.ReplaceAll(ctx, stored, "")
	require.NoError(t, err)

	got, _, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, domain.LabelOther, got[0].Label)
	require.NotNil(t, got[0].AdditionalInfo)
	assert.Equal(t, "cooling radiator", *got[0].AdditionalInfo)

	assert.Equal(t, domain.LabelOther, got[1].Label)

	// An existing description wins over the legacy suffix.
	assert.Equal(t, domain.LabelOther, got[2].Label)
	assert.Equal(t, "kept", *got[2].AdditionalInfo)

	assert.Equal(t, "Busbar", got[3].Label)
}
