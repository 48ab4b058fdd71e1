package domain_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"

	"github.com/annotation-microservice/internal/domain"
)

func strPtr(s string) *string { return &s }

func polygonGeometry() *geojson.Geometry {
	return geojson.NewGeometry(orb.Polygon{
		{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}},
	})
}

func TestComponentPolygon_HasTempID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected bool
	}{
		{"temp prefix", "temp-12345", true},
		{"empty id", "", true},
		{"durable uuid", "b2f1c9a0-0000-0000-0000-000000000000", false},
		{"temp not at prefix", "x-temp-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.ComponentPolygon{ID: tt.id}
			assert.Equal(t, tt.expected, p.HasTempID())
		})
	}
}

func TestComponentPolygon_Validate(t *testing.T) {
	tests := []struct {
		name    string
		record  domain.ComponentPolygon
		wantErr bool
	}{
		{
			name: "valid labeled polygon",
			record: domain.ComponentPolygon{
				ID:       "a",
				Label:    "Power Transformer",
				Geometry: polygonGeometry(),
			},
		},
		{
			name: "valid point component",
			record: domain.ComponentPolygon{
				ID:       "a",
				Label:    "Fence",
				Geometry: geojson.NewGeometry(orb.Point{1, 2}),
			},
		},
		{
			name: "other with description",
			record: domain.ComponentPolygon{
				ID:             "a",
				Label:          domain.LabelOther,
				AdditionalInfo: strPtr("cooling radiator"),
				Geometry:       polygonGeometry(),
			},
		},
		{
			name: "other without description",
			record: domain.ComponentPolygon{
				ID:       "a",
				Label:    domain.LabelOther,
				Geometry: polygonGeometry(),
			},
			wantErr: true,
		},
		{
			name: "other with blank description",
			record: domain.ComponentPolygon{
				ID:             "a",
				Label:          domain.LabelOther,
				AdditionalInfo: strPtr("   "),
				Geometry:       polygonGeometry(),
			},
			wantErr: true,
		},
		{
			name: "unknown label",
			record: domain.ComponentPolygon{
				ID:       "a",
				Label:    "Flux Capacitor",
				Geometry: polygonGeometry(),
			},
			wantErr: true,
		},
		{
			name: "missing geometry",
			record: domain.ComponentPolygon{
				ID:    "a",
				Label: "Busbar",
			},
			wantErr: true,
		},
		{
			name: "unsupported geometry type",
			record: domain.ComponentPolygon{
				ID:    "a",
				Label: "Busbar",
				Geometry: geojson.NewGeometry(orb.MultiPolygon{
					{{{0, 0}, {0, 1}, {1, 1}, {0, 0}}},
				}),
			},
			wantErr: true,
		},
		{
			name: "reference record exempt from label rules",
			record: domain.ComponentPolygon{
				ID:       "a",
				Label:    "power=portal",
				FromOSM:  true,
				Geometry: polygonGeometry(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsKnownLabel(t *testing.T) {
	assert.True(t, domain.IsKnownLabel("Circuit Breaker"))
	assert.True(t, domain.IsKnownLabel(domain.LabelOther))
	assert.False(t, domain.IsKnownLabel("other"))
	assert.False(t, domain.IsKnownLabel(""))
}
