package domain_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/annotation-microservice/internal/domain"
	apperrors "github.com/annotation-microservice/internal/pkg/errors"
)

func TestTileAddress_TMSRow(t *testing.T) {
	tests := []struct {
		z, y     uint32
		expected uint32
	}{
		{z: 0, y: 0, expected: 0},
		{z: 1, y: 0, expected: 1},
		{z: 1, y: 1, expected: 0},
		{z: 3, y: 0, expected: 7},
		{z: 3, y: 7, expected: 0},
		{z: 3, y: 3, expected: 4},
		{z: 10, y: 511, expected: 512},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("z%d_y%d", tt.z, tt.y), func(t *testing.T) {
			addr := domain.TileAddress{Dataset: "d", Z: tt.z, Y: tt.y}
			assert.Equal(t, tt.expected, addr.TMSRow())
		})
	}
}

func TestTileAddress_TMSRowIsInvolutive(t *testing.T) {
	// Flipping the flipped row must always restore the original.
	for z := uint32(0); z <= 8; z++ {
		max := uint32(1) << z
		for _, y := range []uint32{0, max / 2, max - 1} {
			addr := domain.TileAddress{Dataset: "d", Z: z, Y: y}
			flipped := domain.TileAddress{Dataset: "d", Z: z, Y: addr.TMSRow()}
			assert.Equal(t, y, flipped.TMSRow(), "z=%d y=%d", z, y)
		}
	}
}

func TestTileAddress_StorageKey(t *testing.T) {
	// XYZ row 7 at z=3 lands on TMS row 0.
	addr := domain.TileAddress{Dataset: "sub1", Z: 3, X: 2, Y: 7}
	assert.Equal(t, "sub1/3/2/0.png", addr.StorageKey())
}

func TestParseTileAddress(t *testing.T) {
	t.Run("valid address", func(t *testing.T) {
		addr, err := domain.ParseTileAddress("sub1", "3", "2", "7")
		assert.NoError(t, err)
		assert.Equal(t, domain.TileAddress{Dataset: "sub1", Z: 3, X: 2, Y: 7}, addr)
	})

	tests := []struct {
		name             string
		dataset, z, x, y string
	}{
		{"non-integer zoom", "sub1", "abc", "2", "7"},
		{"non-integer row", "sub1", "3", "2", "7.5"},
		{"negative column", "sub1", "3", "-1", "7"},
		{"zoom above cap", "sub1", "31", "0", "0"},
		{"row outside zoom grid", "sub1", "3", "2", "8"},
		{"column outside zoom grid", "sub1", "3", "8", "2"},
		{"empty dataset", "", "3", "2", "7"},
		{"dataset path traversal", "..", "3", "2", "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseTileAddress(tt.dataset, tt.z, tt.x, tt.y)
			assert.ErrorIs(t, err, apperrors.ErrInvalidTileCoordinates)
		})
	}
}

func TestTileAddress_Bound(t *testing.T) {
	// The single z=0 tile spans the whole longitude range.
	addr := domain.TileAddress{Dataset: "d", Z: 0, X: 0, Y: 0}
	bound := addr.Bound()

	assert.InDelta(t, -180.0, bound.Min[0], 1e-9)
	assert.InDelta(t, 180.0, bound.Max[0], 1e-9)
	assert.Less(t, bound.Min[1], bound.Max[1])
}
