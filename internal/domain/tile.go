package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"

	"github.com/annotation-microservice/internal/pkg/errors"
)

// MaxZoom caps the accepted zoom level so 1<<z never overflows and absurd
// requests are rejected up front. Imagery pyramids top out well below this.
const MaxZoom = 30

// TileAddress is a raster tile request in XYZ convention (row 0 at the
// north edge), scoped to one dataset's pyramid.
type TileAddress struct {
	Dataset string
	Z       uint32
	X       uint32
	Y       uint32
}

// ParseTileAddress builds a TileAddress from raw path segments. Any
// non-integer, out-of-range or unsafe component is an INVALID_TILE_COORDINATES
// client error, never a lookup miss.
func ParseTileAddress(dataset, z, x, y string) (TileAddress, error) {
	if dataset == "" || dataset == "." || dataset == ".." || strings.ContainsAny(dataset, "/\\") {
		return TileAddress{}, errors.ErrInvalidTileCoordinates.WithDetails(map[string]interface{}{
			"dataset": dataset,
		})
	}

	zv, err := strconv.ParseUint(z, 10, 32)
	if err != nil || zv > MaxZoom {
		return TileAddress{}, errors.ErrInvalidTileCoordinates.WithDetails(map[string]interface{}{
			"z": z,
		})
	}

	xv, err := strconv.ParseUint(x, 10, 32)
	if err != nil || xv >= 1<<zv {
		return TileAddress{}, errors.ErrInvalidTileCoordinates.WithDetails(map[string]interface{}{
			"x": x,
		})
	}

	yv, err := strconv.ParseUint(y, 10, 32)
	if err != nil || yv >= 1<<zv {
		return TileAddress{}, errors.ErrInvalidTileCoordinates.WithDetails(map[string]interface{}{
			"y": y,
		})
	}

	return TileAddress{
		Dataset: dataset,
		Z:       uint32(zv),
		X:       uint32(xv),
		Y:       uint32(yv),
	}, nil
}

// TMSRow converts the XYZ row to the TMS convention (row 0 at the south
// edge) used by the stored pyramid. The flip is involutive, so it must be
// applied exactly once per request.
func (t TileAddress) TMSRow() uint32 {
	return uint32(1)<<t.Z - 1 - t.Y
}

// StorageKey is the location of the tile inside the pyramid, relative to the
// tile root: {dataset}/{z}/{x}/{tmsY}.png.
func (t TileAddress) StorageKey() string {
	return fmt.Sprintf("%s/%d/%d/%d.png", t.Dataset, t.Z, t.X, t.TMSRow())
}

// Bound is the geographic extent of the tile in WGS84.
func (t TileAddress) Bound() orb.Bound {
	return maptile.New(t.X, t.Y, maptile.Zoom(t.Z)).Bound()
}
