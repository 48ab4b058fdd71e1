package domain

import (
	"time"

	"github.com/paulmach/orb/geojson"

	"github.com/annotation-microservice/internal/pkg/errors"
)

// Substation is one aerial-imagery work item. The completed flag splits the
// collection into the two annotation queues ("to annotate" vs "done").
type Substation struct {
	ID              string            `json:"id"`
	FullID          *string           `json:"full_id,omitempty"`
	Name            *string           `json:"name,omitempty"`
	SubstationType  *string           `json:"substation_type,omitempty"`
	Geometry        *geojson.Geometry `json:"geometry" validate:"required"`
	CreatedAt       time.Time         `json:"created_at"`
	Completed       bool              `json:"completed"`
	TileURLTemplate *string           `json:"tile_url_template,omitempty"`
}

// Validate checks the invariants that struct tags cannot express.
func (s *Substation) Validate() error {
	if s.Geometry == nil {
		return errors.ErrValidation.WithDetails(map[string]interface{}{
			"id":    s.ID,
			"field": "geometry",
			"rule":  "required",
		})
	}

	switch s.Geometry.Type {
	case "Polygon", "Point":
	default:
		return errors.ErrValidation.WithDetails(map[string]interface{}{
			"id":       s.ID,
			"field":    "geometry",
			"rule":     "type must be Polygon or Point",
			"geometry": s.Geometry.Type,
		})
	}

	return nil
}
