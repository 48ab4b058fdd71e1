package domain

import (
	"strings"
	"time"

	"github.com/paulmach/orb/geojson"

	"github.com/annotation-microservice/internal/pkg/errors"
)

// LabelOther is the sentinel for components outside the controlled
// vocabulary; it requires a free-text description in additional_info.
const LabelOther = "Other"

// TempIDPrefix marks client-assigned placeholder identifiers. They are
// replaced with durable UUIDs on first save.
const TempIDPrefix = "temp-"

// ComponentLabels is the controlled vocabulary of annotatable substation
// components, in the order the annotation UI presents them.
var ComponentLabels = []string{
	"Power Transformer",
	"Circuit Breaker",
	"Disconnect Switch",
	"Busbar",
	"Current Transformer",
	"Voltage Transformer",
	"Lightning Arrester",
	"Capacitor Bank",
	"Reactor",
	"Control House",
	"Fence",
	LabelOther,
}

// ComponentPolygon is one labeled geometry inside (or awaiting assignment
// to) a substation. Records with FromOSM=true come from the reference
// dataset and are read-only through the normal edit path.
type ComponentPolygon struct {
	ID             string            `json:"id"`
	SubstationUUID *string           `json:"substation_uuid"`
	Label          string            `json:"label"`
	Geometry       *geojson.Geometry `json:"geometry" validate:"required"`
	CreatedAt      time.Time         `json:"created_at"`
	FromOSM        bool              `json:"from_osm"`
	AdditionalInfo *string           `json:"additional_info,omitempty"`
	AnnotationBy   *string           `json:"annotation_by,omitempty"`
}

// HasTempID reports whether the record still carries a client placeholder
// identifier.
func (p *ComponentPolygon) HasTempID() bool {
	return p.ID == "" || strings.HasPrefix(p.ID, TempIDPrefix)
}

// Validate checks record-level invariants. Reference records (FromOSM=true)
// are exempt from the label rules: they carry whatever tags the source
// dataset had.
func (p *ComponentPolygon) Validate() error {
	if p.Geometry == nil {
		return errors.ErrValidation.WithDetails(map[string]interface{}{
			"id":    p.ID,
			"field": "geometry",
			"rule":  "required",
		})
	}

	switch p.Geometry.Type {
	case "Polygon", "LineString", "Point":
	default:
		return errors.ErrValidation.WithDetails(map[string]interface{}{
			"id":       p.ID,
			"field":    "geometry",
			"rule":     "type must be Polygon, LineString or Point",
			"geometry": p.Geometry.Type,
		})
	}

	if p.FromOSM {
		return nil
	}

	if !IsKnownLabel(p.Label) {
		return errors.ErrValidation.WithDetails(map[string]interface{}{
			"id":    p.ID,
			"field": "label",
			"rule":  "must be a known component label or \"Other\"",
			"label": p.Label,
		})
	}

	if p.Label == LabelOther {
		if p.AdditionalInfo == nil || strings.TrimSpace(*p.AdditionalInfo) == "" {
			return errors.ErrValidation.WithDetails(map[string]interface{}{
				"id":    p.ID,
				"field": "additional_info",
				"rule":  "required when label is \"Other\"",
			})
		}
	}

	return nil
}

// IsKnownLabel reports whether label is part of the controlled vocabulary.
func IsKnownLabel(label string) bool {
	for _, l := range ComponentLabels {
		if l == label {
			return true
		}
	}
	return false
}
