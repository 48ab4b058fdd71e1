package domain

import "time"

// Statistics is the aggregated view of the annotation corpus served by
// GET /api/stats.
type Statistics struct {
	Substations SubstationStats `json:"substations"`
	Components  ComponentStats  `json:"components"`
	Coverage    CoverageStats   `json:"coverage"`
	LastUpdated time.Time       `json:"last_updated"`
}

// SubstationStats splits the substation collection into the two work queues.
type SubstationStats struct {
	Total     int            `json:"total"`
	Completed int            `json:"completed"`
	Remaining int            `json:"remaining"`
	ByType    map[string]int `json:"by_type"`
}

// ComponentStats summarizes the component polygon collection.
type ComponentStats struct {
	Total        int            `json:"total"`
	UserAuthored int            `json:"user_authored"`
	FromOSM      int            `json:"from_osm"`
	Unassigned   int            `json:"unassigned"`
	ByLabel      map[string]int `json:"by_label"`
}

// CoverageStats is the bounding box over all substation geometries.
type CoverageStats struct {
	BBoxMinLat float64 `json:"bbox_min_lat"`
	BBoxMaxLat float64 `json:"bbox_max_lat"`
	BBoxMinLon float64 `json:"bbox_min_lon"`
	BBoxMaxLon float64 `json:"bbox_max_lon"`
	CenterLat  float64 `json:"center_lat"`
	CenterLon  float64 `json:"center_lon"`
	AreaSqKm   float64 `json:"area_sq_km"`
}
