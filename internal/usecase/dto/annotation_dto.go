package dto

// ReplaceResult is returned by the collection replace endpoints.
type ReplaceResult struct {
	Count   int    `json:"count"`
	Version string `json:"version"`
}

// TileInfo is the debug view of one tile address resolution.
type TileInfo struct {
	Dataset    string  `json:"dataset"`
	Z          uint32  `json:"z"`
	X          uint32  `json:"x"`
	Y          uint32  `json:"y"`
	TMSRow     uint32  `json:"tms_row"`
	StorageKey string  `json:"storage_key"`
	West       float64 `json:"west"`
	South      float64 `json:"south"`
	East       float64 `json:"east"`
	North      float64 `json:"north"`
}
