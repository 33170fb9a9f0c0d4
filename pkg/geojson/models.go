package geojson

import "encoding/json"

// FeatureCollection is the top-level GeoJSON container.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is a single GeoJSON feature with free-form properties.
type Feature struct {
	Type       string                     `json:"type"`
	Properties map[string]json.RawMessage `json:"properties"`
	Geometry   *Geometry                  `json:"geometry"`
}

// Geometry keeps coordinates as raw JSON. The dashboard never walks polygon
// rings server-side; the geometry is passed through to the map layer as-is.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}
