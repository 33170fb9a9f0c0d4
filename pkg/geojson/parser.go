package geojson

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse decodes a GeoJSON FeatureCollection from r.
func Parse(r io.Reader) (*FeatureCollection, error) {
	var fc FeatureCollection
	if err := json.NewDecoder(r).Decode(&fc); err != nil {
		return nil, fmt.Errorf("failed to parse GeoJSON: %w", err)
	}

	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("expected FeatureCollection, got %q", fc.Type)
	}

	for i, feature := range fc.Features {
		if feature.Type != "Feature" {
			return nil, fmt.Errorf("feature %d: expected Feature, got %q", i, feature.Type)
		}
	}

	return &fc, nil
}

// StringProperty returns the named property decoded as a string.
func (f *Feature) StringProperty(name string) (string, bool) {
	raw, exists := f.Properties[name]
	if !exists {
		return "", false
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false
	}
	return value, true
}

// FloatProperty returns the named property decoded as a float64. Numbers
// encoded as JSON strings are accepted as well; some GIS exports quote
// numeric columns.
func (f *Feature) FloatProperty(name string) (float64, bool) {
	raw, exists := f.Properties[name]
	if !exists {
		return 0, false
	}

	var value float64
	if err := json.Unmarshal(raw, &value); err == nil {
		return value, true
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return 0, false
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
