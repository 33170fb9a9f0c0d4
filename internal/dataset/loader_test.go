package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFixture builds a complete GeoJSON source file covering every canonical
// state, applies the overrides to the generated properties, and writes it to a
// temp dir.
func writeFixture(t *testing.T, overrides map[string]map[string]any) string {
	t.Helper()

	type feature struct {
		Type       string         `json:"type"`
		Properties map[string]any `json:"properties"`
		Geometry   map[string]any `json:"geometry"`
	}

	var features []feature
	for i, state := range StateNames() {
		properties := map[string]any{"State": state}
		for year := FirstYear; year <= LastYear; year++ {
			// Deterministic, all distinct, all positive.
			properties[fmt.Sprintf("%d_mean", year)] = 0.020 + float64(i)*0.0005 + float64(year-FirstYear)*0.0001
		}
		for key, value := range overrides[state] {
			if value == nil {
				delete(properties, key)
			} else {
				properties[key] = value
			}
		}
		features = append(features, feature{
			Type:       "Feature",
			Properties: properties,
			Geometry: map[string]any{
				"type":        "Polygon",
				"coordinates": [][][]float64{{{8, 9}, {9, 9}, {9, 10}, {8, 10}, {8, 9}}},
			},
		})
	}

	data, err := json.Marshal(map[string]any{
		"type":     "FeatureCollection",
		"features": features,
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "nigeria_state_co.geojson")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFixture(t, nil)

	ds, err := Load(path)
	require.NoError(t, err)

	assert.Len(t, ds.States(), 37)
	assert.Equal(t, []int{2020, 2021, 2022, 2023, 2024}, ds.Years())
	assert.Equal(t, 37*5, ds.Count())
	assert.NotEmpty(t, ds.RawGeoJSON())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.geojson"))
	assert.ErrorIs(t, err, ErrLoad)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.geojson")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrLoad)
}

func TestLoadNegativeValue(t *testing.T) {
	path := writeFixture(t, map[string]map[string]any{
		"Lagos": {"2022_mean": -0.001},
	})

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrLoad)
	assert.ErrorContains(t, err, "Lagos")
}

func TestLoadMissingYearColumn(t *testing.T) {
	path := writeFixture(t, map[string]map[string]any{
		"Kano": {"2023_mean": nil},
	})

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrLoad)
	assert.ErrorContains(t, err, "2023_mean")
}

func TestLoadUnknownState(t *testing.T) {
	path := writeFixture(t, map[string]map[string]any{
		"Lagos": {"State": "Atlantis"},
	})

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrLoad)
	assert.ErrorContains(t, err, "Atlantis")
}

func TestLoadQuotedNumbers(t *testing.T) {
	// Some GIS exports quote numeric columns; the loader accepts them.
	path := writeFixture(t, map[string]map[string]any{
		"Oyo": {"2020_mean": "0.0312"},
	})

	ds, err := Load(path)
	require.NoError(t, err)

	value, ok := ds.Value("Oyo", 2020)
	require.True(t, ok)
	assert.InDelta(t, 0.0312, value, 1e-9)
}
