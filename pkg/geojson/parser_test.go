package geojson

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFeatureCollection = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {
        "State": "Lagos",
        "2020_mean": 0.0412,
        "2021_mean": "0.0398"
      },
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[3.0, 6.4], [3.6, 6.4], [3.6, 6.7], [3.0, 6.7], [3.0, 6.4]]]
      }
    },
    {
      "type": "Feature",
      "properties": {
        "State": "Kano"
      },
      "geometry": {
        "type": "MultiPolygon",
        "coordinates": [[[[8.3, 11.7], [8.8, 11.7], [8.8, 12.2], [8.3, 12.2], [8.3, 11.7]]]]
      }
    }
  ]
}`

func TestParse(t *testing.T) {
	fc, err := Parse(strings.NewReader(testFeatureCollection))
	require.NoError(t, err)

	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 2)

	first := fc.Features[0]
	assert.Equal(t, "Feature", first.Type)
	require.NotNil(t, first.Geometry)
	assert.Equal(t, "Polygon", first.Geometry.Type)

	second := fc.Features[1]
	require.NotNil(t, second.Geometry)
	assert.Equal(t, "MultiPolygon", second.Geometry.Type)
}

func TestParseRejectsWrongTopLevelType(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"type": "Feature", "features": []}`))
	assert.Error(t, err)
}

func TestParseRejectsWrongFeatureType(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"type": "FeatureCollection", "features": [{"type": "Point"}]}`))
	assert.Error(t, err)
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"type": "FeatureCollection", "features": [`))
	assert.Error(t, err)
}

func TestStringProperty(t *testing.T) {
	fc, err := Parse(strings.NewReader(testFeatureCollection))
	require.NoError(t, err)

	name, ok := fc.Features[0].StringProperty("State")
	require.True(t, ok)
	assert.Equal(t, "Lagos", name)

	_, ok = fc.Features[0].StringProperty("missing")
	assert.False(t, ok)

	// Numeric property does not decode as a string.
	_, ok = fc.Features[0].StringProperty("2020_mean")
	assert.False(t, ok)
}

func TestFloatProperty(t *testing.T) {
	fc, err := Parse(strings.NewReader(testFeatureCollection))
	require.NoError(t, err)

	feature := fc.Features[0]

	value, ok := feature.FloatProperty("2020_mean")
	require.True(t, ok)
	assert.InDelta(t, 0.0412, value, 1e-9)

	// Quoted numeric columns are accepted.
	value, ok = feature.FloatProperty("2021_mean")
	require.True(t, ok)
	assert.InDelta(t, 0.0398, value, 1e-9)

	_, ok = feature.FloatProperty("missing")
	assert.False(t, ok)

	_, ok = feature.FloatProperty("State")
	assert.False(t, ok)
}
