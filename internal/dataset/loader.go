package dataset

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"co-dashboard/pkg/geojson"
)

// statePropertyKey and the per-year "<year>_mean" columns are the property
// names used by the Earth Engine export that produced the source file.
const statePropertyKey = "State"

func yearColumn(year int) string {
	return fmt.Sprintf("%d_mean", year)
}

// Load reads the GeoJSON source file and builds the process-wide Dataset.
// Called once at startup; any failure is wrapped in ErrLoad and aborts the
// server.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	ds, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	slog.Info("dataset loaded",
		"path", path,
		"states", len(ds.States()),
		"years", len(ds.Years()),
		"records", ds.Count())

	return ds, nil
}

func parse(data []byte) (*Dataset, error) {
	fc, err := geojson.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var records []Record
	for i, feature := range fc.Features {
		state, ok := feature.StringProperty(statePropertyKey)
		if !ok {
			return nil, fmt.Errorf("feature %d: missing %q property", i, statePropertyKey)
		}
		if !IsKnownState(state) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownState, state)
		}

		for year := FirstYear; year <= LastYear; year++ {
			value, ok := feature.FloatProperty(yearColumn(year))
			if !ok {
				return nil, fmt.Errorf("%w: %s has no %s column", ErrIncomplete, state, yearColumn(year))
			}
			records = append(records, Record{State: state, Year: year, COValue: value})
		}
	}

	ds, err := New(records)
	if err != nil {
		return nil, err
	}

	if got, want := len(ds.States()), len(stateNames); got != want {
		return nil, fmt.Errorf("%w: %d of %d states present", ErrIncomplete, got, want)
	}

	ds.raw = data
	return ds, nil
}
