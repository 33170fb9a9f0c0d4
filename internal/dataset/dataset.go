package dataset

import (
	"fmt"
	"math"
	"sort"
)

// Dataset is the in-memory CO table. It is built once and never mutated;
// accessors return copies so callers cannot reach the shared backing slices.
type Dataset struct {
	records []Record
	byYear  map[int][]Record
	byState map[string][]Record
	years   []int
	states  []string
	raw     []byte
}

// New builds a Dataset from records and validates the data-quality
// invariants: every year inside the observation range, no negative or
// non-finite values, no duplicate (state, year) pairs, and one record per
// observed state for every observed year.
func New(records []Record) (*Dataset, error) {
	ds := &Dataset{
		records: make([]Record, len(records)),
		byYear:  make(map[int][]Record),
		byState: make(map[string][]Record),
	}
	copy(ds.records, records)

	seen := make(map[string]map[int]bool)
	yearSet := make(map[int]bool)

	for _, record := range ds.records {
		if record.Year < FirstYear || record.Year > LastYear {
			return nil, fmt.Errorf("%w: %s year %d outside [%d, %d]",
				ErrYearOutOfRange, record.State, record.Year, FirstYear, LastYear)
		}
		if record.COValue < 0 || math.IsNaN(record.COValue) || math.IsInf(record.COValue, 0) {
			return nil, fmt.Errorf("%w: %s %d has value %v",
				ErrNegativeValue, record.State, record.Year, record.COValue)
		}
		if seen[record.State] == nil {
			seen[record.State] = make(map[int]bool)
		}
		if seen[record.State][record.Year] {
			return nil, fmt.Errorf("%w: %s %d", ErrDuplicateRecord, record.State, record.Year)
		}
		seen[record.State][record.Year] = true
		yearSet[record.Year] = true

		ds.byYear[record.Year] = append(ds.byYear[record.Year], record)
		ds.byState[record.State] = append(ds.byState[record.State], record)
	}

	// Every observed state must cover every observed year. Gaps are a
	// data-quality error, never silently dropped.
	for state, years := range seen {
		for year := range yearSet {
			if !years[year] {
				return nil, fmt.Errorf("%w: %s has no value for %d", ErrIncomplete, state, year)
			}
		}
	}

	for year := range yearSet {
		ds.years = append(ds.years, year)
	}
	sort.Ints(ds.years)

	for state := range seen {
		ds.states = append(ds.states, state)
	}
	sort.Strings(ds.states)

	return ds, nil
}

// Records returns all records.
func (ds *Dataset) Records() []Record {
	result := make([]Record, len(ds.records))
	copy(result, ds.records)
	return result
}

// Count returns the number of records.
func (ds *Dataset) Count() int {
	return len(ds.records)
}

// Years returns the observed years, ascending.
func (ds *Dataset) Years() []int {
	result := make([]int, len(ds.years))
	copy(result, ds.years)
	return result
}

// LatestYear returns the most recent observed year.
func (ds *Dataset) LatestYear() int {
	if len(ds.years) == 0 {
		return 0
	}
	return ds.years[len(ds.years)-1]
}

// States returns the observed state names, ascending.
func (ds *Dataset) States() []string {
	result := make([]string, len(ds.states))
	copy(result, ds.states)
	return result
}

// HasYear reports whether year is inside the observed range.
func (ds *Dataset) HasYear(year int) bool {
	if len(ds.years) == 0 {
		return false
	}
	return year >= ds.years[0] && year <= ds.years[len(ds.years)-1]
}

// RecordsForYear returns all records for one year.
func (ds *Dataset) RecordsForYear(year int) []Record {
	records := ds.byYear[year]
	result := make([]Record, len(records))
	copy(result, records)
	return result
}

// RecordsForState returns all records for one state, ascending by year.
func (ds *Dataset) RecordsForState(state string) []Record {
	records, exists := ds.byState[state]
	if !exists {
		return []Record{}
	}
	result := make([]Record, len(records))
	copy(result, records)
	sort.Slice(result, func(i, j int) bool { return result[i].Year < result[j].Year })
	return result
}

// Value returns the CO value for a state and year.
func (ds *Dataset) Value(state string, year int) (float64, bool) {
	for _, record := range ds.byState[state] {
		if record.Year == year {
			return record.COValue, true
		}
	}
	return 0, false
}

// RawGeoJSON returns the source FeatureCollection bytes for the map layer.
// Empty for datasets built directly from records.
func (ds *Dataset) RawGeoJSON() []byte {
	return ds.raw
}
