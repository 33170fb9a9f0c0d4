// Package stats holds the pure computations behind the dashboard: year
// filtering, top/bottom ranking and national averaging. Every function is
// side-effect free over the immutable dataset.
package stats

import (
	"errors"
	"fmt"
	"sort"

	"co-dashboard/internal/dataset"
)

var (
	// ErrInvalidYear marks a selection outside the dataset's observed range.
	ErrInvalidYear = errors.New("year outside observed range")

	// ErrIncompleteYear marks a year for which some states have no record.
	ErrIncompleteYear = errors.New("incomplete year")

	// ErrInsufficientData marks a ranking request with n < 1 or n larger
	// than the slice.
	ErrInsufficientData = errors.New("insufficient data for ranking")

	// ErrEmptyDataset marks an aggregation over zero records.
	ErrEmptyDataset = errors.New("empty dataset")
)

// YearSlice is the subset of records for one selected year.
type YearSlice []dataset.Record

// StateValue is one (state, CO value) pair in a ranking.
type StateValue struct {
	State   string  `json:"state"`
	COValue float64 `json:"co_value"`
}

// RankingResult holds the highest and lowest states for one year. TopN is
// ordered descending by value, BottomN ascending. The two lists overlap when
// the slice has 2n states or fewer; that is expected, not an error.
type RankingResult struct {
	Year    int          `json:"year"`
	TopN    []StateValue `json:"top_n"`
	BottomN []StateValue `json:"bottom_n"`
}

// YearlyAverage is the national mean for one year.
type YearlyAverage struct {
	Year        int     `json:"year"`
	MeanCOValue float64 `json:"mean_co_value"`
}

// FilterByYear restricts the dataset to one year. Pure: the same inputs
// always yield the same slice.
func FilterByYear(ds *dataset.Dataset, year int) (YearSlice, error) {
	if !ds.HasYear(year) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}

	records := ds.RecordsForYear(year)
	if len(records) != len(ds.States()) {
		return nil, fmt.Errorf("%w: %d has %d of %d states",
			ErrIncompleteYear, year, len(records), len(ds.States()))
	}

	return YearSlice(records), nil
}

// Rank computes the top-n and bottom-n states by CO value. Ties break by
// state name ascending in both lists, so the output is deterministic.
func Rank(slice YearSlice, n int) (RankingResult, error) {
	if n < 1 || n > len(slice) {
		return RankingResult{}, fmt.Errorf("%w: n=%d with %d records", ErrInsufficientData, n, len(slice))
	}

	descending := make([]dataset.Record, len(slice))
	copy(descending, slice)
	sort.Slice(descending, func(i, j int) bool {
		if descending[i].COValue != descending[j].COValue {
			return descending[i].COValue > descending[j].COValue
		}
		return descending[i].State < descending[j].State
	})

	ascending := make([]dataset.Record, len(slice))
	copy(ascending, slice)
	sort.Slice(ascending, func(i, j int) bool {
		if ascending[i].COValue != ascending[j].COValue {
			return ascending[i].COValue < ascending[j].COValue
		}
		return ascending[i].State < ascending[j].State
	})

	result := RankingResult{
		TopN:    make([]StateValue, 0, n),
		BottomN: make([]StateValue, 0, n),
	}
	if len(slice) > 0 {
		result.Year = slice[0].Year
	}
	for i := 0; i < n; i++ {
		result.TopN = append(result.TopN, StateValue{State: descending[i].State, COValue: descending[i].COValue})
		result.BottomN = append(result.BottomN, StateValue{State: ascending[i].State, COValue: ascending[i].COValue})
	}

	return result, nil
}

// AggregateByYear computes the national mean for every observed year,
// ascending. Double-precision arithmetic, no rounding; formatting belongs to
// the presentation layer.
func AggregateByYear(ds *dataset.Dataset) ([]YearlyAverage, error) {
	years := ds.Years()
	if len(years) == 0 {
		return nil, ErrEmptyDataset
	}

	averages := make([]YearlyAverage, 0, len(years))
	for _, year := range years {
		records := ds.RecordsForYear(year)
		if len(records) == 0 {
			return nil, fmt.Errorf("%w: no records for %d", ErrEmptyDataset, year)
		}

		sum := 0.0
		for _, record := range records {
			sum += record.COValue
		}
		averages = append(averages, YearlyAverage{
			Year:        year,
			MeanCOValue: sum / float64(len(records)),
		})
	}

	return averages, nil
}

// Mean returns the arithmetic mean of a year slice.
func Mean(slice YearSlice) (float64, error) {
	if len(slice) == 0 {
		return 0, ErrEmptyDataset
	}

	sum := 0.0
	for _, record := range slice {
		sum += record.COValue
	}
	return sum / float64(len(slice)), nil
}
