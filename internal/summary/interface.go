package summary

import "co-dashboard/internal/stats"

// DefaultRankingSize matches the dashboard's top-3 / bottom-3 tables.
const DefaultRankingSize = 3

// Manager defines the query surface the rendering layer consumes. All
// methods are synchronous reads over the immutable dataset.
type Manager interface {
	// Years returns the observed years, ascending.
	Years() []int

	// DefaultYear returns the most recent observed year, the initial
	// selection in the UI.
	DefaultYear() int

	// States returns the observed state names, ascending.
	States() []string

	// GetYearSlice returns all records for one year, for map coloring.
	GetYearSlice(year int) (stats.YearSlice, error)

	// GetRanking returns the top-n and bottom-n states for one year. An n
	// outside [1, state count] is clamped rather than rejected.
	GetRanking(year, n int) (stats.RankingResult, error)

	// GetYearlyAverages returns the national mean per year, ascending.
	GetYearlyAverages() ([]stats.YearlyAverage, error)

	// GetNationalAverage returns the donut figure for one year.
	GetNationalAverage(year int) (NationalAverage, error)

	// GetStateTrend returns one state's series across all years.
	GetStateTrend(state string) (StateTrend, error)

	// RawGeoJSON returns the source FeatureCollection for the map layer.
	RawGeoJSON() []byte
}

// NationalAverage carries the mean for one year plus the year's min and max,
// which the donut uses to place the value on the shared color ramp.
type NationalAverage struct {
	Year        int     `json:"year"`
	MeanCOValue float64 `json:"mean_co_value"`
	MinCOValue  float64 `json:"min_co_value"`
	MaxCOValue  float64 `json:"max_co_value"`
}

// TrendPoint is one year of a state's series.
type TrendPoint struct {
	Year    int     `json:"year"`
	COValue float64 `json:"co_value"`
}

// StateTrend is the line-chart series for one state.
type StateTrend struct {
	State  string       `json:"state"`
	Points []TrendPoint `json:"points"`
}
