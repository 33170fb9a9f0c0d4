package summary

import (
	"fmt"
	"log/slog"

	"co-dashboard/internal/dataset"
	"co-dashboard/internal/stats"
)

// manager implements the summary Manager interface over a loaded dataset.
// The dataset never changes after load, so the manager carries no locks and
// no state beyond the reference.
type manager struct {
	ds *dataset.Dataset
}

// NewManager creates a summary manager over the given dataset.
func NewManager(ds *dataset.Dataset) Manager {
	return &manager{ds: ds}
}

func (m *manager) Years() []int {
	return m.ds.Years()
}

func (m *manager) DefaultYear() int {
	return m.ds.LatestYear()
}

func (m *manager) States() []string {
	return m.ds.States()
}

func (m *manager) GetYearSlice(year int) (stats.YearSlice, error) {
	return stats.FilterByYear(m.ds, year)
}

func (m *manager) GetRanking(year, n int) (stats.RankingResult, error) {
	slice, err := stats.FilterByYear(m.ds, year)
	if err != nil {
		return stats.RankingResult{}, err
	}

	// A ranking size outside the valid range is recoverable: clamp and
	// proceed instead of failing the view.
	clamped := n
	if clamped < 1 {
		clamped = DefaultRankingSize
	}
	if clamped > len(slice) {
		clamped = len(slice)
	}
	if clamped != n {
		slog.Debug("ranking size clamped", "requested", n, "used", clamped)
	}

	return stats.Rank(slice, clamped)
}

func (m *manager) GetYearlyAverages() ([]stats.YearlyAverage, error) {
	return stats.AggregateByYear(m.ds)
}

func (m *manager) GetNationalAverage(year int) (NationalAverage, error) {
	slice, err := stats.FilterByYear(m.ds, year)
	if err != nil {
		return NationalAverage{}, err
	}

	mean, err := stats.Mean(slice)
	if err != nil {
		return NationalAverage{}, err
	}

	result := NationalAverage{
		Year:        year,
		MeanCOValue: mean,
		MinCOValue:  slice[0].COValue,
		MaxCOValue:  slice[0].COValue,
	}
	for _, record := range slice[1:] {
		if record.COValue < result.MinCOValue {
			result.MinCOValue = record.COValue
		}
		if record.COValue > result.MaxCOValue {
			result.MaxCOValue = record.COValue
		}
	}

	return result, nil
}

func (m *manager) GetStateTrend(state string) (StateTrend, error) {
	records := m.ds.RecordsForState(state)
	if len(records) == 0 {
		return StateTrend{}, fmt.Errorf("%w: %q", dataset.ErrUnknownState, state)
	}

	trend := StateTrend{State: state, Points: make([]TrendPoint, 0, len(records))}
	for _, record := range records {
		trend.Points = append(trend.Points, TrendPoint{Year: record.Year, COValue: record.COValue})
	}
	return trend, nil
}

func (m *manager) RawGeoJSON() []byte {
	return m.ds.RawGeoJSON()
}
