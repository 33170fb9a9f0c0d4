package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"co-dashboard/internal/dataset"
	"co-dashboard/internal/stats"
)

func testManager(t *testing.T) Manager {
	t.Helper()
	ds, err := dataset.New([]dataset.Record{
		{State: "Lagos", Year: 2020, COValue: 0.036},
		{State: "Lagos", Year: 2021, COValue: 0.035},
		{State: "Kano", Year: 2020, COValue: 0.029},
		{State: "Kano", Year: 2021, COValue: 0.028},
		{State: "Rivers", Year: 2020, COValue: 0.030},
		{State: "Rivers", Year: 2021, COValue: 0.031},
		{State: "Oyo", Year: 2020, COValue: 0.027},
		{State: "Oyo", Year: 2021, COValue: 0.026},
	})
	require.NoError(t, err)
	return NewManager(ds)
}

func TestManagerYears(t *testing.T) {
	mgr := testManager(t)

	assert.Equal(t, []int{2020, 2021}, mgr.Years())
	assert.Equal(t, 2021, mgr.DefaultYear())
	assert.Equal(t, []string{"Kano", "Lagos", "Oyo", "Rivers"}, mgr.States())
}

func TestManagerGetYearSlice(t *testing.T) {
	mgr := testManager(t)

	slice, err := mgr.GetYearSlice(2020)
	require.NoError(t, err)
	assert.Len(t, slice, 4)

	_, err = mgr.GetYearSlice(1999)
	assert.ErrorIs(t, err, stats.ErrInvalidYear)
}

func TestManagerGetRanking(t *testing.T) {
	mgr := testManager(t)

	ranking, err := mgr.GetRanking(2021, 3)
	require.NoError(t, err)

	require.Len(t, ranking.TopN, 3)
	assert.Equal(t, "Lagos", ranking.TopN[0].State)
	assert.Equal(t, "Oyo", ranking.BottomN[0].State)
}

func TestManagerGetRankingClampsN(t *testing.T) {
	mgr := testManager(t)

	// More than available: clamp to the state count.
	ranking, err := mgr.GetRanking(2021, 10)
	require.NoError(t, err)
	assert.Len(t, ranking.TopN, 4)
	assert.Len(t, ranking.BottomN, 4)

	// Below one: fall back to the default size.
	ranking, err = mgr.GetRanking(2021, 0)
	require.NoError(t, err)
	assert.Len(t, ranking.TopN, DefaultRankingSize)
}

func TestManagerGetRankingInvalidYear(t *testing.T) {
	mgr := testManager(t)

	_, err := mgr.GetRanking(2019, 3)
	assert.ErrorIs(t, err, stats.ErrInvalidYear)
}

func TestManagerGetYearlyAverages(t *testing.T) {
	mgr := testManager(t)

	averages, err := mgr.GetYearlyAverages()
	require.NoError(t, err)

	require.Len(t, averages, 2)
	assert.Equal(t, 2020, averages[0].Year)
	assert.InDelta(t, (0.036+0.029+0.030+0.027)/4, averages[0].MeanCOValue, 1e-12)
}

func TestManagerGetNationalAverage(t *testing.T) {
	mgr := testManager(t)

	average, err := mgr.GetNationalAverage(2021)
	require.NoError(t, err)

	assert.Equal(t, 2021, average.Year)
	assert.InDelta(t, (0.035+0.028+0.031+0.026)/4, average.MeanCOValue, 1e-12)
	assert.InDelta(t, 0.026, average.MinCOValue, 1e-12)
	assert.InDelta(t, 0.035, average.MaxCOValue, 1e-12)
}

func TestManagerGetStateTrend(t *testing.T) {
	mgr := testManager(t)

	trend, err := mgr.GetStateTrend("Rivers")
	require.NoError(t, err)

	assert.Equal(t, "Rivers", trend.State)
	require.Len(t, trend.Points, 2)
	assert.Equal(t, TrendPoint{Year: 2020, COValue: 0.030}, trend.Points[0])
	assert.Equal(t, TrendPoint{Year: 2021, COValue: 0.031}, trend.Points[1])
}

func TestManagerGetStateTrendUnknown(t *testing.T) {
	mgr := testManager(t)

	_, err := mgr.GetStateTrend("Atlantis")
	assert.ErrorIs(t, err, dataset.ErrUnknownState)
}
