// Package export builds the downloadable XLSX report from the dashboard's
// query surface.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"co-dashboard/internal/summary"
)

const (
	rankingsSheet = "Rankings"
	trendSheet    = "National Trend"
	matrixSheet   = "State Matrix"
)

// BuildWorkbook assembles the report: per-year top/bottom rankings, the
// national trend, and the full state-by-year matrix.
func BuildWorkbook(mgr summary.Manager) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", rankingsSheet)

	if err := writeRankings(f, mgr); err != nil {
		return nil, err
	}
	if err := writeTrend(f, mgr); err != nil {
		return nil, err
	}
	if err := writeMatrix(f, mgr); err != nil {
		return nil, err
	}

	return f, nil
}

// Write builds the workbook and streams it to w.
func Write(w io.Writer, mgr summary.Manager) error {
	f, err := BuildWorkbook(mgr)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// Save builds the workbook and writes it to path.
func Save(path string, mgr summary.Manager) error {
	f, err := BuildWorkbook(mgr)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func writeRankings(f *excelize.File, mgr summary.Manager) error {
	headers := []string{"Year", "Rank", "Highest State", "Highest CO (mol/m²)", "Lowest State", "Lowest CO (mol/m²)"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(rankingsSheet, cell, header); err != nil {
			return err
		}
		if err := f.SetColWidth(rankingsSheet, cell[:1], cell[:1], 20); err != nil {
			return err
		}
	}

	row := 2
	for _, year := range mgr.Years() {
		ranking, err := mgr.GetRanking(year, summary.DefaultRankingSize)
		if err != nil {
			return fmt.Errorf("ranking %d: %w", year, err)
		}

		for i := range ranking.TopN {
			f.SetCellValue(rankingsSheet, fmt.Sprintf("A%d", row), year)
			f.SetCellValue(rankingsSheet, fmt.Sprintf("B%d", row), i+1)
			f.SetCellValue(rankingsSheet, fmt.Sprintf("C%d", row), ranking.TopN[i].State)
			f.SetCellValue(rankingsSheet, fmt.Sprintf("D%d", row), ranking.TopN[i].COValue)
			f.SetCellValue(rankingsSheet, fmt.Sprintf("E%d", row), ranking.BottomN[i].State)
			f.SetCellValue(rankingsSheet, fmt.Sprintf("F%d", row), ranking.BottomN[i].COValue)
			row++
		}
	}

	return nil
}

func writeTrend(f *excelize.File, mgr summary.Manager) error {
	if _, err := f.NewSheet(trendSheet); err != nil {
		return err
	}

	f.SetCellValue(trendSheet, "A1", "Year")
	f.SetCellValue(trendSheet, "B1", "National Mean CO (mol/m²)")
	f.SetColWidth(trendSheet, "B", "B", 26)

	averages, err := mgr.GetYearlyAverages()
	if err != nil {
		return err
	}

	for i, average := range averages {
		row := i + 2
		f.SetCellValue(trendSheet, fmt.Sprintf("A%d", row), average.Year)
		f.SetCellValue(trendSheet, fmt.Sprintf("B%d", row), average.MeanCOValue)
	}

	return nil
}

func writeMatrix(f *excelize.File, mgr summary.Manager) error {
	if _, err := f.NewSheet(matrixSheet); err != nil {
		return err
	}

	years := mgr.Years()
	f.SetCellValue(matrixSheet, "A1", "State")
	f.SetColWidth(matrixSheet, "A", "A", 26)
	for i, year := range years {
		cell, err := excelize.CoordinatesToCellName(i+2, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(matrixSheet, cell, year)
	}

	for i, state := range mgr.States() {
		row := i + 2
		f.SetCellValue(matrixSheet, fmt.Sprintf("A%d", row), state)

		trend, err := mgr.GetStateTrend(state)
		if err != nil {
			return fmt.Errorf("trend for %s: %w", state, err)
		}
		for j, point := range trend.Points {
			cell, err := excelize.CoordinatesToCellName(j+2, row)
			if err != nil {
				return err
			}
			f.SetCellValue(matrixSheet, cell, point.COValue)
		}
	}

	return nil
}
