package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"co-dashboard/internal/chart"
	"co-dashboard/internal/dataset"
	"co-dashboard/internal/export"
	"co-dashboard/internal/summary"
)

var (
	exportOut       string
	exportChartsDir string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the XLSX report and optional PNG charts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ds, err := dataset.Load(cfg.DataFile)
		if err != nil {
			return err
		}
		mgr := summary.NewManager(ds)

		if err := export.Save(exportOut, mgr); err != nil {
			return err
		}
		slog.Info("report written", "path", exportOut)

		if exportChartsDir != "" {
			if err := writeCharts(exportChartsDir, mgr); err != nil {
				return err
			}
			slog.Info("charts written", "dir", exportChartsDir)
		}

		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "nigeria_co_report.xlsx", "output XLSX path")
	exportCmd.Flags().StringVar(&exportChartsDir, "charts-dir", "", "also write PNG charts into this directory")
	exportCmd.Flags().StringVar(&serveDataFile, "data-file", "", "GeoJSON source file (overrides config)")
}

func writeCharts(dir string, mgr summary.Manager) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	averages, err := mgr.GetYearlyAverages()
	if err != nil {
		return err
	}
	if err := writeChartFile(filepath.Join(dir, "national_trend.png"), func(f *os.File) error {
		return chart.WriteNationalTrend(f, averages)
	}); err != nil {
		return err
	}

	for _, year := range mgr.Years() {
		slice, err := mgr.GetYearSlice(year)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, fmt.Sprintf("ranking_%d.png", year))
		if err := writeChartFile(path, func(f *os.File) error {
			return chart.WriteYearBars(f, year, slice)
		}); err != nil {
			return err
		}
	}

	return nil
}

func writeChartFile(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := render(f); err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return nil
}
