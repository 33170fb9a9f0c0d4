package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"co-dashboard/internal/dataset"
	"co-dashboard/internal/stats"
	"co-dashboard/internal/summary"
)

var (
	rankYear int
	rankN    int
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Print the highest and lowest CO states for a year",
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

		year := rankYear
		if year == 0 {
			year = mgr.DefaultYear()
		}

		n := rankN
		if n == 0 {
			n = cfg.RankingSize
		}

		ranking, err := mgr.GetRanking(year, n)
		if err != nil {
			return err
		}

		printRanking(cmd, ranking)
		return nil
	},
}

func init() {
	rankCmd.Flags().IntVar(&rankYear, "year", 0, "year to rank (default: latest)")
	rankCmd.Flags().IntVarP(&rankN, "n", "n", 0, "list length (default: from config)")
	rankCmd.Flags().StringVar(&serveDataFile, "data-file", "", "GeoJSON source file (overrides config)")
}

func printRanking(cmd *cobra.Command, ranking stats.RankingResult) {
	if noColor {
		color.NoColor = true
	}

	high := color.New(color.FgRed, color.Bold).SprintFunc()
	low := color.New(color.FgGreen, color.Bold).SprintFunc()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "CO ranking for %d\n\n", ranking.Year)

	fmt.Fprintf(out, "Top %d (highest CO, mol/m²)\n", len(ranking.TopN))
	for i, entry := range ranking.TopN {
		fmt.Fprintf(out, "  %d. %-26s %s\n", i+1, entry.State, high(fmt.Sprintf("%.4f", entry.COValue)))
	}

	fmt.Fprintf(out, "\nBottom %d (lowest CO, mol/m²)\n", len(ranking.BottomN))
	for i, entry := range ranking.BottomN {
		fmt.Fprintf(out, "  %d. %-26s %s\n", i+1, entry.State, low(fmt.Sprintf("%.4f", entry.COValue)))
	}
}
