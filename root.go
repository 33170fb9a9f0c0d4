package main

import (
	"github.com/spf13/cobra"

	codashlog "co-dashboard/internal/log"
)

// Global flag values.
var (
	configPath string
	debug      bool
	quiet      bool
	noColor    bool
)

// rootCmd is the base command for the dashboard.
var rootCmd = &cobra.Command{
	Use:   "co-dashboard",
	Short: "Nigeria carbon monoxide dashboard",
	Long: `co-dashboard serves an interactive web dashboard of carbon monoxide
concentration across Nigerian states (2020-2024): a choropleth map, top and
bottom rankings, a national trend chart and a donut of the yearly average.

The same data is available from the command line (rank) and as an XLSX/PNG
report (export).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		codashlog.Setup(debug, quiet)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "co-dashboard.yaml", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}
