package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build metadata - injected at build time
var (
	BuildDate    = "unknown"
	BuildCommit  = "unknown"
	BuildVersion = "dev"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "co-dashboard %s (%s) built %s\n", BuildVersion, BuildCommit, BuildDate)
	},
}
