package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Default values may be set at compile time.
	version   = "0.1.0"
	buildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information for bigcalc",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf(`bigcalc
  Version:	%v
  Build date:	%v
`, version, buildDate)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
