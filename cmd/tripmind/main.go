package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "tripmind",
	Short: "TripMind CLI - generate travel itineraries from the terminal",
	Long: `TripMind builds day-by-day travel itineraries. It asks the configured
chat model first and falls back to the built-in rule-based generator.
Configuration comes from TRIPMIND_* environment variables or a .env file.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the CLI version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}
