package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "geekcache",
	Short: "geekcache - A local cache for BoardGameGeek data",
	Long:  "geekcache keeps BoardGameGeek data in a local SQLite cache and refreshes it through the rate-limited XML API.",
}

func init() {
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newCollectionCmd())
	rootCmd.AddCommand(newPlaysCmd())
	rootCmd.AddCommand(newHotCmd())
	rootCmd.AddCommand(newSimilarCmd())
	rootCmd.AddCommand(newMCPCmd())
}
