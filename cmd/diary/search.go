package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var searchLimit int

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "Maximum number of entries (0 for all)")
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search entries for a string",
	Long: `Search entries whose text contains the query, newest first.

Matching is case-insensitive for ASCII letters. Multiple arguments are
joined with spaces.

Example:
  diary search dentist`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	return listEntries(strings.Join(args, " "), searchLimit)
}
