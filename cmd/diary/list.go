package main

import (
	"fmt"

	"github.com/matsen/diary/internal/entry"
	"github.com/spf13/cobra"
)

var (
	listSearch string
	listLimit  int
)

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Only entries containing this text")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "Maximum number of entries (0 for all)")
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries, newest first",
	Long: `List journal entries in reverse chronological order.

Examples:
  diary list
  diary list --limit 5 --human
  diary list --search holiday`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	return listEntries(listSearch, listLimit)
}

// listEntries prints entries matching query, newest first.
func listEntries(query string, limit int) error {
	cfg := mustLoadConfig()
	db := mustOpenDatabase(cfg)
	defer db.Close()

	entries, err := db.List(query)
	if err != nil {
		exitWithError(ExitError, "listing entries: %v", err)
	}
	entries = limitEntries(entries, limit)

	if humanOutput {
		if len(entries) == 0 {
			fmt.Println("No entries found.")
			return nil
		}
		for _, e := range entries {
			fmt.Println(formatListLine(e))
		}
		return nil
	}

	outputJSON(emptyIfNil(entries))
	return nil
}

// limitEntries keeps the first limit entries; zero or negative keeps all.
func limitEntries(entries []entry.Entry, limit int) []entry.Entry {
	if limit > 0 && len(entries) > limit {
		return entries[:limit]
	}
	return entries
}
