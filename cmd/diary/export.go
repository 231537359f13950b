package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/matsen/diary/internal/storage"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export entries as JSONL",
	Long: `Export all entries as JSONL, one entry per line, oldest first.

Writes to stdout when no file (or "-") is given.

Examples:
  diary export > backup.jsonl
  diary export backup.jsonl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	db := mustOpenDatabase(cfg)
	defer db.Close()

	entries, err := db.List("")
	if err != nil {
		exitWithError(ExitError, "listing entries: %v", err)
	}
	slices.Reverse(entries)

	if len(args) == 0 || args[0] == "-" {
		if err := storage.Encode(os.Stdout, entries); err != nil {
			exitWithError(ExitError, "writing entries: %v", err)
		}
		return nil
	}

	path := args[0]
	if err := storage.WriteAll(path, entries); err != nil {
		exitWithError(ExitError, "writing %s: %v", path, err)
	}

	if humanOutput {
		fmt.Printf("Exported %d entries to %s\n", len(entries), path)
	} else {
		outputJSON(StatusResponse{Status: "exported", Path: path, Count: len(entries)})
	}
	return nil
}
