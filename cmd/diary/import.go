package main

import (
	"fmt"
	"io"
	"os"

	"github.com/matsen/diary/internal/entry"
	"github.com/matsen/diary/internal/storage"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import entries from JSONL",
	Long: `Import entries from a JSONL file produced by 'diary export'.

Each entry keeps its original timestamp and gets a new ID. Entries are
appended; nothing already stored is changed. Entries with empty content
are skipped. Use "-" to read stdin.

Example:
  diary import backup.jsonl --db restored.db`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

// entryInserter is the part of the store import needs.
type entryInserter interface {
	Insert(e entry.Entry) (*entry.Entry, error)
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	entries, err := readImportEntries(path, os.Stdin)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	cfg := mustLoadConfig()
	db := mustOpenDatabase(cfg)
	defer db.Close()

	imported, err := importEntries(db, entries)
	if err != nil {
		db.Close()
		exitWithError(ExitError, "%v (imported %d before failing)", err, imported)
	}

	if humanOutput {
		fmt.Printf("Imported %d entries\n", imported)
	} else {
		outputJSON(StatusResponse{Status: "imported", Path: path, Count: imported})
	}
	return nil
}

// readImportEntries reads JSONL entries from path, or from stdin when path is "-".
// A missing file is an error here, unlike storage.ReadAll.
func readImportEntries(path string, stdin io.Reader) ([]entry.Entry, error) {
	if path == "-" {
		entries, err := storage.Decode(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return entries, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	entries, err := storage.ReadAll(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return entries, nil
}

// importEntries inserts entries in order, skipping blank content.
// It stops at the first store error and returns how many were inserted.
func importEntries(db entryInserter, entries []entry.Entry) (int, error) {
	imported := 0
	for i, e := range entries {
		if e.Content == "" {
			continue
		}
		if _, err := db.Insert(e); err != nil {
			return imported, fmt.Errorf("importing entry %d: %w", i+1, err)
		}
		imported++
	}
	return imported, nil
}
