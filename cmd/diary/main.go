// Package main provides the diary CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/matsen/diary/internal/config"
	"github.com/matsen/diary/internal/journal"
	"github.com/matsen/diary/internal/storage"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// humanOutput controls whether to use human-readable output
	humanOutput bool
	// dbFlag overrides the configured database path
	dbFlag string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "diary",
	Short: "A personal journal in your terminal",
	Long: `diary keeps a journal of free-text entries in a local SQLite database.

Run without a subcommand to open the interactive menu:
  a) add an entry
  v) view entries, newest first
  s) search entries for a string
  q) quit

Subcommands give scriptable access to the same store and output JSON by
default. Use --human for human-readable output.

The database path comes from --db, then $DIARY_DB, then db_path in
~/.config/diary/config.yml, then diary.db in the current directory.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadEnv()
	},
	RunE: runMenu,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "Path to the diary database")
	rootCmd.Version = Version
}

func runMenu(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	db := mustOpenDatabase(cfg)
	defer db.Close()

	session := journal.NewSession(db, os.Stdin, os.Stdout, journal.Options{
		TimestampFormat: cfg.TimestampFormat,
		ClearScreen:     cfg.ShouldClearScreen() && journal.IsTerminal(os.Stdout),
	})
	if err := session.MenuLoop(); err != nil {
		db.Close()
		os.Exit(outputError(ExitError, "%v", err))
	}
	return nil
}

// mustLoadConfig loads the global configuration, exits on error.
func mustLoadConfig() *config.Config {
	cfg, err := config.LoadGlobal()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// mustOpenDatabase opens (and if needed creates) the SQLite database, exits on error.
// The caller is responsible for calling Close() on the returned DB.
func mustOpenDatabase(cfg *config.Config) *storage.DB {
	dbPath := config.ResolveDBPath(dbFlag, cfg)
	db, err := storage.OpenDB(dbPath)
	if err != nil {
		exitWithError(ExitError, "opening database %s: %v", dbPath, err)
	}
	return db
}
