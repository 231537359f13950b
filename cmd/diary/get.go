package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a single entry by ID",
	Long: `Get a single entry by its ID.

Example:
  diary get 12 --human`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	id := mustParseEntryID(args[0])

	cfg := mustLoadConfig()
	db := mustOpenDatabase(cfg)
	defer db.Close()

	e, err := db.GetByID(id)
	if err != nil {
		exitWithError(ExitError, "getting entry: %v", err)
	}
	if e == nil {
		exitWithError(ExitDataError, "entry not found: %d", id)
	}

	if humanOutput {
		printEntryDetail(*e, cfg.TimestampFormat)
	} else {
		outputJSON(e)
	}
	return nil
}
