package main

import (
	"fmt"
	"os"

	"github.com/matsen/diary/internal/journal"
	"github.com/spf13/cobra"
)

var deleteForce bool

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Delete without asking for confirmation")
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an entry permanently",
	Long: `Delete an entry by its ID. The entry is shown and a confirmation is
asked first unless --force is given. Deletion cannot be undone.

Examples:
  diary delete 12
  diary delete 12 --force`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if !deleteForce {
		fmt.Fprintln(os.Stderr, e.Header(cfg.TimestampFormat))
		fmt.Fprintln(os.Stderr, e.Preview(ListPreviewMaxLen))
		ok, err := journal.NewPrompter(os.Stdin, os.Stderr).Confirm("Are you sure? [yN] ", false)
		if err != nil {
			exitWithError(ExitError, "reading confirmation: %v", err)
		}
		if !ok {
			if humanOutput {
				fmt.Println("Entry kept.")
			} else {
				outputJSON(StatusResponse{Status: "cancelled", ID: id})
			}
			return nil
		}
	}

	if err := db.Delete(id); err != nil {
		exitWithError(ExitError, "deleting entry: %v", err)
	}

	if humanOutput {
		fmt.Println("Entry deleted.")
	} else {
		outputJSON(StatusResponse{Status: "deleted", ID: id})
	}
	return nil
}
