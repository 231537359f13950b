package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matsen/diary/internal/journal"
	"github.com/spf13/cobra"
)

var addYes bool

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().BoolVarP(&addYes, "yes", "y", false, "Save without asking for confirmation")
}

var addCmd = &cobra.Command{
	Use:   "add [text...]",
	Short: "Add an entry",
	Long: `Add a journal entry.

The entry text is taken from the arguments, or read from stdin until
end of input (Ctrl+D) when no arguments are given. Leading and trailing
whitespace is trimmed; empty entries are rejected.

Examples:
  diary add "Finished the first draft"
  echo "Long day." | diary add --yes`,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	var content string
	if len(args) > 0 {
		content = strings.Join(args, " ")
	} else {
		fmt.Fprintln(os.Stderr, `Enter your entry. Press "Ctrl+D" when finished.`)
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			exitWithError(ExitError, "reading entry: %v", err)
		}
		content = string(data)
	}

	content = strings.TrimSpace(content)
	if content == "" {
		exitWithError(ExitDataError, "entry is empty")
	}

	if !addYes {
		ok, err := journal.NewPrompter(os.Stdin, os.Stderr).Confirm("Save entry? [Yn] ", true)
		if err != nil {
			exitWithError(ExitError, "reading confirmation: %v", err)
		}
		if !ok {
			if humanOutput {
				fmt.Println("Not saved.")
			} else {
				outputJSON(StatusResponse{Status: "cancelled"})
			}
			return nil
		}
	}

	cfg := mustLoadConfig()
	db := mustOpenDatabase(cfg)
	defer db.Close()

	e, err := db.Create(content)
	if err != nil {
		exitWithError(ExitError, "saving entry: %v", err)
	}

	if humanOutput {
		fmt.Printf("Saved entry %d\n", e.ID)
	} else {
		outputJSON(e)
	}
	return nil
}
