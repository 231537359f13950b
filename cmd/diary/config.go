package main

import (
	"fmt"

	"github.com/matsen/diary/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set values in ~/.config/diary/config.yml.

Usage:
  diary config                                # Show all config
  diary config db-path                        # Get specific value
  diary config db-path ~/notes/diary.db       # Set value
  diary config timestamp-format "%Y-%m-%d %H:%M"
  diary config clear-screen false

Keys:
  db-path           Path to the SQLite database (default: diary.db)
  timestamp-format  strftime pattern for entry headers
                    (default: "%A %d %B, %Y %I:%M%p")
  clear-screen      Clear the terminal between screens (true/false)`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	// No args: show all config
	if len(args) == 0 {
		values := make(map[string]string, len(config.Keys))
		for _, key := range config.Keys {
			v, _ := cfg.Get(key)
			values[key] = v
		}
		if humanOutput {
			for _, key := range config.Keys {
				fmt.Printf("%-17s %s\n", key+":", values[key])
			}
		} else {
			outputJSON(values)
		}
		return nil
	}

	key := config.NormalizeKey(args[0])

	// One arg: get specific value
	if len(args) == 1 {
		value, err := cfg.Get(key)
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
		if humanOutput {
			fmt.Println(value)
		} else {
			outputJSON(map[string]string{key: value})
		}
		return nil
	}

	// Two args: set value
	value := args[1]
	if err := cfg.Set(key, value); err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	if err := cfg.Save(config.GlobalConfigPath()); err != nil {
		exitWithError(ExitError, "saving config: %v", err)
	}

	if humanOutput {
		fmt.Printf("Updated %s to %s\n", key, value)
	} else {
		outputJSON(UpdateResponse{
			Status: "updated",
			Key:    key,
			Value:  value,
		})
	}
	return nil
}
