package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/matsen/diary/internal/entry"
)

// Constants for output formatting.
const (
	ListPreviewMaxLen = 60               // First-line preview in list output
	ListTimestampFmt  = "%Y-%m-%d %H:%M" // Compact timestamp in list output
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError writes an error message to stderr and returns the exit code.
func outputError(code int, format string, args ...interface{}) int {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	return code
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	ID     int64  `json:"id,omitempty"`
	Path   string `json:"path,omitempty"`
	Count  int    `json:"count,omitempty"`
}

// UpdateResponse is the response for config set commands.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// parseEntryID parses an entry ID argument.
func parseEntryID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid entry id: %q", s)
	}
	return id, nil
}

// mustParseEntryID parses an entry ID argument, exits on error.
func mustParseEntryID(s string) int64 {
	id, err := parseEntryID(s)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	return id
}

// formatListLine formats an entry as a single line: id, timestamp, age, preview.
func formatListLine(e entry.Entry) string {
	return fmt.Sprintf("%4d  %s  %-14s  %s",
		e.ID,
		e.FormatTimestamp(ListTimestampFmt),
		"("+humanize.Time(e.Timestamp)+")",
		e.Preview(ListPreviewMaxLen))
}

// printEntryDetail prints an entry with its header, as in the interactive view.
func printEntryDetail(e entry.Entry, timestampFormat string) {
	fmt.Println(e.Header(timestampFormat))
	fmt.Println(e.Content)
}

// emptyIfNil keeps JSON output an array when there are no entries.
func emptyIfNil(entries []entry.Entry) []entry.Entry {
	if entries == nil {
		return []entry.Entry{}
	}
	return entries
}
