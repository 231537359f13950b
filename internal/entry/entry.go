// Package entry defines the journal entry type.
package entry

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ncruces/go-strftime"
)

// DefaultTimestampFormat is the strftime pattern used for entry headers,
// e.g. "Tuesday 06 May, 2025 09:41AM".
const DefaultTimestampFormat = "%A %d %B, %Y %I:%M%p"

// Entry is one journal record. ID and Timestamp are assigned by the store.
type Entry struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// FormatTimestamp renders the entry's timestamp in local time using a
// strftime pattern. An empty pattern falls back to DefaultTimestampFormat.
func (e Entry) FormatTimestamp(pattern string) string {
	if pattern == "" {
		pattern = DefaultTimestampFormat
	}
	return strftime.Format(pattern, e.Timestamp.Local())
}

// Header returns the formatted timestamp followed by a rule of "=" of the
// same length.
func (e Entry) Header(pattern string) string {
	ts := e.FormatTimestamp(pattern)
	return ts + "\n" + Rule(ts)
}

// Rule returns a line of "=" as wide as s.
func Rule(s string) string {
	return strings.Repeat("=", utf8.RuneCountInString(s))
}

// Preview returns the first line of the content, truncated to maxLen runes.
func (e Entry) Preview(maxLen int) string {
	line, _, _ := strings.Cut(e.Content, "\n")
	line = strings.TrimSpace(line)
	runes := []rune(line)
	if len(runes) <= maxLen {
		return line
	}
	if maxLen <= 3 {
		return strings.Repeat(".", max(maxLen, 0))
	}
	return string(runes[:maxLen-3]) + "..."
}
