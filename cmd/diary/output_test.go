package main

import (
	"strings"
	"testing"
	"time"

	"github.com/matsen/diary/internal/entry"
)

func TestParseEntryID(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := parseEntryID(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseEntryID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseEntryID(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestFormatListLine(t *testing.T) {
	e := entry.Entry{
		ID:        7,
		Content:   "Saw the northern lights\nIt was cold.",
		Timestamp: time.Date(2024, 11, 3, 22, 15, 0, 0, time.Local),
	}

	line := formatListLine(e)

	for _, want := range []string{"   7", "2024-11-03 22:15", "ago)", "Saw the northern lights"} {
		if !strings.Contains(line, want) {
			t.Errorf("formatListLine() = %q, missing %q", line, want)
		}
	}
	if strings.Contains(line, "It was cold.") {
		t.Errorf("formatListLine() = %q, should show only the first line", line)
	}
}

func TestEmptyIfNil(t *testing.T) {
	if got := emptyIfNil(nil); got == nil || len(got) != 0 {
		t.Errorf("emptyIfNil(nil) = %#v, want empty slice", got)
	}
	in := []entry.Entry{{ID: 1}}
	if got := emptyIfNil(in); len(got) != 1 {
		t.Errorf("emptyIfNil() = %#v, want input unchanged", got)
	}
}
