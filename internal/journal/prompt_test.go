package journal

import (
	"io"
	"strings"
	"testing"
)

func TestAsk(t *testing.T) {
	var out strings.Builder
	p := NewPrompter(strings.NewReader("hello world\r\nlast"), &out)

	got, err := p.Ask("Say: ")
	if err != nil || got != "hello world" {
		t.Errorf("Ask() = %q, %v; want %q, nil", got, err, "hello world")
	}
	got, err = p.Ask("Again: ")
	if err != nil || got != "last" {
		t.Errorf("Ask() = %q, %v; want %q, nil", got, err, "last")
	}
	if _, err = p.Ask("Done? "); err != io.EOF {
		t.Errorf("Ask() at end error = %v, want io.EOF", err)
	}
	if !strings.HasPrefix(out.String(), "Say: Again: ") {
		t.Errorf("prompts written = %q", out.String())
	}
}

func TestReadAllStopsAtEndOfInput(t *testing.T) {
	p := NewPrompter(newTTYInput("line one\nline two", "after\n"), io.Discard)

	body, err := p.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if body != "line one\nline two" {
		t.Errorf("ReadAll() = %q", body)
	}

	next, err := p.Ask("")
	if err != nil || next != "after" {
		t.Errorf("Ask() after ReadAll = %q, %v; want %q, nil", next, err, "after")
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"default yes empty", "\n", true, true},
		{"default yes y", "y\n", true, true},
		{"default yes n", "n\n", true, false},
		{"default yes N", "N\n", true, false},
		{"default yes other", "nope\n", true, true},
		{"default yes eof", "", true, true},
		{"default no empty", "\n", false, false},
		{"default no y", "y\n", false, true},
		{"default no Y padded", " Y \n", false, true},
		{"default no yes", "yes\n", false, false},
		{"default no eof", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPrompter(strings.NewReader(tt.input), io.Discard)
			got, err := p.Confirm("? ", tt.defaultYes)
			if err != nil {
				t.Fatalf("Confirm() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm(%q, %v) = %v, want %v", tt.input, tt.defaultYes, got, tt.want)
			}
		})
	}
}
