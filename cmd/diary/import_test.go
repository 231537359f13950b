package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matsen/diary/internal/entry"
	"github.com/matsen/diary/internal/storage"
)

func openTestDB(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.OpenDB(filepath.Join(t.TempDir(), "diary.db"))
	if err != nil {
		t.Fatalf("OpenDB() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestImportEntriesSkipsEmptyContent(t *testing.T) {
	db := openTestDB(t)
	ts := time.Date(2023, 8, 14, 7, 0, 0, 0, time.UTC)
	entries := []entry.Entry{
		{Content: "first", Timestamp: ts},
		{Content: "", Timestamp: ts.Add(time.Hour)},
		{Content: "second", Timestamp: ts.Add(2 * time.Hour)},
	}

	imported, err := importEntries(db, entries)
	if err != nil {
		t.Fatalf("importEntries() error = %v", err)
	}
	if imported != 2 {
		t.Errorf("importEntries() = %d, want 2", imported)
	}

	stored, err := db.List("")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(stored) != 2 || stored[0].Content != "second" || stored[1].Content != "first" {
		t.Fatalf("List() = %+v, want second then first", stored)
	}
	if !stored[1].Timestamp.Equal(ts) {
		t.Errorf("imported timestamp = %v, want %v", stored[1].Timestamp, ts)
	}
}

var errInsert = errors.New("disk full")

// failingInserter accepts okCount inserts, then fails.
type failingInserter struct {
	okCount int
	calls   int
}

func (f *failingInserter) Insert(e entry.Entry) (*entry.Entry, error) {
	f.calls++
	if f.calls > f.okCount {
		return nil, errInsert
	}
	return &e, nil
}

func TestImportEntriesStopsOnError(t *testing.T) {
	ins := &failingInserter{okCount: 1}
	entries := []entry.Entry{{Content: "a"}, {Content: "b"}, {Content: "c"}}

	imported, err := importEntries(ins, entries)
	if !errors.Is(err, errInsert) {
		t.Fatalf("importEntries() error = %v, want %v", err, errInsert)
	}
	if imported != 1 {
		t.Errorf("importEntries() imported = %d, want 1", imported)
	}
	if ins.calls != 2 {
		t.Errorf("Insert called %d times, want 2 (stop at first failure)", ins.calls)
	}
	if !strings.Contains(err.Error(), "entry 2") {
		t.Errorf("error = %v, want position of failing entry", err)
	}
}

func TestImportEntriesClosedStore(t *testing.T) {
	db, err := storage.OpenDB(filepath.Join(t.TempDir(), "diary.db"))
	if err != nil {
		t.Fatalf("OpenDB() error = %v", err)
	}
	db.Close()

	if _, err := importEntries(db, []entry.Entry{{Content: "x"}}); err == nil {
		t.Error("importEntries() on closed store: expected error")
	}
}

func TestReadImportEntries(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.jsonl")
	if err := os.WriteFile(valid, []byte(`{"id":1,"content":"hi","timestamp":"2025-01-01T00:00:00Z"}`+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	malformed := filepath.Join(dir, "bad.jsonl")
	if err := os.WriteFile(malformed, []byte("not json\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		stdin   string
		want    int
		wantErr bool
	}{
		{"file", valid, "", 1, false},
		{"missing file", filepath.Join(dir, "missing.jsonl"), "", 0, true},
		{"malformed file", malformed, "", 0, true},
		{"stdin", "-", `{"content":"a"}` + "\n" + `{"content":"b"}` + "\n", 2, false},
		{"malformed stdin", "-", "{", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := readImportEntries(tt.path, strings.NewReader(tt.stdin))
			if (err != nil) != tt.wantErr {
				t.Fatalf("readImportEntries() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(entries) != tt.want {
				t.Errorf("readImportEntries() returned %d entries, want %d", len(entries), tt.want)
			}
		})
	}
}

func TestLimitEntries(t *testing.T) {
	entries := []entry.Entry{{ID: 3}, {ID: 2}, {ID: 1}}

	tests := []struct {
		name  string
		limit int
		want  []int64
	}{
		{"zero keeps all", 0, []int64{3, 2, 1}},
		{"negative keeps all", -1, []int64{3, 2, 1}},
		{"limit below length", 2, []int64{3, 2}},
		{"limit equals length", 3, []int64{3, 2, 1}},
		{"limit above length", 10, []int64{3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := limitEntries(entries, tt.limit)
			if len(got) != len(tt.want) {
				t.Fatalf("limitEntries(%d) returned %d entries, want %d", tt.limit, len(got), len(tt.want))
			}
			for i, e := range got {
				if e.ID != tt.want[i] {
					t.Errorf("limitEntries(%d)[%d].ID = %d, want %d", tt.limit, i, e.ID, tt.want[i])
				}
			}
		})
	}
}
