package journal

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/matsen/diary/internal/entry"
)

// AddEntry reads a multi-line entry until end of input and saves it after
// confirmation. Blank input saves nothing.
func (s *Session) AddEntry() error {
	fmt.Fprintln(s.out, `Enter your entry. Press "Ctrl+D" when finished.`)
	data, err := s.in.ReadAll()
	if err != nil {
		return fmt.Errorf("reading entry: %w", err)
	}

	data = strings.TrimSpace(data)
	if data == "" {
		return nil
	}

	save, err := s.in.Confirm("Save entry? [Yn] ", true)
	if err != nil {
		return fmt.Errorf("reading confirmation: %w", err)
	}
	if !save {
		return nil
	}

	if _, err := s.store.Create(data); err != nil {
		return fmt.Errorf("saving entry: %w", err)
	}
	fmt.Fprintln(s.out, "Saved successfully!")
	return nil
}

// ViewEntries pages through entries newest first, one per screen.
// A non-empty query limits the listing to entries containing it.
func (s *Session) ViewEntries(query string) error {
	entries, err := s.store.List(query)
	if err != nil {
		return fmt.Errorf("listing entries: %w", err)
	}

	for _, e := range entries {
		s.clear()
		s.printEntry(e)

		action, err := s.in.Ask("Action: [Ndq] ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading action: %w", err)
		}

		switch normalizeChoice(action) {
		case QuitKey:
			return nil
		case "d":
			if err := s.DeleteEntry(e); err != nil {
				return err
			}
		}
	}
	return nil
}

// SearchEntries asks for a query and views the matching entries.
func (s *Session) SearchEntries() error {
	query, err := s.in.Ask("Search query: ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("reading search query: %w", err)
	}
	return s.ViewEntries(query)
}

// DeleteEntry removes e after an explicit "y".
func (s *Session) DeleteEntry(e entry.Entry) error {
	ok, err := s.in.Confirm("Are you sure? [yN] ", false)
	if err != nil {
		return fmt.Errorf("reading confirmation: %w", err)
	}
	if !ok {
		return nil
	}

	if err := s.store.Delete(e.ID); err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	fmt.Fprintln(s.out, "Entry deleted.")
	return nil
}

func (s *Session) printEntry(e entry.Entry) {
	ts := e.FormatTimestamp(s.opts.TimestampFormat)
	rule := entry.Rule(ts)

	fmt.Fprintln(s.out, ts)
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out, e.Content)
	fmt.Fprintf(s.out, "\n\n%s\n", rule)
	fmt.Fprint(s.out, "\n\n")
	fmt.Fprintln(s.out, "N) next entry")
	fmt.Fprintln(s.out, "d) delete entry")
	fmt.Fprintf(s.out, "%s) return to main menu\n", QuitKey)
}
