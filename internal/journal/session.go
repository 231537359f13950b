// Package journal implements the interactive diary session: a text menu
// dispatching to add, view, search and delete handlers.
package journal

import (
	"errors"
	"fmt"
	"io"

	"github.com/matsen/diary/internal/entry"
)

// QuitKey ends the menu loop and, while viewing, returns to the menu.
const QuitKey = "q"

// Store is the persistence the session needs.
type Store interface {
	Create(content string) (*entry.Entry, error)
	List(query string) ([]entry.Entry, error)
	Delete(id int64) error
}

// Options control how a session renders.
type Options struct {
	TimestampFormat string // strftime pattern for entry headers
	ClearScreen     bool   // clear the terminal between screens
}

// Session is one interactive run bound to a store.
type Session struct {
	store    Store
	in       *Prompter
	out      io.Writer
	opts     Options
	commands []Command
}

// Command is one entry in the main menu.
type Command struct {
	Key   string
	Label string
	Run   func(*Session) error
}

// NewSession creates a session reading answers from in and writing to out.
func NewSession(store Store, in io.Reader, out io.Writer, opts Options) *Session {
	s := &Session{
		store: store,
		in:    NewPrompter(in, out),
		out:   out,
		opts:  opts,
	}
	s.commands = []Command{
		{Key: "a", Label: "Add an entry.", Run: (*Session).AddEntry},
		{Key: "v", Label: "View previous entries.", Run: func(s *Session) error { return s.ViewEntries("") }},
		{Key: "s", Label: "Search entries for a string.", Run: (*Session).SearchEntries},
	}
	return s
}

// Commands returns the main menu in display order.
func (s *Session) Commands() []Command {
	return s.commands
}

// MenuLoop shows the main menu until the user quits or input ends.
// Unknown choices redisplay the menu. Store errors end the loop.
func (s *Session) MenuLoop() error {
	for {
		s.clear()
		fmt.Fprintf(s.out, "Enter '%s' to quit.\n", QuitKey)
		for _, c := range s.commands {
			fmt.Fprintf(s.out, "%s) %s\n", c.Key, c.Label)
		}

		choice, err := s.in.Ask("Action: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading menu choice: %w", err)
		}

		choice = normalizeChoice(choice)
		if choice == QuitKey {
			return nil
		}

		cmd, ok := s.lookup(choice)
		if !ok {
			continue
		}
		s.clear()
		if err := cmd.Run(s); err != nil {
			return err
		}
	}
}

func (s *Session) lookup(key string) (Command, bool) {
	for _, c := range s.commands {
		if c.Key == key {
			return c, true
		}
	}
	return Command{}, false
}
