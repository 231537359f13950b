package journal

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// clearSequence moves the cursor home and clears the terminal.
const clearSequence = "\033[H\033[2J"

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (s *Session) clear() {
	if s.opts.ClearScreen {
		io.WriteString(s.out, clearSequence)
	}
}
