package journal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter reads answers from an input stream after writing a prompt.
//
// End of input is not sticky: on a terminal, Ctrl+D ends the current read
// and later reads wait for new keystrokes. ReadAll relies on this to collect
// a multi-line entry body and keep prompting afterwards.
type Prompter struct {
	r   *bufio.Reader
	out io.Writer
}

// NewPrompter returns a Prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(in), out: out}
}

// Ask writes prompt and returns the next line without its line ending.
// Returns io.EOF only when input ended before any character was read.
func (p *Prompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimLineEnding(line), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
		}
		return "", err
	}
	return trimLineEnding(line), nil
}

// ReadAll reads everything up to the next end-of-input signal.
func (p *Prompter) ReadAll() (string, error) {
	var sb strings.Builder
	for {
		chunk, err := p.r.ReadString('\n')
		sb.WriteString(chunk)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return sb.String(), nil
			}
			return sb.String(), err
		}
	}
}

// Confirm asks a yes/no question. With defaultYes, anything but "n" means
// yes; otherwise only "y" does. End of input takes the default.
func (p *Prompter) Confirm(prompt string, defaultYes bool) (bool, error) {
	answer, err := p.Ask(prompt)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return defaultYes, nil
		}
		return false, err
	}

	answer = normalizeChoice(answer)
	if defaultYes {
		return answer != "n", nil
	}
	return answer == "y", nil
}

func trimLineEnding(s string) string {
	return strings.TrimRight(s, "\r\n")
}

// normalizeChoice lower-cases and trims a menu answer.
func normalizeChoice(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
