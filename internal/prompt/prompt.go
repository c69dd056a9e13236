// Package prompt implements the interactive input loop shared by the
// lifecycle commands. Cancellation (EOF on stdin) is reported as
// ErrCancelled so callers can map it to a clean exit rather than a failure.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrCancelled is returned when the user ends input instead of answering.
var ErrCancelled = errors.New("cancelled by user")

// Prompter reads labelled values from an input stream, writing the labels to
// an output stream.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	// stdinFD is the file descriptor used for no-echo password reads, or -1
	// when the input is not a terminal.
	stdinFD int
}

// New returns a Prompter over arbitrary streams. Password reads echo, since
// there is no terminal to control.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, stdinFD: -1}
}

// NewStdin returns a Prompter over the process's stdin/stdout, enabling
// no-echo password entry when stdin is a terminal.
func NewStdin() *Prompter {
	p := New(os.Stdin, os.Stdout)
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		p.stdinFD = fd
	}
	return p
}

// Line prints the label and reads a single trimmed line.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				return trimmed, nil
			}
			return "", ErrCancelled
		}
		return "", fmt.Errorf("read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// LineDefault reads a line, substituting def when the answer is blank. The
// default is shown in the label when non-empty.
func (p *Prompter) LineDefault(label, def string) (string, error) {
	if def != "" {
		label = fmt.Sprintf("%s [%s]: ", strings.TrimSuffix(strings.TrimSpace(label), ":"), def)
	}

	value, err := p.Line(label)
	if err != nil {
		return "", err
	}
	if value == "" {
		return def, nil
	}
	return value, nil
}

// Password reads a value without echoing when stdin is a terminal, falling
// back to a plain line read otherwise.
func (p *Prompter) Password(label string) (string, error) {
	if p.stdinFD < 0 {
		return p.Line(label)
	}

	fmt.Fprint(p.out, label)
	raw, err := term.ReadPassword(p.stdinFD)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// Confirm asks a yes/no question, re-prompting until the answer is one of
// yes/y/no/n (case-insensitive).
func (p *Prompter) Confirm(label string) (bool, error) {
	for {
		answer, err := p.Line(fmt.Sprintf("%s (yes/no): ", label))
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		default:
			fmt.Fprintln(p.out, "Please enter 'yes' or 'no'")
		}
	}
}
