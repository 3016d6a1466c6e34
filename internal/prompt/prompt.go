// Package prompt collects interactive input. The Prompter abstraction
// keeps the setup and unlock flows independent of a real terminal.
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

// Prompter obtains lines and passwords from the user.
type Prompter interface {
	// ReadLine prints prompt and returns the next input line with
	// surrounding whitespace trimmed.
	ReadLine(prompt string) (string, error)

	// ReadPassword prints prompt and returns the next input line
	// without echoing it back. The caller should zero the returned
	// bytes after use.
	ReadPassword(prompt string) ([]byte, error)
}

// Terminal prompts on stderr and reads from stdin. Passwords require a
// real terminal so the echo can be suppressed.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal returns a Prompter wired to the process terminal.
func NewTerminal() *Terminal {
	return &Terminal{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stderr,
	}
}

// ReadLine prints prompt on stderr and reads one line from stdin.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	line, err := t.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// ReadPassword prints prompt on stderr and reads one line from stdin
// with terminal echo disabled.
func (t *Terminal) ReadPassword(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run interactively to enter the password")
	}
	fmt.Fprint(t.out, prompt)
	defer fmt.Fprintln(t.out)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}

	password := make([]byte, len(raw))
	copy(password, raw)
	clear(raw)
	return password, nil
}
