package prompt

import (
	"errors"
	"strings"
)

// Scripted replays a fixed sequence of answers. It stands in for a
// terminal in tests and other non-interactive runs.
type Scripted struct {
	Lines     []string
	Passwords [][]byte
}

// ReadLine returns the next queued line.
func (s *Scripted) ReadLine(prompt string) (string, error) {
	if len(s.Lines) == 0 {
		return "", errors.New("no scripted input left")
	}
	line := s.Lines[0]
	s.Lines = s.Lines[1:]
	return strings.TrimSpace(line), nil
}

// ReadPassword returns the next queued password.
func (s *Scripted) ReadPassword(prompt string) ([]byte, error) {
	if len(s.Passwords) == 0 {
		return nil, errors.New("no scripted password left")
	}
	password := s.Passwords[0]
	s.Passwords = s.Passwords[1:]
	return password, nil
}
