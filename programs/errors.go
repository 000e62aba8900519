package programs

import (
	"errors"
	"fmt"
)

var (
	ErrCapacityExceeded = errors.New("program too large")
	ErrUnmatchedClose   = errors.New("unmatched close bracket")
	ErrUnmatchedOpen    = errors.New("unmatched open bracket")
	ErrOpenSource       = errors.New("open source")
)

type SyntaxKind int

const (
	UnmatchedClose SyntaxKind = iota + 1
	UnmatchedOpen
)

// SyntaxError reports the first structural defect of a program.
// Offset is -1 for UnmatchedOpen, no single bracket is blamed.
type SyntaxError struct {
	Kind     SyntaxKind
	Offset   int
	Position Position
}

func (s *SyntaxError) Error() string {
	switch s.Kind {
	case UnmatchedClose:
		return fmt.Sprintf("%s at %s", ErrUnmatchedClose, s.Position)
	case UnmatchedOpen:
		return ErrUnmatchedOpen.Error()
	}
	return "syntax error"
}

func (s *SyntaxError) Unwrap() error {
	switch s.Kind {
	case UnmatchedClose:
		return ErrUnmatchedClose
	case UnmatchedOpen:
		return ErrUnmatchedOpen
	}
	return nil
}
