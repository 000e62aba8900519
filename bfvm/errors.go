package bfvm

import (
	"errors"
	"fmt"

	"github.com/reusee/brainfetch/programs"
)

var (
	ErrPointerUnderflow = errors.New("pointer underflow")
	ErrPointerOverflow  = errors.New("pointer overflow")
	ErrBadSnapshot      = errors.New("bad snapshot")
)

type FaultKind int

const (
	PointerUnderflow FaultKind = iota + 1
	PointerOverflow
)

// Fault halts a run. Head is the offending instruction.
type Fault struct {
	Kind     FaultKind
	Head     int
	Ptr      int
	Position programs.Position
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s (memory pointer %d) at %s", f.Unwrap(), f.Ptr, f.Position)
}

func (f *Fault) Unwrap() error {
	if f.Kind == PointerUnderflow {
		return ErrPointerUnderflow
	}
	return ErrPointerOverflow
}
