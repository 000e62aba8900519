package bfvm

import (
	"errors"
	"fmt"
	"io"
)

// Run executes until the program ends, a fault occurs, or yield returns false on an interrupt.
// Faults and I/O errors always end the run.
// After a breakpoint is yielded and accepted, execution resumes past it.
func (v *VM) Run(yield func(*Interrupt, error) bool) {
	for !v.Done() {
		intr, err := v.Step()
		if err != nil {
			yield(nil, err)
			return
		}
		if intr != nil {
			if !yield(intr, nil) {
				return
			}
			v.Head++
		}
	}
}

// Step executes the instruction at Head.
// On a breakpoint Head is left on the breakpoint.
func (v *VM) Step() (*Interrupt, error) {
	op := v.Code[v.Head]
	if v.trace != nil {
		v.trace(v.Head, op, v.Ptr)
	}

	switch op {

	case '>':
		v.Ptr++

	case '<':
		v.Ptr--

	case '+':
		v.Tape[v.Ptr]++

	case '-':
		v.Tape[v.Ptr]--

	case '.':
		v.buf[0] = v.Tape[v.Ptr]
		if _, err := v.out.Write(v.buf[:]); err != nil {
			return nil, fmt.Errorf("write output at %s: %w", v.Position(), err)
		}

	case ',':
		b, err := v.in.ReadByte()
		if errors.Is(err, io.EOF) {
			v.EOF.apply(&v.Tape[v.Ptr])
		} else if err != nil {
			return nil, fmt.Errorf("read input at %s: %w", v.Position(), err)
		} else {
			v.Tape[v.Ptr] = b
		}

	case '[':
		if v.Tape[v.Ptr] == 0 {
			v.Head = v.matchForward(v.Head)
		}

	case ']':
		// land before the '[' so the advance below re-tests it
		v.Head = v.matchBackward(v.Head) - 1

	case '*':
		if v.Debug {
			return InterruptBreakpoint, nil
		}

	}

	if v.Ptr < 0 {
		return nil, v.fault(PointerUnderflow)
	}
	if v.Ptr >= len(v.Tape) {
		return nil, v.fault(PointerOverflow)
	}

	v.Head++
	return nil, nil
}

func (v *VM) fault(kind FaultKind) *Fault {
	return &Fault{
		Kind:     kind,
		Head:     v.Head,
		Ptr:      v.Ptr,
		Position: v.Position(),
	}
}
