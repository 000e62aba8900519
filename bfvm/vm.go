package bfvm

import (
	"bufio"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/reusee/brainfetch/dumps"
	"github.com/reusee/brainfetch/programs"
)

// TapeSize is the number of memory cells.
type TapeSize int

const DefaultTapeSize TapeSize = 30000

// CellSigned selects how cells are rendered in dumps.
// Arithmetic always wraps at one byte.
type CellSigned bool

// VM owns one program and its memory tape.
type VM struct {
	Code   []byte
	Debug  bool
	Tape   []byte
	Ptr    int
	Head   int
	EOF    EOFPolicy
	Signed CellSigned

	in    io.ByteReader
	out   io.Writer
	trace TraceFunc
	buf   [1]byte
}

type TraceFunc func(head int, op byte, ptr int)

type Option func(*VM)

func WithInput(r io.Reader) Option {
	return func(v *VM) {
		if br, ok := r.(io.ByteReader); ok {
			v.in = br
		} else {
			v.in = bufio.NewReader(r)
		}
	}
}

func WithOutput(w io.Writer) Option {
	return func(v *VM) {
		v.out = w
	}
}

func WithTapeSize(n TapeSize) Option {
	return func(v *VM) {
		v.Tape = make([]byte, max(n, 0))
	}
}

func WithEOF(policy EOFPolicy) Option {
	return func(v *VM) {
		v.EOF = policy
	}
}

func WithSigned(signed CellSigned) Option {
	return func(v *VM) {
		v.Signed = signed
	}
}

func WithTrace(fn TraceFunc) Option {
	return func(v *VM) {
		v.trace = fn
	}
}

// NewVM validates program and returns a VM ready to run it.
// Without options the VM reads nothing, discards output and uses a DefaultTapeSize tape.
func NewVM(program *programs.Program, options ...Option) (*VM, error) {
	if err := programs.Validate(program); err != nil {
		return nil, err
	}
	v := &VM{
		Code:  program.Code,
		Debug: program.Debug,
		EOF:   EOFKeep,
		in:    emptyReader{},
		out:   io.Discard,
	}
	for _, option := range options {
		option(v)
	}
	if v.Tape == nil {
		v.Tape = make([]byte, DefaultTapeSize)
	}
	if len(v.Tape) == 0 {
		return nil, fmt.Errorf("bad tape size: %d", len(v.Tape))
	}
	if err := v.EOF.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}

// Load replaces the program and rewinds the instruction pointer.
// Tape and cursor are kept.
func (v *VM) Load(program *programs.Program) error {
	if err := programs.Validate(program); err != nil {
		return err
	}
	v.Code = program.Code
	v.Debug = program.Debug
	v.Head = 0
	return nil
}

// Reset clears the tape and both pointers.
func (v *VM) Reset() {
	clear(v.Tape)
	v.Ptr = 0
	v.Head = 0
}

func (v *VM) Done() bool {
	return v.Head >= len(v.Code)
}

func (v *VM) State() dumps.State {
	return dumps.State{
		Code:   v.Code,
		Head:   v.Head,
		Tape:   v.Tape,
		Ptr:    v.Ptr,
		Signed: bool(v.Signed),
	}
}

func (v *VM) Position() programs.Position {
	return programs.Locate(v.Code, v.Head)
}

func (v *VM) Snapshot(w io.Writer) error {
	return gob.NewEncoder(w).Encode(v)
}

// Restore loads a snapshot, keeping the I/O attached to v.
// The snapshot must describe a runnable VM, otherwise v is left unchanged.
func (v *VM) Restore(r io.Reader) error {
	var s VM
	if err := gob.NewDecoder(r).Decode(&s); err != nil {
		return fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}
	if err := s.check(); err != nil {
		return fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}
	v.Code = s.Code
	v.Debug = s.Debug
	v.Tape = s.Tape
	v.Ptr = s.Ptr
	v.Head = s.Head
	v.EOF = s.EOF
	v.Signed = s.Signed
	return nil
}

func (v *VM) check() error {
	if len(v.Tape) == 0 {
		return fmt.Errorf("empty tape")
	}
	if v.Ptr < 0 || v.Ptr >= len(v.Tape) {
		return fmt.Errorf("memory pointer %d out of tape of %d cells", v.Ptr, len(v.Tape))
	}
	if v.Head < 0 || v.Head > len(v.Code) {
		return fmt.Errorf("instruction pointer %d out of program of %d bytes", v.Head, len(v.Code))
	}
	if err := programs.Validate(&programs.Program{
		Code:  v.Code,
		Debug: v.Debug,
	}); err != nil {
		return err
	}
	return v.EOF.Validate()
}

// Rewind moves the cursor back onto the tape after f, leaving Head on the faulting instruction.
// Running again reproduces f.
func (v *VM) Rewind(f *Fault) {
	v.Head = f.Head
	if f.Kind == PointerUnderflow {
		v.Ptr = f.Ptr + 1
	} else {
		v.Ptr = f.Ptr - 1
	}
}

type emptyReader struct{}

func (emptyReader) ReadByte() (byte, error) {
	return 0, io.EOF
}
