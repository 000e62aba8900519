// Package dumps renders the memory window printed on breakpoints and faults.
package dumps

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/reusee/brainfetch/programs"
)

// Radius is the number of cells shown on each side of the cursor.
const Radius = 16

const placeholder = "-"

type State struct {
	Code   []byte
	Head   int
	Tape   []byte
	Ptr    int
	Signed bool
}

func (s State) Position() programs.Position {
	return programs.Locate(s.Code, s.Head)
}

// Cell renders the cell at i, or the placeholder if i is off the tape.
func (s State) Cell(i int) string {
	if i < 0 || i >= len(s.Tape) {
		return placeholder
	}
	if s.Signed {
		return strconv.Itoa(int(int8(s.Tape[i])))
	}
	return strconv.Itoa(int(s.Tape[i]))
}

// Window returns the 2*Radius+1 cells around the cursor, the cursor cell in brackets.
func Window(s State) []string {
	ret := make([]string, 0, 2*Radius+1)
	for i := s.Ptr - Radius; i <= s.Ptr+Radius; i++ {
		cell := s.Cell(i)
		if i == s.Ptr {
			cell = "[" + cell + "]"
		}
		ret = append(ret, cell)
	}
	return ret
}

func Dump(w io.Writer, s State) error {
	_, err := io.WriteString(w, render(s))
	return err
}

func Breakpoint(w io.Writer, s State) error {
	_, err := io.WriteString(w, "\nINFO: Breakpoint hit - "+render(s))
	return err
}

func Fault(w io.Writer, message string, s State) error {
	_, err := io.WriteString(w, "\nERROR: "+message+"\n"+render(s))
	return err
}

func render(s State) string {
	b := new(strings.Builder)
	fmt.Fprintf(b, "%s\n", s.Position())
	b.WriteString("Memory relative to memory I/O head (in brackets):\n")
	b.WriteString(strings.Join(Window(s), " "))
	fmt.Fprintf(b, "\nMemory I/O head address: %d\n", s.Ptr)
	return b.String()
}
