package runs

import (
	"errors"
	"fmt"
	"io"

	"github.com/reusee/brainfetch/bfvm"
	"github.com/reusee/brainfetch/programs"
)

// report writes the user facing message for a load or validation failure.
func report(w io.Writer, err error) {
	var syntaxErr *programs.SyntaxError
	switch {

	case errors.Is(err, programs.ErrCapacityExceeded):
		fmt.Fprintf(w, "\nERROR: Out of Program Memory. Program file too large.\n")

	case errors.As(err, &syntaxErr) && syntaxErr.Kind == programs.UnmatchedClose:
		fmt.Fprintf(w, "\nERROR: Unopened \"]\" (\"[\" expected)\n%s\n", syntaxErr.Position)

	case errors.As(err, &syntaxErr) && syntaxErr.Kind == programs.UnmatchedOpen:
		fmt.Fprintf(w, "\nERROR: Unclosed \"[\" (\"]\" expected)\n")

	default:
		fmt.Fprintf(w, "\nERROR: %v\n", err)

	}
}

func faultMessage(fault *bfvm.Fault, tapeSize int) string {
	switch fault.Kind {
	case bfvm.PointerUnderflow:
		return "Pointer underflow (Memory pointer < 0)"
	case bfvm.PointerOverflow:
		return fmt.Sprintf("Out of Work Memory (Memory pointer >= %d)", tapeSize)
	}
	return fault.Error()
}
