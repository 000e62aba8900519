package bfvm

import (
	"io"

	"github.com/reusee/brainfetch/logs"
	"github.com/reusee/brainfetch/programs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// Trace enables per-instruction debug logging.
type Trace bool

type New func(program *programs.Program, in io.Reader, out io.Writer) (*VM, error)

func (Module) New(
	tapeSize TapeSize,
	eof EOFPolicy,
	signed CellSigned,
	trace Trace,
	logger logs.Logger,
) New {
	return func(program *programs.Program, in io.Reader, out io.Writer) (*VM, error) {
		options := []Option{
			WithTapeSize(tapeSize),
			WithEOF(eof),
			WithSigned(signed),
			WithInput(in),
			WithOutput(out),
		}
		if trace {
			options = append(options, WithTrace(func(head int, op byte, ptr int) {
				logger.Debug("step",
					"head", head,
					"op", string(op),
					"ptr", ptr,
				)
			}))
		}
		return NewVM(program, options...)
	}
}
