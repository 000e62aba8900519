package runs

import (
	"io"
	"os"

	"github.com/reusee/brainfetch/bfvm"
	"github.com/reusee/brainfetch/cmds"
	"github.com/reusee/brainfetch/debugs"
	"github.com/reusee/brainfetch/logs"
	"github.com/reusee/brainfetch/programs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs     logs.Module
	Programs programs.Module
	VM       bfvm.Module
	Debugs   debugs.Module
}

type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

type Stdout io.Writer

func (Module) Stdout() Stdout {
	return os.Stdout
}

type Stderr io.Writer

func (Module) Stderr() Stderr {
	return os.Stderr
}

var (
	tapFlag      = cmds.Switch("-tap", "open a starlark REPL on breakpoint")
	snapshotFlag = cmds.Var[string]("-snapshot", "write a VM snapshot to this file on breakpoint or fault")
)

// TapOnBreakpoint opens the debugs.Tap REPL when a breakpoint is hit.
type TapOnBreakpoint bool

func (Module) TapOnBreakpoint() TapOnBreakpoint {
	return TapOnBreakpoint(*tapFlag)
}

type SnapshotPath string

func (Module) SnapshotPath() SnapshotPath {
	return SnapshotPath(*snapshotFlag)
}
