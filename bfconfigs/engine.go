package bfconfigs

import (
	"fmt"

	"github.com/reusee/brainfetch/bfvm"
	"github.com/reusee/brainfetch/cmds"
	"github.com/reusee/brainfetch/configs"
	"github.com/reusee/brainfetch/programs"
	"github.com/reusee/brainfetch/vars"
)

var (
	capacityFlag = cmds.Var[int]("-capacity", "instruction buffer capacity in bytes")
	tapeSizeFlag = cmds.Var[int]("-tape-size", "number of memory cells")
	eofFlag      = cmds.Var[bfvm.EOFPolicy]("-eof", "value stored at end of input: keep, zero or minus-one")
	unsignedFlag = cmds.Switch("-unsigned", "render memory cells as unsigned bytes")
	traceFlag    = cmds.Switch("-trace", "log every executed instruction at debug level")
)

func (Module) Capacity(
	loader configs.Loader,
) programs.Capacity {
	n := vars.FirstNonZero(
		*capacityFlag,
		configs.First[int](loader, "program_capacity"),
		int(programs.DefaultCapacity),
	)
	if n <= 0 {
		panic(fmt.Errorf("bad program capacity: %d", n))
	}
	return programs.Capacity(n)
}

func (Module) TapeSize(
	loader configs.Loader,
) bfvm.TapeSize {
	n := vars.FirstNonZero(
		*tapeSizeFlag,
		configs.First[int](loader, "tape_size"),
		int(bfvm.DefaultTapeSize),
	)
	if n <= 0 {
		panic(fmt.Errorf("bad tape size: %d", n))
	}
	return bfvm.TapeSize(n)
}

func (Module) EOFPolicy(
	loader configs.Loader,
) bfvm.EOFPolicy {
	policy := vars.FirstNonZero(
		*eofFlag,
		configs.First[bfvm.EOFPolicy](loader, "eof"),
		bfvm.EOFKeep,
	)
	if err := policy.Validate(); err != nil {
		panic(err)
	}
	return policy
}

func (Module) CellSigned(
	loader configs.Loader,
) bfvm.CellSigned {
	if *unsignedFlag {
		return false
	}
	return !bfvm.CellSigned(configs.First[bool](loader, "unsigned_cells"))
}

func (Module) Trace() bfvm.Trace {
	return bfvm.Trace(*traceFlag)
}
