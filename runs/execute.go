package runs

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reusee/brainfetch/bfvm"
	"github.com/reusee/brainfetch/debugs"
	"github.com/reusee/brainfetch/dumps"
	"github.com/reusee/brainfetch/logs"
	"github.com/reusee/brainfetch/programs"
)

// Execute loads, validates and runs the program at path.
// Failures after the source is opened are reported on Stderr before they are returned.
// A breakpoint is a clean stop and returns nil.
type Execute func(ctx context.Context, path string, debug bool) error

func (Module) Execute(
	logger logs.Logger,
	newSpan logs.NewSpan,
	openSource programs.OpenSource,
	capacity programs.Capacity,
	newVM bfvm.New,
	stdin Stdin,
	stdout Stdout,
	stderr Stderr,
	tapOnBreakpoint TapOnBreakpoint,
	tap debugs.Tap,
	snapshotPath SnapshotPath,
) Execute {
	return func(ctx context.Context, path string, debug bool) (err error) {
		ctx, _ = newSpan(ctx, "")
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()
		logger := logger.With("program", path)

		src, err := openSource(ctx, path)
		if err != nil {
			return err
		}
		program, err := programs.Load(src, debug, int(capacity))
		src.Close()
		if err != nil {
			logger.ErrorContext(ctx, "load", "error", err)
			report(stderr, err)
			return err
		}
		logger.InfoContext(ctx, "loaded",
			"size", program.Len(),
			"debug", debug,
		)

		vm, err := newVM(program, stdin, stdout)
		if err != nil {
			logger.ErrorContext(ctx, "validate", "error", err)
			report(stderr, err)
			return err
		}

		for intr, err := range vm.Run {

			if err != nil {
				logger.ErrorContext(ctx, "run", "error", err)
				var fault *bfvm.Fault
				if errors.As(err, &fault) {
					if dumpErr := dumps.Fault(stderr, faultMessage(fault, len(vm.Tape)), vm.State()); dumpErr != nil {
						logger.WarnContext(ctx, "dump", "error", dumpErr)
					}
					// snapshot the state just before the faulting move
					vm.Rewind(fault)
				} else {
					report(stderr, err)
				}
				writeSnapshot(ctx, logger, vm, snapshotPath)
				return err
			}

			if intr.Breakpoint {
				logger.InfoContext(ctx, "breakpoint",
					"head", vm.Head,
					"ptr", vm.Ptr,
				)
				if err := dumps.Breakpoint(stdout, vm.State()); err != nil {
					return err
				}
				writeSnapshot(ctx, logger, vm, snapshotPath)
				if tapOnBreakpoint {
					tap(ctx, "breakpoint", tapGlobals(vm))
				}
				return nil
			}

		}

		logger.InfoContext(ctx, "done")
		return nil
	}
}

func writeSnapshot(ctx context.Context, logger logs.Logger, vm *bfvm.VM, path SnapshotPath) {
	if path == "" {
		return
	}
	if err := func() error {
		f, err := os.Create(string(path))
		if err != nil {
			return err
		}
		if err := vm.Snapshot(f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}(); err != nil {
		logger.WarnContext(ctx, "snapshot", "path", path, "error", err)
		return
	}
	logger.InfoContext(ctx, "snapshot", "path", path)
}

func tapGlobals(vm *bfvm.VM) map[string]any {
	return map[string]any{
		"ptr":      vm.Ptr,
		"head":     vm.Head,
		"position": vm.Position(),
		"tape":     vm.Tape,
		"peek": func(i int) (int, error) {
			if i < 0 || i >= len(vm.Tape) {
				return 0, fmt.Errorf("cell %d out of tape", i)
			}
			if vm.Signed {
				return int(int8(vm.Tape[i])), nil
			}
			return int(vm.Tape[i]), nil
		},
		"window": func() []string {
			return dumps.Window(vm.State())
		},
	}
}
