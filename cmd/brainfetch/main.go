package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reusee/brainfetch/cmds"
	"github.com/reusee/brainfetch/modes"
	"github.com/reusee/brainfetch/programs"
	"github.com/reusee/brainfetch/runs"
	"github.com/reusee/dscope"
)

const debugFlag = "-d"

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 2 {
		printHelp(stdout, args[0])
		return 1
	}
	path := args[1]

	debug, options := splitArgs(args[2:])
	if err := cmds.Execute(options); err != nil {
		fmt.Fprintf(stderr, "%v\n\n", err)
		printHelp(stderr, args[0])
		return 1
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	).Fork(
		func() runs.Stdout {
			return stdout
		},
		func() runs.Stderr {
			return stderr
		},
	)

	code := 0
	scope.Call(func(
		execute runs.Execute,
	) {
		err := execute(context.Background(), path, debug)
		if err == nil {
			return
		}
		code = 1
		if errors.Is(err, programs.ErrOpenSource) {
			if programs.IsURL(path) {
				fmt.Fprintf(stderr, "%v\n\n", err)
			} else {
				fmt.Fprintf(stderr, "%s: no such file\n\n", path)
			}
			printHelp(stderr, args[0])
		}
	})
	return code
}

// splitArgs reads the arguments after FILE.
// A leading "-d" selects debug mode; any other leading word not starting with "-" selects fast mode and is skipped.
// The rest are options.
func splitArgs(args []string) (debug bool, options []string) {
	if len(args) == 0 {
		return false, nil
	}
	switch {
	case args[0] == debugFlag:
		return true, args[1:]
	case !strings.HasPrefix(args[0], "-"):
		return false, args[1:]
	}
	return false, args
}

func printHelp(w io.Writer, name string) {
	fmt.Fprintf(w, "Usage:\n  %s [FILE].bf [-d] [OPTIONS]\n", name)
	fmt.Fprintf(w, "  -d\tdebug mode, must directly follow FILE\n")
	fmt.Fprintf(w, "Options follow FILE, or -d when given:\n")
	cmds.PrintUsage(w)
}
