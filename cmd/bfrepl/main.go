package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/reusee/brainfetch/bfvm"
	"github.com/reusee/brainfetch/cmds"
	"github.com/reusee/brainfetch/logs"
	"github.com/reusee/brainfetch/modes"
	"github.com/reusee/brainfetch/programs"
	"github.com/reusee/dscope"
)

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		newVM bfvm.New,
		logger logs.Logger,
	) {
		vm, err := newVM(&programs.Program{Debug: true}, emptyInput{}, os.Stdout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		runREPL(newSession(vm, os.Stdout), logger)
	})
}

func runREPL(session *session, logger logs.Logger) {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".brainfetch_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "bf> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()
	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		if err := session.eval(line); err != nil {
			if err == errQuit {
				break
			}
			logger.Debug("eval", "error", err)
		}
	}
}

type emptyInput struct{}

func (emptyInput) Read([]byte) (int, error) {
	return 0, io.EOF
}
