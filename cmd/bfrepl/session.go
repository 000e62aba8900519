package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reusee/brainfetch/bfvm"
	"github.com/reusee/brainfetch/dumps"
	"github.com/reusee/brainfetch/programs"
)

var errQuit = errors.New("quit")

// session runs each input line against one VM, the tape persists between lines.
type session struct {
	vm  *bfvm.VM
	out io.Writer
}

func newSession(vm *bfvm.VM, out io.Writer) *session {
	return &session{
		vm:  vm,
		out: out,
	}
}

func (s *session) eval(line string) error {
	line = strings.TrimSpace(line)
	command, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch command {
	case "":
		return nil
	case ":q", ":quit":
		return errQuit
	case ":dump":
		return dumps.Dump(s.out, s.vm.State())
	case ":reset":
		s.vm.Reset()
		return nil
	case ":save":
		return s.report(s.save(arg))
	case ":load":
		if err := s.report(s.load(arg)); err != nil {
			return err
		}
		// resume the restored program
		return s.run()
	}

	program, err := programs.Load(strings.NewReader(line), true, len(line)+1)
	if err != nil {
		return s.report(err)
	}
	if err := s.vm.Load(program); err != nil {
		return s.report(err)
	}
	return s.run()
}

func (s *session) run() error {
	for intr, err := range s.vm.Run {
		if err != nil {
			fmt.Fprintf(s.out, "\nerror: %v\n", err)
			var fault *bfvm.Fault
			if errors.As(err, &fault) {
				// keep the cursor on the tape
				s.vm.Rewind(fault)
			}
			return err
		}
		if intr.Breakpoint {
			if err := dumps.Breakpoint(s.out, s.vm.State()); err != nil {
				return err
			}
		}
	}
	fmt.Fprintln(s.out)
	return nil
}

func (s *session) report(err error) error {
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
	}
	return err
}

func (s *session) save(path string) (err error) {
	if path == "" {
		return fmt.Errorf("usage: :save PATH")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = e
		}
	}()
	return s.vm.Snapshot(f)
}

func (s *session) load(path string) error {
	if path == "" {
		return fmt.Errorf("usage: :load PATH")
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.vm.Restore(f)
}
