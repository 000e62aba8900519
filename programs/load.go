package programs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Load reads a program from r.
// Fast mode keeps instruction bytes only, debug mode keeps every byte.
// Reaching capacity fails with ErrCapacityExceeded, nothing is truncated.
func Load(r io.Reader, debug bool, capacity int) (*Program, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("bad capacity: %d", capacity)
	}
	br := bufio.NewReader(r)
	program := &Program{
		Debug: debug,
	}
	for {
		c, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read source: %w", err)
		}
		if !debug && !IsInstruction(c) {
			continue
		}
		program.Code = append(program.Code, c)
		if len(program.Code) >= capacity {
			return nil, fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, capacity)
		}
	}
	return program, nil
}
