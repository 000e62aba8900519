package programs

import (
	"github.com/reusee/brainfetch/logs"
	"github.com/reusee/brainfetch/nets"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Nets nets.Module
	Logs logs.Module
}

// Capacity bounds the instruction buffer.
type Capacity int

const DefaultCapacity Capacity = 50000
