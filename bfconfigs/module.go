package bfconfigs

import (
	"github.com/reusee/brainfetch/logs"
	"github.com/reusee/dscope"
)

// Module provides the engine settings, from flags first, then config files, then defaults.
type Module struct {
	dscope.Module
	Logs logs.Module
}
