package debugs

import (
	"github.com/reusee/brainfetch/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
