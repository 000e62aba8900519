package nets

import (
	"github.com/reusee/brainfetch/logs"
	"github.com/reusee/dscope"
)

// Module provides the transport used to fetch remote program sources.
type Module struct {
	dscope.Module
	Logs logs.Module
}
