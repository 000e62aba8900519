package logs

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

// Span identifies one load-and-run of a program.
type Span string

type spanKey struct{}

var SpanKey spanKey
