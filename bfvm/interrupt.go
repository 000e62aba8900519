package bfvm

type Interrupt struct {
	Breakpoint bool
}

var InterruptBreakpoint = &Interrupt{
	Breakpoint: true,
}
