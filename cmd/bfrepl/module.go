package main

import (
	"github.com/reusee/brainfetch/bfconfigs"
	"github.com/reusee/brainfetch/bfvm"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	VM      bfvm.Module
	Configs bfconfigs.Module
}
