package main

import (
	"github.com/reusee/brainfetch/bfconfigs"
	"github.com/reusee/brainfetch/runs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Runs    runs.Module
	Configs bfconfigs.Module
}
