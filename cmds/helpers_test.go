package cmds

import (
	"testing"
)

func TestVar(t *testing.T) {
	a := Var[int]("TestVarA", "")
	b := Var[string]("TestVarB", "")
	GlobalExecutor.MustExecute([]string{
		"TestVarA", "42",
		"TestVarB", "bar",
	})
	if *a != 42 {
		t.Fatal()
	}
	if *b != "bar" {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"TestVarA.",
	})
	if *a != 0 {
		t.Fatal()
	}
}

func TestSwitch(t *testing.T) {
	foo := Switch("TestSwitch", "")
	if err := Execute([]string{
		"TestSwitch",
	}); err != nil {
		t.Fatal(err)
	}
	if !*foo {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *foo {
		t.Fatal()
	}
}

func TestTypedVar(t *testing.T) {
	type Foo string
	v := Var[Foo]("TestTypedVar", "")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "bar",
	})
	if *v != "bar" {
		t.Fatal()
	}
}
