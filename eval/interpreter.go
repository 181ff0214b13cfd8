/*
File    : anvil/eval/interpreter.go
*/

// Package eval executes a parsed function.Map: it runs `_global` once to
// populate the process-wide heap, then runs `main`, dispatching every
// body token per spec.md §4.3.
package eval

import (
	"io"
	"os"

	"github.com/anvil-lang/anvil/function"
	"github.com/anvil-lang/anvil/objects"
	"github.com/anvil-lang/anvil/scope"
)

// Interpreter holds the state shared across an entire program run: the
// parsed function map, the process-wide global heap, and the output
// destination for `print`/`assert`.
type Interpreter struct {
	Functions function.Map
	Global    *scope.Global
	Writer    io.Writer
}

// NewInterpreter builds an interpreter over fm, defaulting output to
// os.Stdout.
func NewInterpreter(fm function.Map) *Interpreter {
	return &Interpreter{
		Functions: fm,
		Global:    scope.NewGlobal(),
		Writer:    os.Stdout,
	}
}

// SetWriter redirects print/assert output, primarily for tests.
func (it *Interpreter) SetWriter(w io.Writer) {
	it.Writer = w
}

// Run executes the program's entry point per spec.md §4.3's top-level
// contract: `_global` first, with no parent stack, then `main`.
func (it *Interpreter) Run() error {
	if _, ok := it.Functions[function.Global]; !ok {
		return errf("the function %s is not declared", function.Global)
	}
	if err := it.call(function.Global, nil); err != nil {
		return err
	}
	if _, ok := it.Functions[function.Main]; !ok {
		return errf("the function %s is not declared", function.Main)
	}
	return it.call(function.Main, nil)
}

// call invokes the named function, binding its declared parameters by
// popping from caller (the invoking frame's operand stack) in order, per
// spec.md §4.3's argument-binding rule. caller is nil for the two
// top-level invocations in Run.
func (it *Interpreter) call(name string, caller *Stack) error {
	fn, ok := it.Functions[name]
	if !ok {
		return errf("the function %s is not declared", name)
	}

	frame := scope.NewFrame(it.Global)
	stack := &Stack{}

	if caller != nil {
		for i, p := range fn.Parameters {
			v, err := caller.Pop(name)
			if err != nil {
				return errf("function %s expected %d arguments but got %d", name, len(fn.Parameters), i)
			}
			if p.IsNameBinding() {
				frame.SetLive(p.Name, v)
			} else if objects.MatchesGuard(v, p.Kind) {
				stack.Push(v)
			}
			// mismatched type guard: silently dropped, per spec.md §4.3
		}
	}

	return it.exec(fn.Body, name == function.Global, frame, stack, caller)
}

// RunGlobalBody executes body as one `_global` fragment against a fresh
// frame sharing the persistent global heap, and returns what's left on
// its operand stack. It's used by the REPL, where each input line is
// parsed and run as its own `_global` body so assignments land in the
// one process-wide heap shared across the session.
func (it *Interpreter) RunGlobalBody(body []function.BodyToken) ([]objects.Value, error) {
	frame := scope.NewFrame(it.Global)
	stack := &Stack{}
	if err := it.exec(body, true, frame, stack, nil); err != nil {
		return nil, err
	}
	return stack.values, nil
}
