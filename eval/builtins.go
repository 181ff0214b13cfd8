/*
File    : anvil/eval/builtins.go
*/

package eval

import (
	"fmt"

	"github.com/anvil-lang/anvil/lexer"
	"github.com/anvil-lang/anvil/objects"
	"github.com/anvil-lang/anvil/scope"
)

// builtins is the closed set of identifier names checked before
// variable/function lookup, per spec.md §4.3.2.
var builtins = map[string]func(it *Interpreter, stack *Stack) error{
	"print":  builtinPrint,
	"assert": builtinAssert,
	"swap":   builtinSwap,
	"drop":   builtinDrop,
	"clear":  builtinClear,
	"rot":    builtinRot,
	"copy":   builtinCopy,
	"carry":  builtinCarry,
	"sqrt":   builtinSqrt,
	"push":   builtinPush,
	"pop":    builtinPop,
}

// dispatchIdentifier handles one UNKNOWN-kind token's text: a built-in
// name, a variable read, or a user function call, in that priority
// order (spec.md §4.3.2/§4.3.3).
func (it *Interpreter) dispatchIdentifier(name string, frame *scope.Frame, stack *Stack) error {
	if fn, ok := builtins[name]; ok {
		return fn(it, stack)
	}
	if v, ok := frame.Lookup(name); ok {
		stack.Push(v)
		return nil
	}
	if _, ok := it.Functions[name]; ok {
		return it.call(name, stack)
	}
	// Unrecognised identifier resolves nowhere: a deliberate no-op, see
	// spec.md §9.
	return nil
}

func builtinPrint(it *Interpreter, stack *Stack) error {
	v, err := stack.Pop("print")
	if err != nil {
		return err
	}
	switch v.Kind {
	case lexer.STRING, lexer.INT, lexer.FLOAT, lexer.BOOLEAN, lexer.ARRAY:
		fmt.Fprintln(it.Writer, v.Text())
		return nil
	default:
		return errf("can't print a %s", v.KindName())
	}
}

func builtinAssert(it *Interpreter, stack *Stack) error {
	second, err := stack.Pop("assert")
	if err != nil {
		return err
	}
	first, err := stack.Pop("assert")
	if err != nil {
		return err
	}
	if !first.Equal(second) {
		msg := fmt.Sprintf("%q != %q", first.Text(), second.Text())
		fmt.Fprintln(it.Writer, msg)
		return &AssertionFailure{Message: msg}
	}
	return nil
}

func builtinSwap(it *Interpreter, stack *Stack) error {
	second, err := stack.Pop("swap")
	if err != nil {
		return err
	}
	first, err := stack.Pop("swap")
	if err != nil {
		return err
	}
	stack.Push(second)
	stack.Push(first)
	return nil
}

func builtinDrop(it *Interpreter, stack *Stack) error {
	_, err := stack.Pop("drop")
	return err
}

func builtinClear(it *Interpreter, stack *Stack) error {
	stack.Clear()
	return nil
}

func builtinRot(it *Interpreter, stack *Stack) error {
	third, err := stack.Pop("rot")
	if err != nil {
		return err
	}
	second, err := stack.Pop("rot")
	if err != nil {
		return err
	}
	first, err := stack.Pop("rot")
	if err != nil {
		return err
	}
	stack.Push(first)
	stack.Push(third)
	stack.Push(second)
	return nil
}

func builtinCopy(it *Interpreter, stack *Stack) error {
	top, err := stack.Peek(0)
	if err != nil {
		return err
	}
	stack.Push(top)
	return nil
}

func builtinCarry(it *Interpreter, stack *Stack) error {
	v, err := stack.Peek(1)
	if err != nil {
		return err
	}
	stack.Push(v)
	return nil
}

func builtinSqrt(it *Interpreter, stack *Stack) error {
	v, err := stack.Pop("sqrt")
	if err != nil {
		return err
	}
	result, err := objects.Sqrt(v)
	if err != nil {
		return &RuntimeError{Message: err.Error()}
	}
	stack.Push(result)
	return nil
}

// builtinPush pops two values; whichever is an ARRAY receives the other
// appended at its tail (preferring the first popped, i.e. top-of-stack,
// per spec.md §4.3.2).
func builtinPush(it *Interpreter, stack *Stack) error {
	second, err := stack.Pop("push")
	if err != nil {
		return err
	}
	first, err := stack.Pop("push")
	if err != nil {
		return err
	}
	switch {
	case second.Kind == lexer.ARRAY:
		elems := append(append([]objects.Value{}, second.Elements...), first)
		stack.Push(objects.Arr(elems))
	case first.Kind == lexer.ARRAY:
		elems := append(append([]objects.Value{}, first.Elements...), second)
		stack.Push(objects.Arr(elems))
	default:
		return errf("no array provided for push")
	}
	return nil
}

// builtinPop pops one ARRAY value; if non-empty, pushes the array minus
// its last element, then pushes that element; if empty, pushes nothing.
func builtinPop(it *Interpreter, stack *Stack) error {
	v, err := stack.Pop("pop")
	if err != nil {
		return err
	}
	if v.Kind != lexer.ARRAY {
		return errf("pop requires an array, got %s", v.KindName())
	}
	if len(v.Elements) == 0 {
		return nil
	}
	last := v.Elements[len(v.Elements)-1]
	rest := append([]objects.Value{}, v.Elements[:len(v.Elements)-1]...)
	stack.Push(objects.Arr(rest))
	stack.Push(last)
	return nil
}
