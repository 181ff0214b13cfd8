/*
File    : anvil/eval/errors.go
*/

package eval

import "fmt"

// RuntimeError reports a fatal interpreter-time fault: stack underflow,
// an operator applied to incompatible kinds, a missing function, a
// malformed assignment target. Anvil has no local recovery (spec.md §7):
// every RuntimeError unwinds to Run's top-level boundary.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func errf(format string, a ...interface{}) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, a...)}
}

// AssertionFailure is raised by the `assert` builtin on a mismatch, after
// the builtin has already written its message to the interpreter's
// Writer. Run returns it like any other error; cmd/anvil maps it to exit
// code 1 rather than to the runtime-error code.
type AssertionFailure struct {
	Message string
}

func (e *AssertionFailure) Error() string { return e.Message }
