package parser

import "fmt"

// Error reports a malformed program: a nested function declaration, a
// stray `end`, a reserved-word function name, or a malformed identifier,
// per spec.md §4.2/§7.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func errf(format string, a ...interface{}) error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}
