/*
File    : anvil/function/function.go
*/

// Package function holds the parsed representation of Anvil function
// bodies: a name, an ordered parameter list, and an ordered body of
// tokens awaiting interpretation.
package function

import (
	"github.com/anvil-lang/anvil/lexer"
	"github.com/anvil-lang/anvil/objects"
)

// Global is the name of the synthetic function the parser collects all
// top-level (outside any `fun ... end`) tokens into.
const Global = "_global"

// Main is the name of the entry-point function a runnable program must
// define.
const Main = "main"

// Parameter is a single entry in a function's declared parameter list.
// It is either a name binding (Kind == lexer.UNKNOWN, Name holds the
// identifier text) or a type guard (Kind is one of TINT/TFLOAT/TSTRING/
// TBOOL, Name is unused).
type Parameter struct {
	Kind lexer.Kind
	Name string
}

// IsNameBinding reports whether this parameter binds the popped argument
// to a variable name, as opposed to merely filtering on its type.
func (p Parameter) IsNameBinding() bool {
	return p.Kind == lexer.UNKNOWN
}

// BodyToken is one entry of a function's executable body: it carries the
// lexeme Kind the interpreter dispatches on (control-flow words,
// operators, built-in/user identifiers, block markers) and, when Kind is
// one of the literal kinds, the literal's Value (so pushing it is just
// copying the token).
type BodyToken struct {
	Kind lexer.Kind
	Text string        // verbatim source text, used for operator/identifier dispatch and errors
	Lit  objects.Value // populated when Kind is a literal kind (INT/FLOAT/STRING/BOOLEAN/ARRAY/TINT/TFLOAT/TSTRING/TBOOL)
}

// Function is a named, callable body: its declared parameters (in
// call order) and its ordered body of tokens.
type Function struct {
	Name       string
	Parameters []Parameter
	Body       []BodyToken
}

// Map is the parsed program: every declared function plus the
// always-present _global entry, keyed by name.
type Map map[string]*Function

// NewMap creates a function map seeded with an empty _global entry, as
// spec.md §4.2 requires.
func NewMap() Map {
	m := make(Map)
	m[Global] = &Function{Name: Global}
	return m
}
