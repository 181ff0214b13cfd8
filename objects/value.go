/*
File    : anvil/objects/value.go
*/

// Package objects defines the Value tagged union that flows across every
// Anvil operand stack and heap, plus its printing and equality rules.
package objects

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anvil-lang/anvil/lexer"
)

// Value is a single cell of Anvil data: either a primitive (int, float,
// string, boolean, or one of the four type-guard tags) or an array of
// Values. Kind is authoritative for dispatch; Text always reconstructs
// the exact textual form a primitive would have printed as, so callers
// never need to re-derive it.
type Value struct {
	Kind lexer.Kind

	// Primitive payload. Exactly one of these is meaningful, selected by Kind.
	Int  int32
	Flt  float64
	Str  string
	Bool bool

	// Elements holds the payload when Kind == lexer.ARRAY.
	Elements []Value
}

// Int32 constructs an INT value.
func Int32(v int32) Value { return Value{Kind: lexer.INT, Int: v} }

// Float64 constructs a FLOAT value.
func Float64(v float64) Value { return Value{Kind: lexer.FLOAT, Flt: v} }

// Str constructs a STRING value.
func Str(v string) Value { return Value{Kind: lexer.STRING, Str: v} }

// Bool constructs a BOOLEAN value.
func Bool(v bool) Value { return Value{Kind: lexer.BOOLEAN, Bool: v} }

// Arr constructs an ARRAY value from a slice of elements.
func Arr(elems []Value) Value { return Value{Kind: lexer.ARRAY, Elements: elems} }

// TypeGuard constructs a bare type-tag value (TINT/TFLOAT/TSTRING/TBOOL),
// used as a parameter descriptor or as the right-hand operand of `is`.
func TypeGuard(k lexer.Kind) Value { return Value{Kind: k} }

// FromLexeme converts a parsed literal Lexeme into its Value. lex.Kind
// must be one of INT, FLOAT, STRING, BOOLEAN, TINT, TFLOAT, TSTRING,
// TBOOL, or UNKNOWN (treated as an identifier-shaped string payload,
// used for array-literal elements).
func FromLexeme(lex lexer.Lexeme) Value {
	switch lex.Kind {
	case lexer.INT:
		n, err := strconv.ParseInt(lex.Text, 10, 32)
		if err != nil {
			panic(fmt.Sprintf("objects: %q does not parse as int32", lex.Text))
		}
		return Int32(int32(n))
	case lexer.FLOAT:
		f, err := strconv.ParseFloat(lex.Text, 64)
		if err != nil {
			panic(fmt.Sprintf("objects: %q does not parse as float64", lex.Text))
		}
		return Float64(f)
	case lexer.STRING:
		return Str(lex.Text)
	case lexer.BOOLEAN:
		return Bool(lex.Text == "true")
	case lexer.TINT, lexer.TFLOAT, lexer.TSTRING, lexer.TBOOL:
		return TypeGuard(lex.Kind)
	default:
		// identifier text (array element), kept verbatim
		return Value{Kind: lexer.UNKNOWN, Str: lex.Text}
	}
}

// IsNumeric reports whether the value is an INT or FLOAT.
func (v Value) IsNumeric() bool {
	return v.Kind == lexer.INT || v.Kind == lexer.FLOAT
}

// Text returns the exact round-trip textual form of a primitive value,
// matching spec.md §6.4's print rules for bare (non-array) values.
func (v Value) Text() string {
	switch v.Kind {
	case lexer.INT:
		return strconv.FormatInt(int64(v.Int), 10)
	case lexer.FLOAT:
		return strconv.FormatFloat(v.Flt, 'f', -1, 64)
	case lexer.STRING:
		return v.Str
	case lexer.BOOLEAN:
		if v.Bool {
			return "true"
		}
		return "false"
	case lexer.UNKNOWN:
		return v.Str
	case lexer.TINT:
		return "int"
	case lexer.TFLOAT:
		return "float"
	case lexer.TSTRING:
		return "str"
	case lexer.TBOOL:
		return "bool"
	case lexer.ARRAY:
		return v.arrayText()
	default:
		return ""
	}
}

// arrayText renders "[ e1 e2 ... ]" with string elements double-quoted
// and nested arrays recursing, per spec.md §6.4.
func (v Value) arrayText() string {
	var b strings.Builder
	b.WriteString("[ ")
	for _, e := range v.Elements {
		if e.Kind == lexer.STRING {
			b.WriteString(strconv.Quote(e.Str))
		} else {
			b.WriteString(e.Text())
		}
		b.WriteString(" ")
	}
	b.WriteString("]")
	return b.String()
}

// Equal implements Anvil's structural equality (== operator and the
// assert builtin): kind and text must match, and arrays compare
// recursively element-by-element.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	if v.Kind == lexer.ARRAY {
		if len(v.Elements) != len(o.Elements) {
			return false
		}
		for i := range v.Elements {
			if !v.Elements[i].Equal(o.Elements[i]) {
				return false
			}
		}
		return true
	}
	return v.Text() == o.Text()
}

// KindName returns a short lowercase type name for error messages, e.g.
// "int", "array" — used wherever spec.md requires the error message to
// name the offending kind.
func (v Value) KindName() string {
	switch v.Kind {
	case lexer.INT:
		return "int"
	case lexer.FLOAT:
		return "float"
	case lexer.STRING:
		return "string"
	case lexer.BOOLEAN:
		return "bool"
	case lexer.ARRAY:
		return "array"
	case lexer.TINT:
		return "type(int)"
	case lexer.TFLOAT:
		return "type(float)"
	case lexer.TSTRING:
		return "type(str)"
	case lexer.TBOOL:
		return "type(bool)"
	default:
		return "unknown"
	}
}
