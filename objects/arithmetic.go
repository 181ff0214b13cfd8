package objects

import (
	"fmt"
	"math"

	"github.com/anvil-lang/anvil/lexer"
)

// ArithError reports that an arithmetic or comparison operator was
// applied to a pair of values it cannot combine. Matches spec.md §7's
// "interpreter type errors" category.
type ArithError struct {
	Op   string
	From Value
	To   Value
}

func (e *ArithError) Error() string {
	return fmt.Sprintf("%q and %q can't be used with %s", e.From.KindName(), e.To.KindName(), e.Op)
}

// Add implements the `+` operator: string concatenation, element-wise
// array concatenation (first's elements then second's), and numeric
// addition with int/float promotion (spec.md §4.3.1).
func Add(first, second Value) (Value, error) {
	switch first.Kind {
	case lexer.ARRAY:
		if second.Kind != lexer.ARRAY {
			return Value{}, &ArithError{"+", first, second}
		}
		merged := make([]Value, 0, len(first.Elements)+len(second.Elements))
		merged = append(merged, first.Elements...)
		merged = append(merged, second.Elements...)
		return Arr(merged), nil
	case lexer.STRING:
		if second.Kind != lexer.STRING {
			return Value{}, &ArithError{"+", first, second}
		}
		return Str(first.Str + second.Str), nil
	default:
		return numericOp(first, second, "+",
			func(a, b int32) int32 { return a + b },
			func(a, b float64) float64 { return a + b },
		)
	}
}

// Sub implements `-` (numeric only).
func Sub(first, second Value) (Value, error) {
	return numericOp(first, second, "-",
		func(a, b int32) int32 { return a - b },
		func(a, b float64) float64 { return a - b },
	)
}

// Mul implements `*` (numeric only).
func Mul(first, second Value) (Value, error) {
	return numericOp(first, second, "*",
		func(a, b int32) int32 { return a * b },
		func(a, b float64) float64 { return a * b },
	)
}

// Div implements `/` (numeric only); int/int is truncating integer
// division, any float operand promotes to float division.
func Div(first, second Value) (Value, error) {
	return numericOp(first, second, "/",
		func(a, b int32) int32 { return a / b },
		func(a, b float64) float64 { return a / b },
	)
}

// Mod implements `%` (numeric only), following the same promotion rule.
func Mod(first, second Value) (Value, error) {
	return numericOp(first, second, "%",
		func(a, b int32) int32 { return a % b },
		func(a, b float64) float64 { return math.Mod(a, b) },
	)
}

// numericOp applies intOp when both operands are INT, otherwise promotes
// both to float64 and applies floatOp, per spec.md §4.3.1.
func numericOp(first, second Value, op string, intOp func(a, b int32) int32, floatOp func(a, b float64) float64) (Value, error) {
	if !first.IsNumeric() {
		return Value{}, &ArithError{op, first, second}
	}
	switch {
	case first.Kind == lexer.INT && second.Kind == lexer.INT:
		return Int32(intOp(first.Int, second.Int)), nil
	case first.Kind == lexer.INT && second.Kind == lexer.FLOAT:
		return Float64(floatOp(float64(first.Int), second.Flt)), nil
	case first.Kind == lexer.FLOAT && second.Kind == lexer.INT:
		return Float64(floatOp(first.Flt, float64(second.Int))), nil
	case first.Kind == lexer.FLOAT && second.Kind == lexer.FLOAT:
		return Float64(floatOp(first.Flt, second.Flt)), nil
	default:
		return Value{}, &ArithError{op, first, second}
	}
}

// asFloat64 widens a numeric value for comparison.
func asFloat64(v Value) float64 {
	if v.Kind == lexer.INT {
		return float64(v.Int)
	}
	return v.Flt
}

// Compare implements `>`, `<`, `>=`, `<=` with int/float promotion.
// It errors if first is not numeric, matching spec.md §4.3.1
// ("fatal on non-numeric first operand"); a non-numeric second operand
// is not fatal and simply compares false.
func Compare(first, second Value, op string) (bool, error) {
	if !first.IsNumeric() {
		return false, &ArithError{op, first, second}
	}
	if !second.IsNumeric() {
		return false, nil
	}
	a, b := asFloat64(first), asFloat64(second)
	switch op {
	case ">":
		return a > b, nil
	case "<":
		return a < b, nil
	case ">=":
		return a >= b, nil
	case "<=":
		return a <= b, nil
	default:
		return false, fmt.Errorf("objects: unknown comparison %q", op)
	}
}

// MatchesGuard reports whether value's kind satisfies the type-guard tag
// guard (TINT/TFLOAT/TSTRING/TBOOL), per the `is` operator and parameter
// type-guard filtering rules of spec.md §4.3 / §4.3.2.
func MatchesGuard(value Value, guard lexer.Kind) bool {
	switch guard {
	case lexer.TINT:
		return value.Kind == lexer.INT
	case lexer.TFLOAT:
		return value.Kind == lexer.FLOAT
	case lexer.TSTRING:
		return value.Kind == lexer.STRING
	case lexer.TBOOL:
		return value.Kind == lexer.BOOLEAN
	default:
		return false
	}
}

// Sqrt implements the `sqrt` builtin: INT -> floor(sqrt(x)) as INT,
// FLOAT -> sqrt(x) as FLOAT.
func Sqrt(v Value) (Value, error) {
	switch v.Kind {
	case lexer.INT:
		return Int32(int32(math.Sqrt(float64(v.Int)))), nil
	case lexer.FLOAT:
		return Float64(math.Sqrt(v.Flt)), nil
	default:
		return Value{}, fmt.Errorf("can't take the square root of %s", v.KindName())
	}
}
