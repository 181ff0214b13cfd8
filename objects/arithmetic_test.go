package objects

import (
	"testing"

	"github.com/anvil-lang/anvil/lexer"
	"github.com/stretchr/testify/assert"
)

func TestAdd_IntInt(t *testing.T) {
	v, err := Add(Int32(3), Int32(4))
	assert.NoError(t, err)
	assert.Equal(t, Int32(7), v)
}

func TestAdd_IntFloatPromotesToFloat(t *testing.T) {
	v, err := Add(Int32(3), Float64(4))
	assert.NoError(t, err)
	assert.Equal(t, Float64(7), v)
}

func TestAdd_StringConcatenation(t *testing.T) {
	v, err := Add(Str("foo"), Str("bar"))
	assert.NoError(t, err)
	assert.Equal(t, Str("foobar"), v)
}

func TestAdd_ArrayConcatenation(t *testing.T) {
	v, err := Add(Arr([]Value{Int32(1)}), Arr([]Value{Int32(2), Int32(3)}))
	assert.NoError(t, err)
	assert.Equal(t, Arr([]Value{Int32(1), Int32(2), Int32(3)}), v)
}

func TestAdd_MismatchedKindsIsAnError(t *testing.T) {
	_, err := Add(Str("x"), Int32(1))
	assert.Error(t, err)
	_, err = Add(Bool(true), Bool(false))
	assert.Error(t, err)
}

func TestSub_Mul_Div_Mod(t *testing.T) {
	v, _ := Sub(Int32(10), Int32(3))
	assert.Equal(t, Int32(7), v)

	v, _ = Mul(Float64(2.5), Int32(2))
	assert.Equal(t, Float64(5), v)

	v, _ = Div(Int32(7), Int32(2))
	assert.Equal(t, Int32(3), v)

	v, _ = Div(Float64(7), Int32(2))
	assert.Equal(t, Float64(3.5), v)

	v, _ = Mod(Int32(7), Int32(2))
	assert.Equal(t, Int32(1), v)
}

func TestCompare(t *testing.T) {
	gt, err := Compare(Int32(5), Int32(3), ">")
	assert.NoError(t, err)
	assert.True(t, gt)

	lte, err := Compare(Float64(3), Int32(3), "<=")
	assert.NoError(t, err)
	assert.True(t, lte)

	_, err = Compare(Str("a"), Int32(1), ">")
	assert.Error(t, err)
}

func TestCompare_NonNumericSecondOperandIsFalseNotFatal(t *testing.T) {
	result, err := Compare(Int32(5), Str("hi"), ">")
	assert.NoError(t, err)
	assert.False(t, result)
}

func TestMatchesGuard(t *testing.T) {
	assert.True(t, MatchesGuard(Int32(1), lexer.TINT))
	assert.False(t, MatchesGuard(Int32(1), lexer.TFLOAT))
	assert.True(t, MatchesGuard(Str("a"), lexer.TSTRING))
	assert.True(t, MatchesGuard(Bool(true), lexer.TBOOL))
}

func TestSqrt(t *testing.T) {
	v, err := Sqrt(Int32(9))
	assert.NoError(t, err)
	assert.Equal(t, Int32(3), v)

	v, err = Sqrt(Float64(2))
	assert.NoError(t, err)
	assert.InDelta(t, 1.4142135, v.Flt, 1e-6)

	_, err = Sqrt(Str("x"))
	assert.Error(t, err)
}
