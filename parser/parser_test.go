package parser

import (
	"testing"

	"github.com/anvil-lang/anvil/function"
	"github.com/anvil-lang/anvil/lexer"
	"github.com/stretchr/testify/assert"
)

func kinds(toks []function.BodyToken) []lexer.Kind {
	out := make([]lexer.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestParse_GlobalBodyCollectsTopLevelTokens(t *testing.T) {
	fm, err := Parse(lexer.Tokenize("3 4 + print"))
	assert.NoError(t, err)
	g := fm[function.Global]
	assert.Equal(t, []lexer.Kind{lexer.INT, lexer.INT, lexer.PLUS, lexer.UNKNOWN}, kinds(g.Body))
}

func TestParse_FunctionDeclarationWithNameBindingParameter(t *testing.T) {
	fm, err := Parse(lexer.Tokenize("fun sq x as x x * ret end"))
	assert.NoError(t, err)

	sq, ok := fm["sq"]
	assert.True(t, ok)
	assert.Len(t, sq.Parameters, 1)
	assert.True(t, sq.Parameters[0].IsNameBinding())
	assert.Equal(t, "x", sq.Parameters[0].Name)
	assert.Equal(t, []lexer.Kind{lexer.UNKNOWN, lexer.UNKNOWN, lexer.MULTIPLY, lexer.RET}, kinds(sq.Body))
}

func TestParse_FunctionDeclarationWithTypeGuardParameter(t *testing.T) {
	fm, err := Parse(lexer.Tokenize("fun identity int as ret end"))
	assert.NoError(t, err)

	fn := fm["identity"]
	assert.Len(t, fn.Parameters, 1)
	assert.False(t, fn.Parameters[0].IsNameBinding())
	assert.Equal(t, lexer.TINT, fn.Parameters[0].Kind)
}

func TestParse_ArrayLiteralGathersAsOneToken(t *testing.T) {
	fm, err := Parse(lexer.Tokenize("[ 1 2 3 ] print"))
	assert.NoError(t, err)

	g := fm[function.Global]
	assert.Len(t, g.Body, 2)
	assert.Equal(t, lexer.ARRAY, g.Body[0].Kind)
	assert.Len(t, g.Body[0].Lit.Elements, 3)
	assert.Equal(t, int32(1), g.Body[0].Lit.Elements[0].Int)
}

func TestParse_BlockDepthKeepsInnerEndButClosesFunctionAtZero(t *testing.T) {
	fm, err := Parse(lexer.Tokenize("fun f as if true block end end ret end"))
	assert.NoError(t, err)
	f, ok := fm["f"]
	assert.True(t, ok)
	// the 'end's closing 'block' and 'if' stay in the body; the final 'end' closes f.
	assert.Equal(t, []lexer.Kind{lexer.IF, lexer.BOOLEAN, lexer.BLOCK, lexer.END, lexer.END, lexer.RET}, kinds(f.Body))
}

func TestParse_StrayEndOutsideFunctionIsAnError(t *testing.T) {
	_, err := Parse(lexer.Tokenize("3 end"))
	assert.Error(t, err)
}

func TestParse_NestedFunctionDeclarationIsAnError(t *testing.T) {
	_, err := Parse(lexer.Tokenize("fun f as fun g as ret end ret end"))
	assert.Error(t, err)
}

func TestParse_ReservedWordFunctionNameIsAnError(t *testing.T) {
	_, err := Parse(lexer.Tokenize("fun if as ret end"))
	assert.Error(t, err)
}

func TestRetagLiterals(t *testing.T) {
	lexed := lexer.Tokenize("true false 42 3.5 hello")
	retagLiterals(lexed)
	assert.Equal(t, lexer.BOOLEAN, lexed[0].Kind)
	assert.Equal(t, lexer.BOOLEAN, lexed[1].Kind)
	assert.Equal(t, lexer.INT, lexed[2].Kind)
	assert.Equal(t, lexer.FLOAT, lexed[3].Kind)
	assert.Equal(t, lexer.UNKNOWN, lexed[4].Kind)
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, validateName("sq"))
	assert.NoError(t, validateName("_helper2"))
	assert.Error(t, validateName("if"))
	assert.Error(t, validateName("2bad"))
}
