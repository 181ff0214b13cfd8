package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenizeCase struct {
	Input    string
	Expected []Lexeme
}

func TestTokenize(t *testing.T) {
	tests := []tokenizeCase{
		{
			Input: "3 4 + print",
			Expected: []Lexeme{
				{Kind: UNKNOWN, Text: "3"},
				{Kind: UNKNOWN, Text: "4"},
				{Kind: PLUS, Text: "+"},
				{Kind: UNKNOWN, Text: "print"},
			},
		},
		{
			Input: "= => == > >= < <=",
			Expected: []Lexeme{
				{Kind: ASSIGNMENT, Text: "="},
				{Kind: RETURNINGASSIGNMENT, Text: "=>"},
				{Kind: EQUALS, Text: "=="},
				{Kind: BIGGER, Text: ">"},
				{Kind: BIGGEREQUALS, Text: ">="},
				{Kind: SMALLER, Text: "<"},
				{Kind: SMALLEREQUALS, Text: "<="},
			},
		},
		{
			Input: `"hi there" 'it''s'`,
			Expected: []Lexeme{
				{Kind: STRING, Text: "hi there"},
				{Kind: STRING, Text: "it"},
				{Kind: STRING, Text: "s"},
			},
		},
		{
			Input: "[ 1 2 3 ]",
			Expected: []Lexeme{
				{Kind: ARRAYBEGIN, Text: "["},
				{Kind: UNKNOWN, Text: "1"},
				{Kind: UNKNOWN, Text: "2"},
				{Kind: UNKNOWN, Text: "3"},
				{Kind: ARRAYEND, Text: "]"},
			},
		},
		{
			// A line break is emitted before the word pending at the time
			// it's seen is flushed, so LINEBREAK precedes the keyword it
			// trails in source order; this matches the reference lexer.
			Input: "fun sq x as\nx x *\nret end",
			Expected: []Lexeme{
				{Kind: FUNCTION, Text: "fun"},
				{Kind: UNKNOWN, Text: "sq"},
				{Kind: UNKNOWN, Text: "x"},
				{Kind: LINEBREAK, Text: "\n"},
				{Kind: AS, Text: "as"},
				{Kind: UNKNOWN, Text: "x"},
				{Kind: UNKNOWN, Text: "x"},
				{Kind: LINEBREAK, Text: "\n"},
				{Kind: MULTIPLY, Text: "*"},
				{Kind: RET, Text: "ret"},
				{Kind: END, Text: "end"},
			},
		},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.Expected, Tokenize(tc.Input), "input: %q", tc.Input)
	}
}

func TestTokenize_QuoteFlushesPendingWordAsUnknown(t *testing.T) {
	// "is" would normally lex as IS, but a quote opening mid-word always
	// flushes the pending buffer as UNKNOWN, matching the reference lexer.
	got := Tokenize(`is"x"`)
	assert.Equal(t, []Lexeme{
		{Kind: UNKNOWN, Text: "is"},
		{Kind: STRING, Text: "x"},
	}, got)
}

func TestTokenize_SymbolCharFlushesPendingWordAsUnknown(t *testing.T) {
	// "is" would normally lex as IS, but a symbol character starting mid-word
	// always flushes the pending buffer as UNKNOWN, never reclassified.
	// The plain 'x' that follows is appended to the '=' buffer, so the
	// run "=x" is flushed at end of input as one UNKNOWN word.
	got := Tokenize("is=x")
	assert.Equal(t, []Lexeme{
		{Kind: UNKNOWN, Text: "is"},
		{Kind: UNKNOWN, Text: "=x"},
	}, got)
}

func TestLookupSymbol(t *testing.T) {
	k, ok := LookupSymbol("while")
	assert.True(t, ok)
	assert.Equal(t, WHILE, k)

	_, ok = LookupSymbol("notasymbol")
	assert.False(t, ok)
}
