package debug

import (
	"bytes"
	"testing"

	"github.com/anvil-lang/anvil/lexer"
	"github.com/anvil-lang/anvil/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintFunctions_WritesEachDeclaredName(t *testing.T) {
	fm, err := parser.Parse(lexer.Tokenize("fun sq x as x x * ret end"))
	require.NoError(t, err)

	var out bytes.Buffer
	PrintFunctions(&out, fm)

	text := out.String()
	assert.Contains(t, text, "sq")
	assert.Contains(t, text, "_global")
}
