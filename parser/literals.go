package parser

import (
	"strconv"

	"github.com/anvil-lang/anvil/lexer"
)

// retagLiterals reclassifies every UNKNOWN lexeme whose text spells a
// boolean, a 32-bit signed integer, or a 64-bit float into the matching
// literal kind, per spec.md §4.2 stage 1. Lexemes that don't match any
// of these stay UNKNOWN (plain identifiers).
func retagLiterals(lexed []lexer.Lexeme) {
	for i, lex := range lexed {
		if lex.Kind != lexer.UNKNOWN {
			continue
		}
		switch lex.Text {
		case "true", "false":
			lexed[i].Kind = lexer.BOOLEAN
			continue
		}
		if _, err := strconv.ParseInt(lex.Text, 10, 32); err == nil {
			lexed[i].Kind = lexer.INT
			continue
		}
		if _, err := strconv.ParseFloat(lex.Text, 64); err == nil {
			lexed[i].Kind = lexer.FLOAT
		}
	}
}
