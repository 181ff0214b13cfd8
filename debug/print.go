/*
File    : anvil/debug/print.go
*/

// Package debug pretty-prints a parsed function.Map for inspection. It
// has no semantic effect on interpretation; it is an optional aid
// enabled by the CLI's -ast flag.
package debug

import (
	"fmt"
	"io"

	"github.com/anvil-lang/anvil/function"
	"github.com/anvil-lang/anvil/lexer"
	"github.com/fatih/color"
)

var (
	keywordColor = color.New(color.FgMagenta)
	operatorColor = color.New(color.FgRed)
	stringColor   = color.New(color.FgGreen)
	boolColor     = color.New(color.FgHiBlue)
	numberColor   = color.New(color.FgYellow)
	typeColor     = color.New(color.FgHiMagenta)
	identColor    = color.New(color.FgBlue)
	nameColor     = color.New(color.FgRed, color.Bold)
)

// PrintFunctions writes a colorized rendering of every function in fm to
// w, one per line-block, in the style of the reference interpreter's
// debug dump.
func PrintFunctions(w io.Writer, fm function.Map) {
	for name, fn := range fm {
		PrintFunction(w, name, fn)
	}
}

// PrintFunction writes one function's name and body tokens to w.
func PrintFunction(w io.Writer, name string, fn *function.Function) {
	nameColor.Fprintf(w, "%s: \n", name)
	for _, tok := range fn.Body {
		printToken(w, tok)
	}
	fmt.Fprintln(w)
}

func printToken(w io.Writer, tok function.BodyToken) {
	switch tok.Kind {
	case lexer.WHILE, lexer.DO, lexer.IF, lexer.BLOCK, lexer.ELSE,
		lexer.FUNCTION, lexer.IMPORT, lexer.END, lexer.AS, lexer.RET,
		lexer.ASSIGNMENT, lexer.RETURNINGASSIGNMENT, lexer.ARRAY, lexer.LOOP:
		keywordColor.Fprintf(w, "%s ", tok.Text)
	case lexer.PLUS, lexer.MINUS, lexer.MULTIPLY, lexer.DIVIDE, lexer.MOD,
		lexer.EQUALS, lexer.BIGGER, lexer.SMALLER, lexer.BIGGEREQUALS,
		lexer.SMALLEREQUALS, lexer.IS:
		operatorColor.Fprintf(w, "%s ", tok.Text)
	case lexer.ARRAYBEGIN:
		fmt.Fprint(w, "[ ")
	case lexer.ARRAYEND:
		fmt.Fprint(w, "] ")
	case lexer.STRING:
		stringColor.Fprintf(w, "%q ", tok.Text)
	case lexer.BOOLEAN:
		boolColor.Fprintf(w, "%s ", tok.Text)
	case lexer.INT, lexer.FLOAT:
		numberColor.Fprintf(w, "%s ", tok.Text)
	case lexer.TINT, lexer.TFLOAT, lexer.TSTRING, lexer.TBOOL, lexer.TARRAY:
		typeColor.Fprintf(w, "%s ", tok.Text)
	case lexer.LINEBREAK:
		fmt.Fprint(w, "\n\t")
	case lexer.UNKNOWN:
		identColor.Fprintf(w, "%s ", tok.Text)
	default:
		fmt.Fprintf(w, "%s ", tok.Text)
	}
}
