/*
File    : anvil/cmd/anvil/main.go
*/

// Command anvil runs the Anvil interpreter: one or more source files in
// batch mode, or an interactive REPL when invoked with none.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/anvil-lang/anvil/debug"
	"github.com/anvil-lang/anvil/eval"
	"github.com/anvil-lang/anvil/lexer"
	"github.com/anvil-lang/anvil/parser"
	"github.com/anvil-lang/anvil/repl"
	"github.com/fatih/color"
)

const (
	exitOK          = 0
	exitAssertFail  = 1
	exitParseError  = 2
	exitRuntimeFail = 3
)

func main() {
	args := os.Args[1:]

	showAST := false
	var files []string
	for _, a := range args {
		if a == "-ast" {
			showAST = true
			continue
		}
		files = append(files, a)
	}

	if len(files) == 0 {
		r := repl.NewRepl(
			"   _              _ _ \n  / \\   _ ____   _(_) |\n / _ \\ | '_ \\ \\ / / | |\n/ ___ \\| | | \\ V /| | |\n/_/   \\_\\_| |_|\\_/ |_|_|",
			"0.1.0", "anvil-lang", "----------------------------------------", "MIT", "anvil >>> ",
		)
		r.Start(os.Stdout)
		return
	}

	code := exitOK
	for _, filename := range files {
		if c := runFile(filename, showAST); c != exitOK {
			code = c
		}
	}
	os.Exit(code)
}

func runFile(filename string, showAST bool) int {
	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "anvil: %s: %v\n", filename, err)
		return exitParseError
	}

	lexed := lexer.Tokenize(string(src))
	fm, err := parser.Parse(lexed)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "anvil: %s: %v\n", filename, err)
		return exitParseError
	}

	if showAST {
		debug.PrintFunctions(os.Stdout, fm)
	}

	interp := eval.NewInterpreter(fm)
	if err := interp.Run(); err != nil {
		var assertErr *eval.AssertionFailure
		if errors.As(err, &assertErr) {
			return exitAssertFail
		}
		fmt.Fprintf(os.Stderr, "anvil: %s: %v\n", filename, err)
		return exitRuntimeFail
	}
	return exitOK
}
