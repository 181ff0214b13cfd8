/*
File    : anvil/repl/repl.go

Package repl implements the Read-Eval-Print Loop for Anvil. Each line the
user types is lexed and parsed as its own `_global` fragment and run
against a persistent interpreter, so variables assigned on one line (they
land in the global heap, per spec.md §4.3.4's `_global` assignment rule)
are visible on the next. Function declarations typed at the prompt are
added to the session's function map and stay callable for the rest of
the session.
*/
package repl

import (
	"io"
	"strings"

	"github.com/anvil-lang/anvil/eval"
	"github.com/anvil-lang/anvil/function"
	"github.com/anvil-lang/anvil/lexer"
	"github.com/anvil-lang/anvil/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive Anvil session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates a Repl with the given banner/version/prompt furniture.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Anvil!")
	cyanColor.Fprintf(writer, "%s\n", "Type a line of Anvil and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL's main loop against writer until the user exits.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	interp := eval.NewInterpreter(function.NewMap())
	interp.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		rl.SaveHistory(line)

		r.evalLine(writer, line, interp)
	}
}

func (r *Repl) evalLine(writer io.Writer, line string, interp *eval.Interpreter) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[runtime error] %v\n", recovered)
		}
	}()

	lexed := lexer.Tokenize(line + "\n")
	fm, err := parser.Parse(lexed)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	for name, fn := range fm {
		if name == function.Global {
			continue
		}
		interp.Functions[name] = fn
	}

	remaining, err := interp.RunGlobalBody(fm[function.Global].Body)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}
	for _, v := range remaining {
		yellowColor.Fprintf(writer, "=> %s\n", v.Text())
	}
}
