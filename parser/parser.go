/*
File    : anvil/parser/parser.go
*/

// Package parser turns a lexeme stream into a function.Map: the named
// bodies the interpreter executes. See spec.md §4.2 for the staged
// algorithm this file implements.
package parser

import (
	"github.com/anvil-lang/anvil/function"
	"github.com/anvil-lang/anvil/lexer"
	"github.com/anvil-lang/anvil/objects"
)

// Parse classifies literal lexemes, then scans the stream once,
// collecting tokens into the named function they belong to (or the
// synthetic `_global` function for anything outside a `fun ... end`),
// gathering bracketed array literals into single ARRAY body tokens and
// tracking block nesting so an inner `end` stays in the body while the
// `end` that closes the function itself does not.
func Parse(lexed []lexer.Lexeme) (function.Map, error) {
	cp := make([]lexer.Lexeme, len(lexed))
	copy(cp, lexed)
	retagLiterals(cp)

	fm := function.NewMap()
	fname := ""   // "" means outside any function, i.e. writing to _global
	blockDepth := 0
	insideArray := false
	var arrayElems []objects.Value

	activeFunc := func() (*function.Function, error) {
		name := fname
		if name == "" {
			name = function.Global
		}
		fn, ok := fm[name]
		if !ok {
			return nil, errf("parser: the function %s is not declared", name)
		}
		return fn, nil
	}

	push := func(lex lexer.Lexeme) error {
		fn, err := activeFunc()
		if err != nil {
			return err
		}
		fn.Body = append(fn.Body, bodyToken(lex))
		return nil
	}

	i, n := 0, len(cp)
	next := func() (lexer.Lexeme, bool) {
		if i >= n {
			return lexer.Lexeme{}, false
		}
		l := cp[i]
		i++
		return l, true
	}

	for i < n {
		lex := cp[i]
		i++

		// Array literal gathering. A second '[' seen while already
		// inside an array is undefined by spec; per spec.md §9 it is
		// treated as a plain value, not a nesting trigger.
		if insideArray {
			if lex.Kind == lexer.ARRAYEND {
				insideArray = false
				fn, err := activeFunc()
				if err != nil {
					return nil, err
				}
				fn.Body = append(fn.Body, function.BodyToken{
					Kind: lexer.ARRAY,
					Text: "[ ... ]",
					Lit:  objects.Arr(arrayElems),
				})
				arrayElems = nil
				continue
			}
			arrayElems = append(arrayElems, objects.FromLexeme(lex))
			continue
		}
		if lex.Kind == lexer.ARRAYBEGIN {
			insideArray = true
			arrayElems = nil
			continue
		}

		if fname != "" {
			// Inside a function body.
			switch lex.Kind {
			case lexer.FUNCTION:
				next, _ := next()
				return nil, errf("parser: can't declare a function inside one\n %s inside %s", next.Text, fname)
			case lexer.END:
				if blockDepth > 0 {
					blockDepth--
					if err := push(lex); err != nil {
						return nil, err
					}
				} else {
					fname = ""
				}
			case lexer.WHILE, lexer.IF, lexer.BLOCK, lexer.LOOP:
				blockDepth++
				if err := push(lex); err != nil {
					return nil, err
				}
			default:
				if err := push(lex); err != nil {
					return nil, err
				}
			}
			continue
		}

		// Outside any function (writing into _global).
		switch lex.Kind {
		case lexer.FUNCTION:
			nameLex, ok := next()
			if !ok || nameLex.Kind != lexer.UNKNOWN {
				return nil, errf("parser: function name is not a valid identifier")
			}
			newName := nameLex.Text
			if err := validateName(newName); err != nil {
				return nil, err
			}

			var params []function.Parameter
			for {
				p, ok := next()
				if !ok {
					return nil, errf("parser: unexpected end of input in parameter list of %s", newName)
				}
				if p.Kind == lexer.AS {
					break
				}
				switch p.Kind {
				case lexer.UNKNOWN:
					params = append(params, function.Parameter{Kind: lexer.UNKNOWN, Name: p.Text})
				case lexer.TINT, lexer.TFLOAT, lexer.TSTRING, lexer.TBOOL:
					params = append(params, function.Parameter{Kind: p.Kind})
				default:
					return nil, errf("parser: %q is not a valid parameter in %s", p.Text, newName)
				}
			}

			fm[newName] = &function.Function{Name: newName, Parameters: params}
			fname = newName
		case lexer.END:
			return nil, errf("parser: too many ends")
		default:
			if err := push(lex); err != nil {
				return nil, err
			}
		}
	}

	return fm, nil
}

// bodyToken converts one lexeme into its function.BodyToken form,
// attaching a literal Value when the lexeme's kind carries one.
func bodyToken(lex lexer.Lexeme) function.BodyToken {
	tok := function.BodyToken{Kind: lex.Kind, Text: lex.Text}
	switch lex.Kind {
	case lexer.INT, lexer.FLOAT, lexer.STRING, lexer.BOOLEAN,
		lexer.TINT, lexer.TFLOAT, lexer.TSTRING, lexer.TBOOL:
		tok.Lit = objects.FromLexeme(lex)
	}
	return tok
}
