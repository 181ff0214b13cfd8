package lexer

import (
	"strings"
	"unicode"
)

// Tokenize scans src in a single pass and returns the flat, ordered
// sequence of Lexemes it contains. It never fails: any run of characters
// that is neither whitespace, a quote, nor part of a known symbol becomes
// an UNKNOWN lexeme (an identifier candidate for the parser).
//
// The algorithm keeps a pending word buffer and a string-mode quote rune,
// exactly mirroring the reference scanner: symbols are resolved by
// longest match against the buffer, quotes open/close string literals
// verbatim (no escapes, the opening quote style is the sole terminator),
// and '\n' always emits a dedicated LINEBREAK lexeme in addition to
// flushing whatever was pending.
func Tokenize(src string) []Lexeme {
	var out []Lexeme
	var word strings.Builder
	var stringQuote rune
	inString := false

	flushWord := func() {
		if word.Len() == 0 {
			return
		}
		text := word.String()
		if k, ok := lookupSymbol(text); ok {
			out = append(out, Lexeme{Kind: k, Text: text})
		} else {
			out = append(out, Lexeme{Kind: UNKNOWN, Text: text})
		}
		word.Reset()
	}

	flushWordAsUnknown := func() {
		if word.Len() == 0 {
			return
		}
		out = append(out, Lexeme{Kind: UNKNOWN, Text: word.String()})
		word.Reset()
	}

	for _, r := range src {
		if inString {
			if r == stringQuote {
				out = append(out, Lexeme{Kind: STRING, Text: word.String()})
				word.Reset()
				inString = false
			} else {
				word.WriteRune(r)
			}
			continue
		}

		if r == '"' || r == '\'' {
			// A pending word is flushed verbatim as UNKNOWN here (not
			// reclassified against the symbol table) even if it happens
			// to spell a keyword: opening a quote always starts a fresh
			// string, so whatever came before it was plainly an
			// identifier-shaped run, per the reference scanner.
			flushWordAsUnknown()
			inString = true
			stringQuote = r
			continue
		}

		// Longest-match: if the pending buffer is already a known symbol
		// and buffer+r is also a known symbol, prefer the longer match.
		if _, isSym := lookupSymbol(word.String()); isSym {
			candidate := word.String() + string(r)
			if k, ok := lookupSymbol(candidate); ok {
				out = append(out, Lexeme{Kind: k, Text: candidate})
				word.Reset()
				continue
			}
		}

		if _, ok := lookupSymbol(string(r)); ok {
			// A symbol character always starts a fresh symbol lexeme, so
			// whatever was pending is plainly an identifier-shaped run,
			// never reclassified against the symbol table even if it
			// happens to spell a keyword (spec.md §4.1).
			flushWordAsUnknown()
			word.WriteRune(r)
			continue
		}

		if r == '\n' {
			out = append(out, Lexeme{Kind: LINEBREAK, Text: "\n"})
			flushWord()
			continue
		}
		if r == '\r' || r == '\t' || unicode.IsSpace(r) {
			flushWord()
			continue
		}

		word.WriteRune(r)
	}

	flushWord()
	return out
}
