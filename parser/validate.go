package parser

import "github.com/anvil-lang/anvil/lexer"

// validateName enforces spec.md §4.2's name-validation rule: a function
// name must not collide with any reserved word in the symbol table, must
// start with a letter or underscore, and thereafter contain only
// letters, digits, or underscores.
func validateName(name string) error {
	if _, reserved := lexer.LookupSymbol(name); reserved {
		return errf("parser: %q can't be a reserved word", name)
	}
	for i, r := range name {
		switch {
		case i == 0 && !isAlpha(r) && r != '_':
			return errf("parser: %q first char of name is not valid", name)
		case i > 0 && !isAlpha(r) && !isDigit(r) && r != '_':
			return errf("parser: %q char at %d is not valid", name, i)
		}
	}
	return nil
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
