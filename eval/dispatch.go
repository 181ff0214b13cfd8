/*
File    : anvil/eval/dispatch.go
*/

package eval

import (
	"github.com/anvil-lang/anvil/function"
	"github.com/anvil-lang/anvil/lexer"
	"github.com/anvil-lang/anvil/objects"
	"github.com/anvil-lang/anvil/scope"
)

// blockKind tags an open block on blockStack so `end`/`else` know which
// closing rule applies.
type blockKind int

const (
	blockNone blockKind = iota // `block`/`loop` — inert, closes on plain `end`
	blockIf                    // taken `if` branch — `else` skips to `end`
	blockElse                  // taken `else` branch — only `end` matters
)

// exec runs body against frame/stack, pushing onto caller (if non-nil)
// whenever `ret` executes. inGlobal selects the `_global` assignment
// rule (spec.md §4.3.4).
func (it *Interpreter) exec(body []function.BodyToken, inGlobal bool, frame *scope.Frame, stack *Stack, caller *Stack) error {
	var blockStack []blockKind
	i, n := 0, len(body)

	for i < n {
		if len(blockStack) > 0 {
			top := blockStack[len(blockStack)-1]
			switch top {
			case blockIf:
				switch body[i].Kind {
				case lexer.ELSE:
					blockStack = blockStack[:len(blockStack)-1]
					frame.CloseBlock()
					i++
					var err error
					if i, err = skipToBalancedEnd(body, i); err != nil {
						return err
					}
					continue
				case lexer.END:
					blockStack = blockStack[:len(blockStack)-1]
					frame.CloseBlock()
					i++
					continue
				}
			case blockElse, blockNone:
				if body[i].Kind == lexer.END {
					blockStack = blockStack[:len(blockStack)-1]
					frame.CloseBlock()
					i++
					continue
				}
			}
		}

		tok := body[i]
		i++

		switch tok.Kind {
		case lexer.LINEBREAK, lexer.IMPORT:
			// no-op

		case lexer.INT, lexer.FLOAT, lexer.STRING, lexer.BOOLEAN,
			lexer.TINT, lexer.TFLOAT, lexer.TSTRING, lexer.TBOOL, lexer.ARRAY:
			stack.Push(tok.Lit)

		case lexer.PLUS:
			if err := binaryArith(stack, objects.Add); err != nil {
				return err
			}
		case lexer.MINUS:
			if err := binaryArith(stack, objects.Sub); err != nil {
				return err
			}
		case lexer.MULTIPLY:
			if err := binaryArith(stack, objects.Mul); err != nil {
				return err
			}
		case lexer.DIVIDE:
			if err := binaryArith(stack, objects.Div); err != nil {
				return err
			}
		case lexer.MOD:
			if err := binaryArith(stack, objects.Mod); err != nil {
				return err
			}

		case lexer.IS:
			second, err := stack.Pop("is")
			if err != nil {
				return err
			}
			first, err := stack.Pop("is")
			if err != nil {
				return err
			}
			stack.Push(objects.Bool(objects.MatchesGuard(first, second.Kind)))

		case lexer.EQUALS:
			second, err := stack.Pop("==")
			if err != nil {
				return err
			}
			first, err := stack.Pop("==")
			if err != nil {
				return err
			}
			stack.Push(objects.Bool(first.Equal(second)))

		case lexer.BIGGER, lexer.SMALLER, lexer.BIGGEREQUALS, lexer.SMALLEREQUALS:
			op := compareSymbol(tok.Kind)
			second, err := stack.Pop(op)
			if err != nil {
				return err
			}
			first, err := stack.Pop(op)
			if err != nil {
				return err
			}
			result, err := objects.Compare(first, second, op)
			if err != nil {
				return &RuntimeError{Message: err.Error()}
			}
			stack.Push(objects.Bool(result))

		case lexer.IF:
			var err error
			i, blockStack, err = it.runIf(body, i, stack, frame, blockStack)
			if err != nil {
				return err
			}

		case lexer.WHILE:
			var err error
			i, err = it.runWhile(body, i, inGlobal, frame, stack, caller)
			if err != nil {
				return err
			}

		case lexer.BLOCK, lexer.LOOP:
			blockStack = append(blockStack, blockNone)
			frame.OpenBlock()

		case lexer.RET:
			v, err := stack.Pop("ret")
			if err != nil {
				return err
			}
			if caller != nil {
				caller.Push(v)
			}

		case lexer.ASSIGNMENT, lexer.RETURNINGASSIGNMENT:
			var nameTok function.BodyToken
			for {
				if i >= n {
					return errf("no variable name to assign into")
				}
				nameTok = body[i]
				i++
				if nameTok.Kind != lexer.LINEBREAK {
					break
				}
			}
			if nameTok.Kind != lexer.UNKNOWN {
				return errf("%q is not a variable name", nameTok.Text)
			}
			v, err := stack.Pop("assignment")
			if err != nil {
				return err
			}
			if tok.Kind == lexer.RETURNINGASSIGNMENT {
				stack.Push(v)
			}
			frame.Bind(nameTok.Text, v, inGlobal)

		case lexer.FUNCTION:
			return errf("can't declare a function inside one")

		case lexer.UNKNOWN:
			if err := it.dispatchIdentifier(tok.Text, frame, stack); err != nil {
				return err
			}

		case lexer.END:
			return errf("stray end with no open block")

		default:
			// ARRAYBEGIN/ARRAYEND/DO and anything else reaching here is a
			// parser invariant violation, not a user-facing runtime fault.
			return errf("unexpected token %s in body", tok.Kind)
		}
	}

	return nil
}

// binaryArith pops second then first and pushes op(first, second).
func binaryArith(stack *Stack, op func(first, second objects.Value) (objects.Value, error)) error {
	second, err := stack.Pop("arithmetic")
	if err != nil {
		return err
	}
	first, err := stack.Pop("arithmetic")
	if err != nil {
		return err
	}
	v, err := op(first, second)
	if err != nil {
		return &RuntimeError{Message: err.Error()}
	}
	stack.Push(v)
	return nil
}

func compareSymbol(k lexer.Kind) string {
	switch k {
	case lexer.BIGGER:
		return ">"
	case lexer.SMALLER:
		return "<"
	case lexer.BIGGEREQUALS:
		return ">="
	case lexer.SMALLEREQUALS:
		return "<="
	default:
		return "?"
	}
}
