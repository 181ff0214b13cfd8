/*
File    : anvil/eval/control.go
*/

package eval

import (
	"github.com/anvil-lang/anvil/function"
	"github.com/anvil-lang/anvil/lexer"
	"github.com/anvil-lang/anvil/scope"
)

// runIf executes `if`'s token, popping the condition waiting on top of
// stack. It returns the advanced body cursor and block stack.
func (it *Interpreter) runIf(body []function.BodyToken, i int, stack *Stack, frame *scope.Frame, blockStack []blockKind) (int, []blockKind, error) {
	cond, err := stack.Pop("if")
	if err != nil {
		return i, blockStack, err
	}
	if cond.Kind != lexer.BOOLEAN {
		return i, blockStack, errf("condition %s is not the type boolean", cond.KindName())
	}

	if cond.Bool {
		blockStack = append(blockStack, blockIf)
		frame.OpenBlock()
		return i, blockStack, nil
	}

	n := len(body)
	depth := 0
	for {
		if i >= n {
			return i, blockStack, errf("'end' missing for the if statement")
		}
		t := body[i]
		i++
		switch t.Kind {
		case lexer.IF, lexer.WHILE:
			depth++
		case lexer.END:
			if depth == 0 {
				return i, blockStack, nil
			}
			depth--
		case lexer.ELSE:
			if depth == 0 {
				blockStack = append(blockStack, blockElse)
				frame.OpenBlock()
				return i, blockStack, nil
			}
		}
	}
}

// skipToBalancedEnd advances past tokens until a balanced `end`, used
// once an `if` block taken on a true condition later reaches its `else`
// (the alternative branch must be skipped entirely).
func skipToBalancedEnd(body []function.BodyToken, i int) (int, error) {
	n := len(body)
	depth := 0
	for {
		if i >= n {
			return i, errf("'end' missing for the if statement")
		}
		t := body[i]
		i++
		switch t.Kind {
		case lexer.IF, lexer.WHILE:
			depth++
		case lexer.END:
			if depth == 0 {
				return i, nil
			}
			depth--
		}
	}
}

// runWhile pre-scans the condition body (up to a balanced `do`) and the
// loop body (up to a balanced `end`), then repeatedly executes the
// condition as a sub-call; while it yields boolean true, it executes the
// loop body as a sub-call and splices the resulting stack back onto
// stack, per spec.md §4.3's dispatch table entry for `while`. caller is
// threaded through to both sub-calls unchanged, so a `ret` inside either
// still pushes onto the enclosing function's actual caller.
func (it *Interpreter) runWhile(body []function.BodyToken, i int, inGlobal bool, frame *scope.Frame, stack *Stack, caller *Stack) (int, error) {
	n := len(body)

	var cond []function.BodyToken
	depth := 0
	for {
		if i >= n {
			return i, errf("'do' missing for the while statement")
		}
		t := body[i]
		i++
		if t.Kind == lexer.DO && depth == 0 {
			break
		}
		switch t.Kind {
		case lexer.IF, lexer.WHILE:
			depth++
		case lexer.END:
			depth--
		}
		cond = append(cond, t)
	}

	var loopBody []function.BodyToken
	depth = 0
	for {
		if i >= n {
			return i, errf("'end' missing for the while ... do statement")
		}
		t := body[i]
		i++
		if t.Kind == lexer.END && depth == 0 {
			break
		}
		switch t.Kind {
		case lexer.IF, lexer.WHILE:
			depth++
		case lexer.END:
			depth--
		}
		loopBody = append(loopBody, t)
	}

	for {
		condStack := &Stack{}
		if err := it.exec(cond, inGlobal, frame, condStack, caller); err != nil {
			return i, err
		}
		result, err := condStack.Pop("while condition")
		if err != nil {
			return i, err
		}
		if result.Kind != lexer.BOOLEAN || !result.Bool {
			break
		}

		doStack := &Stack{}
		if err := it.exec(loopBody, inGlobal, frame, doStack, caller); err != nil {
			return i, err
		}
		for !doStack.Empty() {
			v, err := doStack.Pop("while body splice")
			if err != nil {
				return i, err
			}
			stack.Push(v)
		}
	}

	return i, nil
}
