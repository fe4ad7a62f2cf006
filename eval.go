// eval.go — the two evaluation strategies.
//
// EvalPostfix is the fast path used for the final result column: a plain
// stack machine over the postfix sequence. EvalNode is the memoized
// per-node walk used when intermediate sub-expression values are displayed;
// the cache is keyed by node identity and is only valid for one variable
// assignment. Both strategies agree on every result.
package truthtable

import "fmt"

// Assignment maps variable names to boolean values, one per table row.
type Assignment map[string]bool

// EvalError is an evaluation failure: an unbound variable or a malformed
// stack. Given a validated postfix sequence and a bound assignment the
// stack cases are unreachable.
type EvalError struct {
	Msg string
}

func (e *EvalError) Error() string { return "eval error: " + e.Msg }

func unboundVariable(name string) error {
	return &EvalError{Msg: fmt.Sprintf("unbound variable %q", name)}
}

// EvalPostfix evaluates a postfix token sequence under the given
// assignment. The right operand of a binary operator is popped first.
func EvalPostfix(postfix []Token, assign Assignment) (bool, error) {
	stack := make([]bool, 0, len(postfix))

	for _, tok := range postfix {
		switch tok.Type {
		case IDENT:
			v, ok := assign[tok.Lexeme]
			if !ok {
				return false, unboundVariable(tok.Lexeme)
			}
			stack = append(stack, v)

		case CONST:
			stack = append(stack, tok.Value)

		case OP:
			info, ok := operators[tok.Op]
			if !ok {
				return false, &EvalError{Msg: fmt.Sprintf("unknown operator %q", tok.Lexeme)}
			}
			if len(stack) < info.arity {
				return false, &EvalError{Msg: fmt.Sprintf("operator %q is missing an operand", tok.Lexeme)}
			}
			if info.arity == 1 {
				stack[len(stack)-1] = tok.Op.apply(stack[len(stack)-1], false)
			} else {
				right := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				stack[len(stack)-1] = tok.Op.apply(stack[len(stack)-1], right)
			}

		default:
			return false, &EvalError{Msg: fmt.Sprintf("unexpected token %q", tok.Lexeme)}
		}
	}

	if len(stack) != 1 {
		return false, &EvalError{Msg: fmt.Sprintf("malformed expression: %d values left on the stack", len(stack))}
	}
	return stack[0], nil
}

// EvalNode evaluates the node with the given identity under assign,
// memoizing through cache. The cache is scoped to a single assignment:
// callers evaluating several steps of one row share it, and discard it
// before the next row. A nil cache disables memoization.
func (a *AST) EvalNode(id int, assign Assignment, cache map[int]bool) (bool, error) {
	if v, ok := cache[id]; ok {
		return v, nil
	}

	n := a.nodes[id]
	var v bool
	switch n.Kind {
	case NodeVar:
		val, ok := assign[n.Name]
		if !ok {
			return false, unboundVariable(n.Name)
		}
		v = val

	case NodeConst:
		v = n.Value

	case NodeUnary:
		x, err := a.EvalNode(n.Left, assign, cache)
		if err != nil {
			return false, err
		}
		v = n.Op.apply(x, false)

	case NodeBinary:
		left, err := a.EvalNode(n.Left, assign, cache)
		if err != nil {
			return false, err
		}
		right, err := a.EvalNode(n.Right, assign, cache)
		if err != nil {
			return false, err
		}
		v = n.Op.apply(left, right)
	}

	if cache != nil {
		cache[id] = v
	}
	return v, nil
}
