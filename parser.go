// parser.go — shunting-yard conversion of a token sequence into postfix
// (reverse Polish) order.
//
// Unary NOT needs no special casing: it is the only arity-1 operator, and
// its right associativity plus highest precedence make it bind to the
// immediately following operand. The grammar never places NOT in infix
// position, so the unary/binary ambiguity other expression grammars fight
// with does not arise here.
package truthtable

import "fmt"

// ParseError is a structural error in the token sequence. Pos is the
// 1-based character position of the offending token, or 0 when the error
// is only detectable at end of input.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	if e.Pos > 0 {
		return fmt.Sprintf("parse error at position %d: %s", e.Pos, e.Msg)
	}
	return "parse error: " + e.Msg
}

// ToPostfix converts an infix token sequence to postfix order, validating
// parenthesis balance. Identifiers and constants pass straight through;
// operators are reordered by precedence and associativity.
func ToPostfix(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	stack := make([]Token, 0, len(tokens)/2+1)

	for _, tok := range tokens {
		switch tok.Type {
		case IDENT, CONST:
			out = append(out, tok)

		case OP:
			info, ok := operators[tok.Op]
			if !ok {
				return nil, &ParseError{Pos: tok.Pos, Msg: fmt.Sprintf("unknown operator %q", tok.Lexeme)}
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Type != OP {
					break
				}
				ti := operators[top.Op]
				if ti.prec > info.prec || (ti.prec == info.prec && info.assoc == assocLeft) {
					out = append(out, top)
					stack = stack[:len(stack)-1]
					continue
				}
				break
			}
			stack = append(stack, tok)

		case LPAREN:
			stack = append(stack, tok)

		case RPAREN:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Type == LPAREN {
					matched = true
					break
				}
				out = append(out, top)
			}
			if !matched {
				return nil, &ParseError{Pos: tok.Pos, Msg: "mismatched closing parenthesis"}
			}

		default:
			return nil, &ParseError{Pos: tok.Pos, Msg: fmt.Sprintf("unexpected token %q", tok.Lexeme)}
		}
	}

	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].Type == LPAREN {
			return nil, &ParseError{Pos: stack[i].Pos, Msg: "mismatched opening parenthesis"}
		}
		out = append(out, stack[i])
	}
	return out, nil
}
