// ast.go — tree reconstruction from postfix order, canonical labels and
// sub-expression collection for step-by-step display.
//
// Nodes live in an arena and refer to their children by index. The arena
// index doubles as the node's identity: it is assigned once, grows
// monotonically, and is used only as a memoization key — structural
// de-duplication for display goes through the rendered label instead.
package truthtable

import "fmt"

// NodeKind discriminates the AST node variants.
type NodeKind int

const (
	NodeVar NodeKind = iota
	NodeConst
	NodeUnary
	NodeBinary
)

// Node is one arena entry. Name is set for NodeVar, Value for NodeConst,
// Op for the two combinator kinds. Left holds the sole operand of a unary
// node; Left and Right hold a binary node's operands in source order.
type Node struct {
	Kind  NodeKind
	Name  string
	Value bool
	Op    Operator
	Left  int
	Right int
}

// AST is an arena-backed expression tree with a single root.
type AST struct {
	nodes []Node
	root  int
}

// Root returns the root node's identity.
func (a *AST) Root() int { return a.root }

// Len returns the number of nodes in the arena.
func (a *AST) Len() int { return len(a.nodes) }

// Node returns the node with the given identity.
func (a *AST) Node(id int) Node { return a.nodes[id] }

func (a *AST) push(n Node) int {
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1
}

// BuildAST reconstructs a tree from a postfix token sequence. Binary
// operators pop their right operand first, then the left, so the children
// end up in source order.
func BuildAST(postfix []Token) (*AST, error) {
	a := &AST{}
	stack := make([]int, 0, len(postfix))

	for _, tok := range postfix {
		switch tok.Type {
		case IDENT:
			stack = append(stack, a.push(Node{Kind: NodeVar, Name: tok.Lexeme}))

		case CONST:
			stack = append(stack, a.push(Node{Kind: NodeConst, Value: tok.Value}))

		case OP:
			info, ok := operators[tok.Op]
			if !ok {
				return nil, &ParseError{Pos: tok.Pos, Msg: fmt.Sprintf("unknown operator %q", tok.Lexeme)}
			}
			if len(stack) < info.arity {
				return nil, &ParseError{Pos: tok.Pos, Msg: fmt.Sprintf("operator %q is missing an operand", tok.Lexeme)}
			}
			if info.arity == 1 {
				child := stack[len(stack)-1]
				stack[len(stack)-1] = a.push(Node{Kind: NodeUnary, Op: tok.Op, Left: child})
			} else {
				right := stack[len(stack)-1]
				left := stack[len(stack)-2]
				stack = stack[:len(stack)-1]
				stack[len(stack)-1] = a.push(Node{Kind: NodeBinary, Op: tok.Op, Left: left, Right: right})
			}

		default:
			return nil, &ParseError{Pos: tok.Pos, Msg: fmt.Sprintf("unexpected token %q", tok.Lexeme)}
		}
	}

	if len(stack) != 1 {
		return nil, &ParseError{Msg: fmt.Sprintf("malformed expression: %d values left after parsing", len(stack))}
	}
	a.root = stack[0]
	return a, nil
}

// Label renders the node's canonical form. Binary nodes are always fully
// parenthesized; NOT parenthesizes its operand only when needed to
// disambiguate (a binary operand already carries its own parentheses).
// Constants render as T and F, variables as their original name.
func (a *AST) Label(id int) string {
	n := a.nodes[id]
	switch n.Kind {
	case NodeVar:
		return n.Name
	case NodeConst:
		if n.Value {
			return "T"
		}
		return "F"
	case NodeUnary:
		inner := a.Label(n.Left)
		if a.nodes[n.Left].Kind == NodeUnary {
			return n.Op.Symbol() + "(" + inner + ")"
		}
		return n.Op.Symbol() + inner
	case NodeBinary:
		return "(" + a.Label(n.Left) + " " + n.Op.Symbol() + " " + a.Label(n.Right) + ")"
	}
	return ""
}

// Step is one displayable sub-expression: a combinator node plus its
// canonical label, which becomes a column header.
type Step struct {
	Node  int
	Label string
}

// Subexpressions collects the combinator nodes in post-order (operands
// before their combinator), keeping only the first occurrence of each
// rendered label. Two syntactically identical sub-expressions share one
// column no matter how many times they appear.
func (a *AST) Subexpressions() []Step {
	seen := make(map[string]bool)
	var steps []Step

	var walk func(id int)
	walk = func(id int) {
		n := a.nodes[id]
		switch n.Kind {
		case NodeUnary:
			walk(n.Left)
		case NodeBinary:
			walk(n.Left)
			walk(n.Right)
		default:
			return
		}
		label := a.Label(id)
		if seen[label] {
			return
		}
		seen[label] = true
		steps = append(steps, Step{Node: id, Label: label})
	}
	walk(a.root)
	return steps
}
