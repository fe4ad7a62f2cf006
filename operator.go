// operator.go — the fixed registry of boolean connectives.
//
// The registry is built once at init and never written afterwards, so it is
// safe to share across concurrent table generations. Truth functions live in
// a single exhaustive switch (apply) rather than function-valued fields, so
// adding an operator without a truth function fails loudly at review time.
package truthtable

// Operator identifies one of the six supported boolean connectives.
type Operator int

const (
	NOT Operator = iota
	AND
	XOR
	OR
	IMP // material implication
	IFF // biconditional
)

type associativity int

const (
	assocLeft associativity = iota
	assocRight
)

// opInfo is the immutable metadata consulted by the parser, the AST
// renderer and both evaluators.
type opInfo struct {
	symbol string // canonical surface form used when rendering labels
	arity  int
	prec   int // higher binds tighter
	assoc  associativity
}

// operators is the process-wide operator registry.
var operators = map[Operator]opInfo{
	NOT: {symbol: "!", arity: 1, prec: 5, assoc: assocRight},
	AND: {symbol: "&", arity: 2, prec: 4, assoc: assocLeft},
	XOR: {symbol: "^", arity: 2, prec: 3, assoc: assocLeft},
	OR:  {symbol: "|", arity: 2, prec: 2, assoc: assocLeft},
	IMP: {symbol: "->", arity: 2, prec: 1, assoc: assocRight},
	IFF: {symbol: "<->", arity: 2, prec: 0, assoc: assocLeft},
}

// apply evaluates the operator's truth function. Unary operators take their
// operand in a; b is ignored.
func (op Operator) apply(a, b bool) bool {
	switch op {
	case NOT:
		return !a
	case AND:
		return a && b
	case XOR:
		return a != b
	case OR:
		return a || b
	case IMP:
		return !a || b
	case IFF:
		return a == b
	}
	return false
}

// Symbol returns the canonical surface form of the operator.
func (op Operator) Symbol() string { return operators[op].symbol }
