// table.go — variable collection, row enumeration and the Generate
// pipeline tying the front end together.
package truthtable

import (
	"fmt"
	"sort"
)

// DefaultMaxVariables bounds the number of free variables Generate accepts
// before enumeration (2^12 = 4096 rows). It is a resource guard, not a
// correctness constraint: EnumerateRows itself has no ceiling.
const DefaultMaxVariables = 12

// RowOrder selects which truth value comes first as rows advance.
type RowOrder int

const (
	// OrderFalseFirst starts every column at false (row 0 is all-false).
	OrderFalseFirst RowOrder = iota
	// OrderTrueFirst starts every column at true.
	OrderTrueFirst
)

// Options configures table generation.
type Options struct {
	Order RowOrder
	Steps bool // collect and evaluate sub-expression columns
	// MaxVariables overrides DefaultMaxVariables when positive.
	MaxVariables int
}

// Row is one line of the truth table.
type Row struct {
	Assignment Assignment
	// Steps holds sub-expression values in step order; nil unless steps
	// were requested.
	Steps  []bool
	Result bool
	// Err records an evaluation failure for this row. The failure is
	// absorbed: Result is coerced to false and the remaining rows are
	// still produced.
	Err error
}

// Table is a fully enumerated truth table.
type Table struct {
	Input     string
	Variables []string // sorted; leftmost is the most significant bit
	Steps     []Step   // non-empty only when Options.Steps was set
	Label     string   // canonical rendering of the whole expression
	Order     RowOrder
	Rows      []Row
}

// CollectVariables scans a token sequence for identifiers and returns the
// distinct names in ascending lexical order. This order fixes both the
// table columns and the row-bit positions.
func CollectVariables(tokens []Token) []string {
	seen := make(map[string]bool)
	var names []string
	for _, tok := range tokens {
		if tok.Type == IDENT && !seen[tok.Lexeme] {
			seen[tok.Lexeme] = true
			names = append(names, tok.Lexeme)
		}
	}
	sort.Strings(names)
	return names
}

// EnumerateRows produces all 2^n assignments over vars and evaluates each
// one. The variable at sorted position j takes bit (i >> (n-j-1)) & 1 of
// the row index i; OrderTrueFirst inverts which bit pattern maps to which
// truth value without changing row count or bit extraction.
//
// ast and steps may be nil/empty when no step columns are wanted. A row
// whose evaluation fails is kept with Result false and Err set; it never
// aborts the rest of the table.
func EnumerateRows(vars []string, postfix []Token, ast *AST, steps []Step, opts Options) []Row {
	n := len(vars)
	total := 1 << uint(n)
	rows := make([]Row, 0, total)

	for i := 0; i < total; i++ {
		assign := make(Assignment, n)
		for j, name := range vars {
			on := (i>>uint(n-j-1))&1 == 1
			if opts.Order == OrderTrueFirst {
				on = !on
			}
			assign[name] = on
		}

		row := Row{Assignment: assign}
		res, err := EvalPostfix(postfix, assign)
		if err != nil {
			row.Err = err
			res = false
		}
		row.Result = res

		if opts.Steps && ast != nil && len(steps) > 0 {
			cache := make(map[int]bool, ast.Len())
			vals := make([]bool, len(steps))
			for k, st := range steps {
				v, err := ast.EvalNode(st.Node, assign, cache)
				if err != nil {
					if row.Err == nil {
						row.Err = err
					}
					v = false
				}
				vals[k] = v
			}
			row.Steps = vals
		}

		rows = append(rows, row)
	}
	return rows
}

// Generate runs the whole front end on one expression: tokenize, convert
// to postfix, build the AST, then enumerate every row. Each call starts
// from scratch; nothing is carried over from earlier expressions.
func Generate(input string, opts Options) (*Table, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	postfix, err := ToPostfix(tokens)
	if err != nil {
		return nil, err
	}
	ast, err := BuildAST(postfix)
	if err != nil {
		return nil, err
	}

	vars := CollectVariables(tokens)
	limit := opts.MaxVariables
	if limit <= 0 {
		limit = DefaultMaxVariables
	}
	if len(vars) > limit {
		return nil, fmt.Errorf("too many variables: %d (limit %d)", len(vars), limit)
	}

	var steps []Step
	if opts.Steps {
		steps = ast.Subexpressions()
	}

	return &Table{
		Input:     input,
		Variables: vars,
		Steps:     steps,
		Label:     ast.Label(ast.Root()),
		Order:     opts.Order,
		Rows:      EnumerateRows(vars, postfix, ast, steps, opts),
	}, nil
}
