package truthtable

// TokenType represents the kind of token.
type TokenType int

const (
	LPAREN TokenType = iota
	RPAREN
	OP
	CONST
	IDENT
)

// Token is a lexical token. Lexeme holds the raw surface form as written
// (identifiers keep their original casing). Op is meaningful only for OP
// tokens, Value only for CONST tokens. Pos is the 1-based character
// position of the token's first character in the input.
type Token struct {
	Type   TokenType
	Lexeme string
	Op     Operator
	Value  bool
	Pos    int
}
