// lexer.go — lexical analysis for boolean expressions.
//
// The lexer accepts three surface notations at once: ASCII symbols
// (& | ^ ! ~ -> => <-> <=>), Unicode connectives (∧ ∨ ⊕ ¬ → ↔) and
// case-insensitive English words (and, or, xor, not, implies, iff).
// Symbolic forms are resolved longest-match-first so "<=>" is never split
// into "<", "=", ">". Word forms are recognized only as whole identifiers:
// the scanner consumes the maximal letter/digit/underscore run before
// classifying it, so "impliesX" lexes as a single identifier.
//
// Constants are the words true/t and false/f (any casing) plus the digits
// 1 and 0. A maximal digit run other than "0" or "1" is a lexical error.
//
// Errors carry a 1-based character (rune) position so the caret renderer
// in errors.go can point at the offending input.
package truthtable

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// opLexemes maps symbolic surface forms to operators. Order matters: a
// longer form must appear before any shorter form that prefixes it, so the
// scanner can take the first textual match as the longest one.
var opLexemes = []struct {
	text string
	op   Operator
}{
	{"<->", IFF},
	{"<=>", IFF},
	{"->", IMP},
	{"=>", IMP},
	{"↔", IFF},
	{"→", IMP},
	{"∧", AND},
	{"∨", OR},
	{"⊕", XOR},
	{"¬", NOT},
	{"&", AND},
	{"|", OR},
	{"^", XOR},
	{"!", NOT},
	{"~", NOT},
}

// wordOps classifies lowercased word runs as operators.
var wordOps = map[string]Operator{
	"and":     AND,
	"or":      OR,
	"xor":     XOR,
	"not":     NOT,
	"implies": IMP,
	"iff":     IFF,
}

// wordConsts classifies lowercased word and digit runs as constants.
var wordConsts = map[string]bool{
	"true":  true,
	"t":     true,
	"1":     true,
	"false": false,
	"f":     false,
	"0":     false,
}

// LexError is a lexical error at a 1-based character position.
type LexError struct {
	Pos int
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at position %d: %s", e.Pos, e.Msg)
}

// Lexer scans a boolean expression string into tokens.
type Lexer struct {
	src    string
	start  int // start index of current token (bytes)
	cur    int // current index (bytes)
	tokens []Token
}

// NewLexer creates a new lexer for the given input.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Tokenize scans input into a token sequence. It is the convenience form of
// NewLexer(input).Scan().
func Tokenize(input string) ([]Token, error) {
	return NewLexer(input).Scan()
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

// pos reports the 1-based character position of the current token start.
func (l *Lexer) pos() int {
	return utf8.RuneCountInString(l.src[:l.start]) + 1
}

func (l *Lexer) errf(format string, args ...interface{}) error {
	return &LexError{Pos: l.pos(), Msg: fmt.Sprintf(format, args...)}
}

func (l *Lexer) add(tok Token) {
	tok.Lexeme = l.src[l.start:l.cur]
	tok.Pos = l.pos()
	l.tokens = append(l.tokens, tok)
	l.start = l.cur
}

func (l *Lexer) addToken(tt TokenType) { l.add(Token{Type: tt}) }
func (l *Lexer) addOp(op Operator)     { l.add(Token{Type: OP, Op: op}) }
func (l *Lexer) addConst(v bool)       { l.add(Token{Type: CONST, Value: v}) }

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		switch l.src[l.cur] {
		case ' ', '\t', '\r', '\n':
			l.cur++
			l.start = l.cur
		default:
			return
		}
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
func isAlphaNum(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

// matchOpLexeme attempts the longest symbolic-operator match at the current
// position. Word forms are deliberately absent from the table; they go
// through the identifier path so they only match as whole words.
func (l *Lexer) matchOpLexeme() (Operator, bool) {
	rest := l.src[l.cur:]
	for _, e := range opLexemes {
		if strings.HasPrefix(rest, e.text) {
			l.cur += len(e.text)
			return e.op, true
		}
	}
	return 0, false
}

func (l *Lexer) scanWord() {
	for !l.isAtEnd() && isAlphaNum(l.src[l.cur]) {
		l.cur++
	}
	word := l.src[l.start:l.cur]
	lower := strings.ToLower(word)
	if v, ok := wordConsts[lower]; ok {
		l.addConst(v)
		return
	}
	if op, ok := wordOps[lower]; ok {
		l.addOp(op)
		return
	}
	l.addToken(IDENT)
}

func (l *Lexer) scanNumber() error {
	for !l.isAtEnd() && isDigit(l.src[l.cur]) {
		l.cur++
	}
	run := l.src[l.start:l.cur]
	v, ok := wordConsts[run]
	if !ok {
		return l.errf("malformed numeric literal %q (only 0 and 1 are boolean constants)", run)
	}
	l.addConst(v)
	return nil
}

func (l *Lexer) scanToken() error {
	ch := l.src[l.cur]

	switch ch {
	case '(':
		l.cur++
		l.addToken(LPAREN)
		return nil
	case ')':
		l.cur++
		l.addToken(RPAREN)
		return nil
	}

	if op, ok := l.matchOpLexeme(); ok {
		l.addOp(op)
		return nil
	}
	if isAlpha(ch) {
		l.scanWord()
		return nil
	}
	if isDigit(ch) {
		return l.scanNumber()
	}

	r, _ := utf8.DecodeRuneInString(l.src[l.cur:])
	return l.errf("unexpected character %q", r)
}

// Scan tokenizes the whole input. It is a pure function of the input: the
// returned slice is freshly built and the lexer holds no state a caller
// needs afterwards.
func (l *Lexer) Scan() ([]Token, error) {
	for {
		l.skipWhitespace()
		l.start = l.cur
		if l.isAtEnd() {
			return l.tokens, nil
		}
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}
}
