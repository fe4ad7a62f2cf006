// errors.go — user-facing error wrapping with a caret snippet.
//
// WrapErrorWithInput recognizes *LexError and *ParseError, which carry a
// 1-based character position, and returns an error whose message shows the
// offending input with a caret under that position:
//
//	lex error at position 5: unexpected character '$'
//
//	  a & $ b
//	      ^
//
// Other errors (including *EvalError, which has no position) pass through
// unchanged. Positions are clamped so a stale or out-of-range position can
// never break rendering.
package truthtable

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// WrapErrorWithInput augments a lex or parse error with a caret-annotated
// snippet of the input it came from. Any other error is returned as is.
func WrapErrorWithInput(err error, input string) error {
	switch e := err.(type) {
	case *LexError:
		return fmt.Errorf("%s", caretSnippet(input, err.Error(), e.Pos))
	case *ParseError:
		if e.Pos == 0 {
			return err
		}
		return fmt.Errorf("%s", caretSnippet(input, err.Error(), e.Pos))
	default:
		return err
	}
}

// caretSnippet builds the two-line snippet. pos is 1-based and counts
// characters, matching how the lexer reports positions. Multi-line input
// is flattened first so the caret math stays in one line.
func caretSnippet(input, header string, pos int) string {
	line := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return ' '
		}
		return r
	}, input)

	n := utf8.RuneCountInString(line)
	if pos < 1 {
		pos = 1
	}
	if pos > n+1 {
		pos = n + 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", header)
	fmt.Fprintf(&b, "  %s\n", line)
	fmt.Fprintf(&b, "  %s^", strings.Repeat(" ", pos-1))
	return b.String()
}
