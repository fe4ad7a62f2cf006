// render.go — plain-text table rendering.
//
// The core produces rows; this file lines them up into an aligned table
// for terminals. Columns are: optional row index, one column per variable
// (sorted order), one column per sub-expression step, and the final result
// under the expression's canonical label. When steps are shown the root's
// step column doubles as the result column, so it is not printed twice.
package truthtable

import (
	"strconv"
	"strings"
)

// RenderOptions configures text rendering only; they never affect the
// computed rows.
type RenderOptions struct {
	Binary    bool // print 1/0 instead of T/F
	ShowIndex bool // leading row-index column
}

func renderBool(v, binary bool) string {
	if binary {
		if v {
			return "1"
		}
		return "0"
	}
	if v {
		return "T"
	}
	return "F"
}

// RenderText renders the table as aligned plain text with a header row and
// a rule under it.
func RenderText(t *Table, opts RenderOptions) string {
	steps := t.Steps
	if n := len(steps); n > 0 && steps[n-1].Label == t.Label {
		// The last step is the whole expression; fold it into the
		// result column.
		steps = steps[:n-1]
	}

	var headers []string
	if opts.ShowIndex {
		headers = append(headers, "#")
	}
	headers = append(headers, t.Variables...)
	for _, st := range steps {
		headers = append(headers, st.Label)
	}
	headers = append(headers, t.Label)

	cells := make([][]string, 0, len(t.Rows))
	for i, row := range t.Rows {
		var line []string
		if opts.ShowIndex {
			line = append(line, strconv.Itoa(i))
		}
		for _, name := range t.Variables {
			line = append(line, renderBool(row.Assignment[name], opts.Binary))
		}
		for k := range steps {
			line = append(line, renderBool(row.Steps[k], opts.Binary))
		}
		line = append(line, renderBool(row.Result, opts.Binary))
		cells = append(cells, line)
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, line := range cells {
		for i, c := range line {
			if len(c) > widths[i] {
				widths[i] = len(c)
			}
		}
	}

	var b strings.Builder
	writeLine := func(line []string) {
		for i, c := range line {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(c)
			if i < len(line)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-len(c)))
			}
		}
		b.WriteByte('\n')
	}

	writeLine(headers)
	for i, w := range widths {
		if i > 0 {
			b.WriteString("-+-")
		}
		b.WriteString(strings.Repeat("-", w))
	}
	b.WriteByte('\n')
	for _, line := range cells {
		writeLine(line)
	}
	return b.String()
}
