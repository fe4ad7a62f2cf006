// table_test.go
package truthtable

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func generate(t *testing.T, src string, opts Options) *Table {
	t.Helper()
	tbl, err := Generate(src, opts)
	if err != nil {
		t.Fatalf("Generate(%q) error: %v", src, err)
	}
	return tbl
}

func assignTuple(row Row, vars []string) string {
	var b strings.Builder
	for _, name := range vars {
		if row.Assignment[name] {
			b.WriteByte('T')
		} else {
			b.WriteByte('F')
		}
	}
	return b.String()
}

func Test_CollectVariables_SortedDistinct(t *testing.T) {
	got := CollectVariables(toks(t, "b & a | b & c2 | a"))
	want := []string{"a", "b", "c2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	// Reserved words never become variables.
	if got := CollectVariables(toks(t, "true and false")); len(got) != 0 {
		t.Fatalf("constants are not variables, got %v", got)
	}
}

func Test_Enumerate_RowCount_And_DistinctAssignments(t *testing.T) {
	tbl := generate(t, "a | b | c", Options{})
	if len(tbl.Rows) != 8 {
		t.Fatalf("want 2^3 = 8 rows, got %d", len(tbl.Rows))
	}
	seen := make(map[string]bool)
	for _, row := range tbl.Rows {
		key := assignTuple(row, tbl.Variables)
		if seen[key] {
			t.Fatalf("duplicate assignment %s", key)
		}
		seen[key] = true
	}
}

func Test_Enumerate_BitOrder_FalseFirst(t *testing.T) {
	tbl := generate(t, "p | q", Options{Order: OrderFalseFirst})
	want := []string{"FF", "FT", "TF", "TT"}
	for i, row := range tbl.Rows {
		if got := assignTuple(row, tbl.Variables); got != want[i] {
			t.Fatalf("row %d: want %s, got %s", i, want[i], got)
		}
	}
}

func Test_Enumerate_BitOrder_TrueFirst(t *testing.T) {
	tbl := generate(t, "p | q", Options{Order: OrderTrueFirst})
	want := []string{"TT", "TF", "FT", "FF"}
	for i, row := range tbl.Rows {
		if got := assignTuple(row, tbl.Variables); got != want[i] {
			t.Fatalf("row %d: want %s, got %s", i, want[i], got)
		}
	}
}

func Test_Scenario_Implication(t *testing.T) {
	tbl := generate(t, "p -> q", Options{})
	if !reflect.DeepEqual(tbl.Variables, []string{"p", "q"}) {
		t.Fatalf("want variables [p q], got %v", tbl.Variables)
	}
	for _, row := range tbl.Rows {
		want := !(row.Assignment["p"] && !row.Assignment["q"])
		if row.Result != want {
			t.Fatalf("p=%v q=%v: want %v, got %v",
				row.Assignment["p"], row.Assignment["q"], want, row.Result)
		}
	}
}

func Test_Scenario_XorSelf_AlwaysFalse(t *testing.T) {
	tbl := generate(t, "p xor p", Options{})
	if len(tbl.Rows) != 2 {
		t.Fatalf("want 2 rows, got %d", len(tbl.Rows))
	}
	for _, row := range tbl.Rows {
		if row.Result {
			t.Fatalf("p xor p should be false for p=%v", row.Assignment["p"])
		}
	}
}

func Test_Scenario_ConstantExpression_SingleRow(t *testing.T) {
	tbl := generate(t, "1 <-> 0", Options{})
	if len(tbl.Variables) != 0 {
		t.Fatalf("no free variables expected, got %v", tbl.Variables)
	}
	if len(tbl.Rows) != 1 {
		t.Fatalf("want exactly one row, got %d", len(tbl.Rows))
	}
	if tbl.Rows[0].Result {
		t.Fatal("1 <-> 0 should be false")
	}
}

func Test_Scenario_DeMorgan_Steps(t *testing.T) {
	tbl := generate(t, "!(a & b)", Options{Steps: true})
	want := []string{"(a & b)", "!(a & b)"}
	if got := stepLabels(tbl.Steps); !reflect.DeepEqual(got, want) {
		t.Fatalf("want step labels %v, got %v", want, got)
	}

	equiv := generate(t, "(!a) | (!b)", Options{})
	for i := range tbl.Rows {
		if tbl.Rows[i].Result != equiv.Rows[i].Result {
			t.Fatalf("row %d: De Morgan equivalence violated", i)
		}
		// Step values: (a & b) first, then its negation (== the result).
		steps := tbl.Rows[i].Steps
		if len(steps) != 2 {
			t.Fatalf("row %d: want 2 step values, got %d", i, len(steps))
		}
		a, b := tbl.Rows[i].Assignment["a"], tbl.Rows[i].Assignment["b"]
		if steps[0] != (a && b) || steps[1] != tbl.Rows[i].Result {
			t.Fatalf("row %d: wrong step values %v", i, steps)
		}
	}
}

func Test_Generate_MalformedInputs(t *testing.T) {
	for _, src := range []string{"a & ", "(a & b", "a & b)", "a $ b", "a & 2", "a b"} {
		if _, err := Generate(src, Options{}); err == nil {
			t.Fatalf("Generate(%q): expected error, got none", src)
		}
	}
}

func Test_Generate_VariableGuard(t *testing.T) {
	var names []string
	for i := 0; i < 13; i++ {
		names = append(names, fmt.Sprintf("v%02d", i))
	}
	src := strings.Join(names, " | ")

	if _, err := Generate(src, Options{}); err == nil {
		t.Fatal("expected the default 12-variable guard to trip")
	}
	tbl := generate(t, src, Options{MaxVariables: 13})
	if len(tbl.Rows) != 1<<13 {
		t.Fatalf("want %d rows, got %d", 1<<13, len(tbl.Rows))
	}
}

func Test_Enumerate_RowFailure_IsAbsorbed(t *testing.T) {
	// Force a per-row failure: the postfix references q but only p is
	// enumerated. Every row must still be produced, with the failure
	// downgraded to a false result.
	post := rpn(t, "p & q")
	rows := EnumerateRows([]string{"p"}, post, nil, nil, Options{})
	if len(rows) != 2 {
		t.Fatalf("want 2 rows despite failures, got %d", len(rows))
	}
	for i, row := range rows {
		if row.Result {
			t.Fatalf("row %d: failed evaluation must coerce to false", i)
		}
		if row.Err == nil {
			t.Fatalf("row %d: expected a diagnostic error", i)
		}
	}
}

func Test_Table_FinalLabel(t *testing.T) {
	tbl := generate(t, "p and q", Options{})
	if tbl.Label != "(p & q)" {
		t.Fatalf("want final label %q, got %q", "(p & q)", tbl.Label)
	}
}
