// eval_test.go
package truthtable

import "testing"

// allAssignments enumerates every assignment of vars, false-first.
func allAssignments(vars []string) []Assignment {
	n := len(vars)
	out := make([]Assignment, 0, 1<<uint(n))
	for i := 0; i < 1<<uint(n); i++ {
		assign := make(Assignment, n)
		for j, name := range vars {
			assign[name] = (i>>uint(n-j-1))&1 == 1
		}
		out = append(out, assign)
	}
	return out
}

func evalDirect(t *testing.T, src string, assign Assignment) bool {
	t.Helper()
	v, err := EvalPostfix(rpn(t, src), assign)
	if err != nil {
		t.Fatalf("EvalPostfix(%q, %v) error: %v", src, assign, err)
	}
	return v
}

func Test_Eval_TruthFunctions(t *testing.T) {
	cases := []struct {
		src  string
		want [4]bool // results for (F,F), (F,T), (T,F), (T,T)
	}{
		{"a & b", [4]bool{false, false, false, true}},
		{"a | b", [4]bool{false, true, true, true}},
		{"a ^ b", [4]bool{false, true, true, false}},
		{"a -> b", [4]bool{true, true, false, true}},
		{"a <-> b", [4]bool{true, false, false, true}},
	}
	for _, c := range cases {
		for i, assign := range allAssignments([]string{"a", "b"}) {
			if got := evalDirect(t, c.src, assign); got != c.want[i] {
				t.Fatalf("%q under %v: want %v, got %v", c.src, assign, c.want[i], got)
			}
		}
	}
	if evalDirect(t, "!a", Assignment{"a": true}) || !evalDirect(t, "!a", Assignment{"a": false}) {
		t.Fatal("NOT truth function wrong")
	}
}

func Test_Eval_Constants(t *testing.T) {
	if !evalDirect(t, "true | false", nil) {
		t.Fatal("true | false should be true")
	}
	if evalDirect(t, "1 <-> 0", nil) {
		t.Fatal("1 <-> 0 should be false")
	}
}

func Test_Eval_UnboundVariable(t *testing.T) {
	_, err := EvalPostfix(rpn(t, "p & q"), Assignment{"p": true})
	if err == nil {
		t.Fatal("expected error for unbound variable")
	}
	if _, ok := err.(*EvalError); !ok {
		t.Fatalf("expected *EvalError, got %T: %v", err, err)
	}

	a := ast(t, "p & q")
	_, err = a.EvalNode(a.Root(), Assignment{"p": true}, nil)
	if _, ok := err.(*EvalError); !ok {
		t.Fatalf("expected *EvalError from EvalNode, got %T: %v", err, err)
	}
}

// Both strategies must agree everywhere, and re-parsing a node's canonical
// rendering must evaluate like the node itself.
func Test_Eval_StrategyAgreement_And_RenderRoundTrip(t *testing.T) {
	exprs := []string{
		"p",
		"!p",
		"!!p",
		"p & q",
		"p implies q",
		"p xor p",
		"!(a & b)",
		"(a & b) | (a & b)",
		"a <-> !b & c ^ d | e -> f",
		"true -> p",
		"(a | b) & !(c <-> a)",
	}
	for _, src := range exprs {
		tokens := toks(t, src)
		post, err := ToPostfix(tokens)
		if err != nil {
			t.Fatalf("ToPostfix(%q): %v", src, err)
		}
		a, err := BuildAST(post)
		if err != nil {
			t.Fatalf("BuildAST(%q): %v", src, err)
		}
		rendered := a.Label(a.Root())
		reparsed := rpn(t, rendered)

		for _, assign := range allAssignments(CollectVariables(tokens)) {
			direct, err := EvalPostfix(post, assign)
			if err != nil {
				t.Fatalf("EvalPostfix(%q, %v): %v", src, assign, err)
			}
			cache := make(map[int]bool)
			byNode, err := a.EvalNode(a.Root(), assign, cache)
			if err != nil {
				t.Fatalf("EvalNode(%q, %v): %v", src, assign, err)
			}
			if direct != byNode {
				t.Fatalf("%q under %v: EvalPostfix=%v, EvalNode=%v", src, assign, direct, byNode)
			}
			again, err := EvalPostfix(reparsed, assign)
			if err != nil {
				t.Fatalf("re-parsed %q under %v: %v", rendered, assign, err)
			}
			if again != direct {
				t.Fatalf("%q re-rendered as %q changed value under %v", src, rendered, assign)
			}
		}
	}
}

func Test_Eval_Cache_CoversAllNodes(t *testing.T) {
	a := ast(t, "(a & b) | (a & b)")
	cache := make(map[int]bool)
	assign := Assignment{"a": true, "b": false}
	if _, err := a.EvalNode(a.Root(), assign, cache); err != nil {
		t.Fatalf("EvalNode error: %v", err)
	}
	if len(cache) != a.Len() {
		t.Fatalf("cache should hold every node after a root evaluation: want %d entries, got %d", a.Len(), len(cache))
	}
}

func Test_Eval_Postfix_LeftoverValues(t *testing.T) {
	_, err := EvalPostfix(rpn(t, "a b"), Assignment{"a": true, "b": true})
	if err == nil {
		t.Fatal("expected error for leftover stack values")
	}
	if _, ok := err.(*EvalError); !ok {
		t.Fatalf("expected *EvalError, got %T: %v", err, err)
	}
}
