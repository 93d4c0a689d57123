package printer

import (
	"testing"

	"github.com/jafaripur/avicenna-logic-system/ast"
)

func TestRawAtom(t *testing.T) {
	if got := Raw(ast.Var("P")); got != "P" {
		t.Errorf("got %q, want %q", got, "P")
	}
}

func TestRawNegation(t *testing.T) {
	if got := Raw(ast.Not(ast.Var("P"))); got != "¬P" {
		t.Errorf("got %q, want %q", got, "¬P")
	}
}

func TestRawBinaryIsFullyParenthesised(t *testing.T) {
	n := ast.And(ast.Var("P"), ast.Var("Q"))
	if got := Raw(n); got != "(P∧Q)" {
		t.Errorf("got %q, want %q", got, "(P∧Q)")
	}
}

func TestRawNestedDoubleNegation(t *testing.T) {
	n := ast.Not(ast.Not(ast.Var("P")))
	if got := Raw(n); got != "¬¬P" {
		t.Errorf("got %q, want %q", got, "¬¬P")
	}
}

func TestToStringStripsRedundantOuterParens(t *testing.T) {
	n := ast.And(ast.Var("P"), ast.Var("Q"))
	if got := ToString(n); got != "P ∧ Q" {
		t.Errorf("got %q, want %q", got, "P ∧ Q")
	}
}

func TestToStringKeepsInnerParensWhenNeeded(t *testing.T) {
	// (P ∨ Q) ∧ R: the inner Or's parens are not the outermost pair and
	// must survive since stripping them would change the grouping.
	n := ast.And(ast.Or(ast.Var("P"), ast.Var("Q")), ast.Var("R"))
	if got := ToString(n); got != "(P ∨ Q) ∧ R" {
		t.Errorf("got %q, want %q", got, "(P ∨ Q) ∧ R")
	}
}

func TestToStringAllOperators(t *testing.T) {
	p, q := ast.Var("P"), ast.Var("Q")
	cases := []struct {
		n    *ast.Node
		want string
	}{
		{ast.Not(p), "¬P"},
		{ast.And(p, q), "P ∧ Q"},
		{ast.Or(p, q), "P ∨ Q"},
		{ast.Xor(p, q), "P ⊕ Q"},
		{ast.Implies(p, q), "P → Q"},
		{ast.Iff(p, q), "P ↔ Q"},
	}
	for _, c := range cases {
		if got := ToString(c.n); got != c.want {
			t.Errorf("ToString(%v) = %q, want %q", c.n.Kind, got, c.want)
		}
	}
}

func TestFormatSpacingCollapsesNotRun(t *testing.T) {
	if got := FormatSpacing("¬   P"); got != "¬P" {
		t.Errorf("got %q, want %q", got, "¬P")
	}
}

func TestFormatSpacingNormalisesBinarySpacing(t *testing.T) {
	if got := FormatSpacing("P∧Q"); got != "P ∧ Q" {
		t.Errorf("got %q, want %q", got, "P ∧ Q")
	}
	if got := FormatSpacing("P   ∧   Q"); got != "P ∧ Q" {
		t.Errorf("got %q, want %q", got, "P ∧ Q")
	}
}

func TestFormatSpacingStripsParenInteriorWhitespace(t *testing.T) {
	if got := FormatSpacing("(  P ∧ Q  )"); got != "P ∧ Q" {
		t.Errorf("got %q, want %q", got, "P ∧ Q")
	}
}

func TestFormatSpacingKeepsParensAfterLeadingNot(t *testing.T) {
	// Raw's output for ¬(P∧Q) is "¬(P∧Q)"; the outer characters are not a
	// matching parenthesis pair (the string doesn't start with "("), so
	// nothing should be stripped.
	if got := FormatSpacing("¬(P∧Q)"); got != "¬(P ∧ Q)" {
		t.Errorf("got %q, want %q", got, "¬(P ∧ Q)")
	}
}

func TestFormatSpacingDoesNotStripSideBySideGroups(t *testing.T) {
	// "(P∧Q)∨(R∧S)": balance returns to zero after the first group, before
	// the final character, so the leading '(' is not paired with the
	// trailing ')' and neither should be stripped.
	if got := FormatSpacing("(P∧Q)∨(R∧S)"); got != "(P ∧ Q) ∨ (R ∧ S)" {
		t.Errorf("got %q, want %q", got, "(P ∧ Q) ∨ (R ∧ S)")
	}
}
