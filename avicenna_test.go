package avicenna

import (
	"embed"
	"testing"

	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"

	"github.com/jafaripur/avicenna-logic-system/apperr"
	"github.com/jafaripur/avicenna-logic-system/ast"
	"github.com/jafaripur/avicenna-logic-system/printer"
	"github.com/jafaripur/avicenna-logic-system/proof"
	"github.com/jafaripur/avicenna-logic-system/ruledetector"
	"github.com/jafaripur/avicenna-logic-system/truthtable"
)

//go:embed testdata/classification.yaml
var testdataFS embed.FS

func TestParseAndEvaluateNestedBiconditional(t *testing.T) {
	n, err := ParseFormula(Propositional, "(P ∧ ¬(Q → (R ↔ S))) → T")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := ast.Assignment{"P": true, "Q": false, "R": true, "S": false, "T": true}
	if got := ast.Evaluate(n, a); got != true {
		t.Fatalf("evaluate = %v, want true", got)
	}
}

func TestParseSequentSplitsPremisesAndConclusion(t *testing.T) {
	premises, conclusion, err := ParseSequent(Propositional, "P ∧ (Q ∨ R), P → ¬R ⊢ Q ∨ E")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(premises) != 2 {
		t.Fatalf("got %d premises, want 2", len(premises))
	}
	if conclusion.Number != 3 {
		t.Fatalf("conclusion number = %d, want 3", conclusion.Number)
	}
}

func TestParseSequentMissingTurnstileFailsWithInvalidConclusion(t *testing.T) {
	_, _, err := ParseSequent(Propositional, "P ∧ (Q ∨ R), P → ¬R")
	if err == nil {
		t.Fatal("expected an error")
	}
	var found bool
	for e := err; e != nil; e = unwrap(e) {
		if e == apperr.ErrInvalidConclusion {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("got %v, want a wrapped ErrInvalidConclusion", err)
	}
}

func unwrap(err error) error {
	type causer interface{ Cause() error }
	if c, ok := err.(causer); ok {
		return c.Cause()
	}
	type unwrapper interface{ Unwrap() error }
	if u, ok := err.(unwrapper); ok {
		return u.Unwrap()
	}
	return nil
}

const disjElimProof = `
[1]       (1)  P & (Q | R)              [Premise]
[1]       (2)  Q | R                    [1,AndE]
[3]       (3)  Q                        [Assume]
[1]       (4)  P                        [1,AndE]
[1,3]     (5)  P & Q                    [3,4,AndI]
[1,3]     (6)  (P & Q) | (P & R)        [5,OrI]
[7]       (7)  R                        [Assume]
[1,7]     (8)  P & R                    [4,7,AndI]
[1,7]     (9)  (P & Q) | (P & R)        [8,OrI]
[1]       (10) (P & Q) | (P & R)        [2,3,6,7,9,OrE]
`

// The 10-line Lemmon proof for P∧(Q∨R) ⊢ (P∧Q)∨(P∧R) via ∨-elimination
// yields 10 lines; every non-self-justifying line's detected rule matches
// its user-cited rule.
func TestParseLemmonDisjunctionEliminationProof(t *testing.T) {
	lines, err := ParseLemmon(Propositional, disjElimProof)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 10 {
		t.Fatalf("got %d lines, want 10", len(lines))
	}
	for _, l := range lines {
		if l.IsSelfJustifying() {
			continue
		}
		if !ruledetector.CheckUserRule(l) {
			t.Errorf("line %d: user rule %q does not match detected rule %q", l.Number, l.UserRule, l.DetectedRule)
		}
	}
}

func TestParseLemmonMalformedLineRaisesError(t *testing.T) {
	_, err := ParseLemmon(Propositional, "[1] P Premise")
	if err == nil {
		t.Fatal("expected an error")
	}
}

// Analysing the disjunction-elimination proof returns variables =
// ["P","Q","R"], 8 combinations, a valid verdict, and every line
// Contingent — cross-checked against the independent SAT-based verifier.
func TestAnalyseDisjunctionEliminationProof(t *testing.T) {
	lines, err := ParseLemmon(Propositional, disjElimProof)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result := Analyse(lines)

	want := []string{"P", "Q", "R"}
	if diff := cmp.Diff(want, result.Variables); diff != "" {
		t.Errorf("variables mismatch (-want +got):\n%s", diff)
	}
	if len(result.Combinations) != 8 {
		t.Fatalf("got %d combinations, want 8", len(result.Combinations))
	}
	if !result.Valid {
		t.Fatalf("expected valid argument, got counter-examples %v", result.CounterExamples)
	}
	for _, pl := range result.PerLine {
		if pl.Classification != truthtable.Contingent {
			t.Errorf("line %q classified %v, want Contingent", pl.Expression, pl.Classification)
		}
	}

	if err := VerifySAT(lines, result); err != nil {
		t.Errorf("SAT cross-check disagreed: %v", err)
	}
}

func TestFormatSpacingStripsRedundantOuterParens(t *testing.T) {
	if got := printer.FormatSpacing("(P∧ (Q∨ R))"); got != "P ∧ (Q ∨ R)" {
		t.Fatalf("got %q, want %q", got, "P ∧ (Q ∨ R)")
	}
}

// classificationFixture loads testdata/classification.yaml, a declarative
// table of formula/classification pairs.
type classificationFixture struct {
	Cases []struct {
		Formula        string `yaml:"formula"`
		Classification string `yaml:"classification"`
	} `yaml:"cases"`
}

func TestClassificationFixtures(t *testing.T) {
	raw, err := testdataFS.ReadFile("testdata/classification.yaml")
	if err != nil {
		t.Fatalf("unexpected error reading fixture: %v", err)
	}
	var fixture classificationFixture
	if err := yaml.Unmarshal(raw, &fixture); err != nil {
		t.Fatalf("unexpected error unmarshalling fixture: %v", err)
	}
	if len(fixture.Cases) == 0 {
		t.Fatal("expected at least one fixture case")
	}

	for _, c := range fixture.Cases {
		n, err := ParseFormula(Propositional, c.Formula)
		if err != nil {
			t.Errorf("%q: unexpected parse error: %v", c.Formula, err)
			continue
		}
		result := Analyse([]proof.Line{{Number: 1, AST: n}})
		got := result.PerLine[0].Classification.String()
		if got != c.Classification {
			t.Errorf("%q: classification = %s, want %s", c.Formula, got, c.Classification)
		}
	}
}

// TestEvaluatorAgreesWithExprLang cross-checks ast.Evaluate against an
// entirely independent expression engine by re-expressing the same formula
// in expr-lang syntax and comparing results across every assignment of a
// small variable set.
func TestEvaluatorAgreesWithExprLang(t *testing.T) {
	n, err := ParseFormula(Propositional, "(P ∧ Q) → (P ∨ ¬Q)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (P∧Q)→(P∨¬Q) translated directly: implication as ternary, ∧ as &&.
	exprCode := "(P && Q) ? (P || !Q) : true"

	for _, p := range []bool{false, true} {
		for _, q := range []bool{false, true} {
			env := map[string]any{"P": p, "Q": q}
			want := ast.Evaluate(n, ast.Assignment{"P": p, "Q": q})
			got, err := expr.Eval(exprCode, env)
			if err != nil {
				t.Fatalf("expr eval error: %v", err)
			}
			if got != want {
				t.Errorf("P=%v Q=%v: ast.Evaluate=%v expr=%v", p, q, want, got)
			}
		}
	}
}

// TestCommutativeEqualityProperty checks that swapping children under
// ∧/∨/↔ preserves structural equality; under →/⊕ it does not unless the
// subtrees are identical.
func TestCommutativeEqualityProperty(t *testing.T) {
	p, q := ast.Var("P"), ast.Var("Q")
	commutative := []func(l, r *ast.Node) *ast.Node{ast.And, ast.Or, ast.Iff}
	for _, ctor := range commutative {
		if !ast.Equal(ctor(p, q), ctor(q, p)) {
			t.Errorf("expected commutative equality for %s", printer.Raw(ctor(p, q)))
		}
	}

	nonCommutative := []func(l, r *ast.Node) *ast.Node{ast.Implies, ast.Xor}
	for _, ctor := range nonCommutative {
		if ast.Equal(ctor(p, q), ctor(q, p)) {
			t.Errorf("did not expect commutative equality for %s", printer.Raw(ctor(p, q)))
		}
	}
}

// TestParsePrintRoundTrip checks that parsing printer.ToString's output of
// a parsed formula always yields a structurally equal AST.
func TestParsePrintRoundTrip(t *testing.T) {
	formulas := []string{
		"(P ∧ ¬(Q → (R ↔ S))) → T",
		"P ∨ (Q ∧ R)",
		"¬¬¬P",
		"A → B → C",
	}
	for _, f := range formulas {
		n1, err := ParseFormula(Propositional, f)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", f, err)
		}
		n2, err := ParseFormula(Propositional, printer.ToString(n1))
		if err != nil {
			t.Fatalf("%q: unexpected error re-parsing: %v", f, err)
		}
		if !ast.Equal(n1, n2) {
			t.Errorf("%q: round-trip mismatch: %s vs %s", f, printer.Raw(n1), printer.Raw(n2))
		}
	}
}

func TestUnsupportedLogicType(t *testing.T) {
	_, err := ParseFormula(LogicType(99), "P")
	if err != apperr.ErrUnsupportedLogicType {
		t.Fatalf("got %v, want ErrUnsupportedLogicType", err)
	}
}
