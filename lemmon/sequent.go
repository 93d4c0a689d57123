// Package lemmon implements two textual readers: the one-line sequent
// splitter and the Lemmon-style deduction reader. Both sit above parse,
// proof, rulename, and ruledetector, and both normalise variable names to
// upper case before handing formulas to the core — the core parser itself
// preserves case.
package lemmon

import (
	"strings"

	"github.com/jafaripur/avicenna-logic-system/apperr"
	"github.com/jafaripur/avicenna-logic-system/ast"
	"github.com/jafaripur/avicenna-logic-system/parse"
	"github.com/jafaripur/avicenna-logic-system/printer"
	"github.com/jafaripur/avicenna-logic-system/proof"
)

const (
	turnstile = "⊢"
	therefore = "∴"
)

// ParseSequent splits a one-line sequent "P1, P2, … ⊢ C" — "∴" is accepted
// as a synonym for "⊢" — into its premise lines and conclusion line.
func ParseSequent(text string) (premises []proof.Line, conclusion proof.Line, err error) {
	sep, idx, ok := findTurnstile(text)
	if !ok {
		return nil, proof.Line{}, apperr.ErrInvalidConclusion
	}

	premiseParts := strings.Split(text[:idx], ",")
	premises = make([]proof.Line, 0, len(premiseParts))
	for i, part := range premiseParts {
		n, perr := parseCanonical(part)
		if perr != nil {
			return nil, proof.Line{}, perr
		}
		num := i + 1
		premises = append(premises, proof.Line{
			Number:      num,
			Assumptions: []int{num},
			Formula:     printer.ToString(n),
			AST:         n,
			CitedRefs:   []int{num},
			AutoKind:    proof.Premise,
		})
	}

	n, perr := parseCanonical(text[idx+len(sep):])
	if perr != nil {
		return nil, proof.Line{}, perr
	}
	conclusion = proof.Line{
		Number:  len(premises) + 1,
		Formula: printer.ToString(n),
		AST:     n,
	}
	return premises, conclusion, nil
}

// findTurnstile locates the sequent's single separator, accepting either
// "⊢" or "∴" but not both, and not more than one of either.
func findTurnstile(text string) (sep string, idx int, ok bool) {
	tCount := strings.Count(text, turnstile)
	thCount := strings.Count(text, therefore)
	if tCount+thCount != 1 {
		return "", 0, false
	}
	if tCount == 1 {
		return turnstile, strings.Index(text, turnstile), true
	}
	return therefore, strings.Index(text, therefore), true
}

// parseCanonical parses a trimmed formula and upper-cases its variable
// names, the canonicalisation the Lemmon-facing readers apply before
// handing formulas to the core parser.
func parseCanonical(text string) (*ast.Node, error) {
	n, err := parse.ParseFormula(strings.TrimSpace(text))
	if err != nil {
		return nil, err
	}
	upperVars(n)
	return n, nil
}

func upperVars(n *ast.Node) {
	if n.Kind == ast.VarKind {
		n.Name = strings.ToUpper(n.Name)
		return
	}
	upperVars(n.Left)
	if n.IsBinary() {
		upperVars(n.Right)
	}
}
