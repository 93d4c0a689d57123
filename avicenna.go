// Package avicenna is the public facade over the propositional-logic
// analysis library: formula/sequent/Lemmon parsing, truth-table analysis,
// and an independent SAT-based cross-check. The core packages underneath
// (ast, parse, token, printer, proof, ruledetector, rulename, subexpr,
// truthtable, lemmon) never wrap their own errors and do not log, except
// for lemmon's rule-mismatch diagnostic, which goes through internal/debug
// and is emitted only when AVICENNA_DEBUG_RULE_DETECTOR is set; this
// facade is the one place that attaches call-site context with
// github.com/pkg/errors: leaf packages return bare sentinels and only this
// outer surface adds call-site context.
package avicenna

import (
	"github.com/pkg/errors"

	"github.com/jafaripur/avicenna-logic-system/apperr"
	"github.com/jafaripur/avicenna-logic-system/ast"
	"github.com/jafaripur/avicenna-logic-system/internal/debug"
	"github.com/jafaripur/avicenna-logic-system/internal/satcheck"
	"github.com/jafaripur/avicenna-logic-system/lemmon"
	"github.com/jafaripur/avicenna-logic-system/parse"
	"github.com/jafaripur/avicenna-logic-system/proof"
	"github.com/jafaripur/avicenna-logic-system/ruledetector"
	"github.com/jafaripur/avicenna-logic-system/truthtable"
)

// LogicType selects which logic an analysis targets. Only Propositional is
// implemented; anything else is rejected with apperr.ErrUnsupportedLogicType
// rather than silently treated as propositional (spec.md names the error
// code but leaves its trigger to the implementation; see DESIGN.md).
type LogicType int

const (
	Propositional LogicType = iota
)

// ParseFormula parses a single formula's surface syntax into an ast.Node.
func ParseFormula(logic LogicType, text string) (*ast.Node, error) {
	if logic != Propositional {
		return nil, apperr.ErrUnsupportedLogicType
	}
	n, err := parse.ParseFormula(text)
	if err != nil {
		if debug.Parse() {
			debug.LogParseError(text, err)
		}
		return nil, errors.Wrapf(err, "parse formula %q", text)
	}
	return n, nil
}

// ParseSequent splits a one-line sequent into its premises and conclusion.
func ParseSequent(logic LogicType, text string) (premises []proof.Line, conclusion proof.Line, err error) {
	if logic != Propositional {
		return nil, proof.Line{}, apperr.ErrUnsupportedLogicType
	}
	premises, conclusion, err = lemmon.ParseSequent(text)
	if err != nil {
		return nil, proof.Line{}, errors.Wrapf(err, "parse sequent %q", text)
	}
	return premises, conclusion, nil
}

// ParseLemmon reads a multi-line Lemmon-style deduction, running rule
// detection on every line.
func ParseLemmon(logic LogicType, text string) ([]proof.Line, error) {
	if logic != Propositional {
		return nil, apperr.ErrUnsupportedLogicType
	}
	lines, err := lemmon.ParseLemmon(text)
	if err != nil {
		return nil, errors.Wrap(err, "parse lemmon deduction")
	}
	return lines, nil
}

// ValidateDeduction checks every non-self-justifying line's user-cited rule
// against ruledetector's own finding and returns every mismatch found
// (proof.ValidateDeduction, backed by go.uber.org/multierr), rather than
// stopping at the first one.
func ValidateDeduction(lines []proof.Line) error {
	if err := proof.ValidateDeduction(lines, ruledetector.CheckUserRule); err != nil {
		return errors.Wrap(err, "validate deduction")
	}
	return nil
}

// Analyse builds the full truth-table analysis of a slice of proof lines.
func Analyse(lines []proof.Line) truthtable.Result {
	result := truthtable.Analyse(lines)
	if debug.Truthtable() {
		debug.LogAnalysis(len(result.Variables), len(lines), result.Valid)
	}
	return result
}

// VerifySAT independently cross-checks result against a Tseitin/SAT
// encoding of the same argument (internal/satcheck), rather than trusting
// the brute-force truth table alone. It returns an error if the two
// methods disagree on validity, or if a SAT-found counter-example is absent
// from result.CounterExamples.
func VerifySAT(lines []proof.Line, result truthtable.Result) error {
	if len(lines) == 0 {
		return nil
	}
	var premises []*ast.Node
	for _, l := range lines {
		if l.AutoKind == proof.Premise {
			premises = append(premises, l.AST)
		}
	}
	conclusion := lines[len(lines)-1].AST

	sat := satcheck.Check(premises, conclusion)
	if sat.Valid != result.Valid {
		return errors.Errorf("sat cross-check disagrees with truth table: sat.Valid=%v truthtable.Valid=%v",
			sat.Valid, result.Valid)
	}
	if sat.Valid {
		return nil
	}
	for _, ce := range result.CounterExamples {
		if assignmentsAgree(ce, sat.CounterExample, result.Variables) {
			return nil
		}
	}
	return errors.New("sat counter-example not found among truth table's counter-examples")
}

func assignmentsAgree(a, b ast.Assignment, variables []string) bool {
	for _, v := range variables {
		if a.Get(v) != b.Get(v) {
			return false
		}
	}
	return true
}
