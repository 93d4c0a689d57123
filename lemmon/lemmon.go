package lemmon

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jafaripur/avicenna-logic-system/apperr"
	"github.com/jafaripur/avicenna-logic-system/internal/debug"
	"github.com/jafaripur/avicenna-logic-system/internal/formatdiff"
	"github.com/jafaripur/avicenna-logic-system/printer"
	"github.com/jafaripur/avicenna-logic-system/proof"
	"github.com/jafaripur/avicenna-logic-system/ruledetector"
	"github.com/jafaripur/avicenna-logic-system/rulename"
)

// lineRE matches one non-blank line of a Lemmon deduction:
//
//	[<refs>]   (<n>)   <formula>   [<details>]
//
// <refs> is the assumption set; <details> is zero-or-more citation line
// numbers followed by the rule token.
var lineRE = regexp.MustCompile(`^\s*\[([^\]]*)\]\s*\((\d+)\)\s*(.+?)\s*\[([^\]]*)\]\s*$`)

// ParseLemmon reads a multi-line Lemmon-style deduction into an ordered
// slice of proof.Line, running rule detection on each non-self-justifying
// line. Blank lines are ignored; any non-blank line that does not match
// the grammar raises apperr.ErrLemmonParse.
func ParseLemmon(text string) ([]proof.Line, error) {
	var lines []proof.Line
	for _, raw := range strings.Split(text, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		line, err := parseLemmonLine(raw)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	all := proof.ByNumber(lines)
	for i, l := range lines {
		if l.IsSelfJustifying() {
			continue
		}
		code, ok := ruledetector.Detect(l, all)
		if ok {
			lines[i].DetectedRule = code
			all[l.Number] = lines[i]
		}
		if debug.RuleDetector() && l.UserRule != "" && l.UserRule != code {
			debug.LogRuleMismatch(l.Number, l.UserRule, code, formatdiff.Diff(l.UserRule, code))
		}
	}
	return lines, nil
}

func parseLemmonLine(raw string) (proof.Line, error) {
	m := lineRE.FindStringSubmatch(raw)
	if m == nil {
		return proof.Line{}, apperr.ErrLemmonParse
	}

	assumptions, err := parseIntList(m[1])
	if err != nil {
		return proof.Line{}, apperr.ErrLemmonParse
	}
	number, err := strconv.Atoi(m[2])
	if err != nil {
		return proof.Line{}, apperr.ErrLemmonParse
	}
	formulaAST, err := parseCanonical(m[3])
	if err != nil {
		return proof.Line{}, err
	}
	citedRefs, ruleText, err := parseDetails(m[4])
	if err != nil {
		return proof.Line{}, err
	}

	line := proof.Line{
		Number:      number,
		Assumptions: assumptions,
		Formula:     printer.ToString(formulaAST),
		AST:         formulaAST,
		CitedRefs:   citedRefs,
	}

	userRule, _ := rulename.Normalize(ruleText)

	if len(assumptions) == 1 && assumptions[0] == number && len(citedRefs) == 0 && ruleText != "" {
		if userRule == "Premise" {
			line.AutoKind = proof.Premise
		} else {
			line.AutoKind = proof.Assume
		}
		line.CitedRefs = []int{number}
		return line, nil
	}

	line.UserRule = userRule
	return line, nil
}

// parseDetails splits a details field into its leading citation numbers
// and trailing rule token.
func parseDetails(details string) (citedRefs []int, ruleText string, err error) {
	parts := splitNonEmpty(details)
	if len(parts) == 0 {
		return nil, "", nil
	}
	ruleText = parts[len(parts)-1]
	for _, p := range parts[:len(parts)-1] {
		n, convErr := strconv.Atoi(p)
		if convErr != nil {
			return nil, "", apperr.ErrLemmonParse
		}
		citedRefs = append(citedRefs, n)
	}
	return citedRefs, ruleText, nil
}

func parseIntList(s string) ([]int, error) {
	parts := splitNonEmpty(s)
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func splitNonEmpty(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
