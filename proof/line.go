// Package proof defines the Lemmon-style proof-line data model: a line
// number, its open-assumption set, the parsed formula and AST, the lines
// it cites, the rule the user wrote, and the rule the detector found.
package proof

import "github.com/jafaripur/avicenna-logic-system/ast"

// AutoType classifies how a line justifies itself.
type AutoType int

const (
	// None is an ordinary derived line: cited_refs point to earlier lines
	// and detected_rule is meaningful.
	None AutoType = iota
	// Premise is a self-justifying line introduced as a hypothesis of the
	// argument.
	Premise
	// Assume is a self-justifying line that opens a subproof.
	Assume
)

func (a AutoType) String() string {
	switch a {
	case Premise:
		return "Premise"
	case Assume:
		return "Assume"
	default:
		return "None"
	}
}

// Line is one step of a Lemmon-style deduction.
type Line struct {
	// Number is the 1-based line number, unique within the deduction.
	Number int
	// Assumptions are the line numbers of the open assumptions this line
	// depends on (the bracketed "[...]" set on the left).
	Assumptions []int
	// Formula is the canonicalised formula string, post-parse.
	Formula string
	// AST is the parsed expression.
	AST *ast.Node
	// CitedRefs are the numeric citations inside the trailing "[...]":
	// the earlier lines used to derive this one.
	CitedRefs []int
	// UserRule is the rule name the user wrote, normalised by rulename, or
	// empty if none was given or it did not normalise to a known code.
	UserRule string
	// AutoKind says whether this line is self-justifying.
	AutoKind AutoType
	// DetectedRule is the rule code the detector found, or empty.
	DetectedRule string
}

// IsSelfJustifying reports whether l is a Premise or an Assume line, in
// which case CitedRefs is [Number] and DetectedRule plays no role.
func (l Line) IsSelfJustifying() bool {
	return l.AutoKind == Premise || l.AutoKind == Assume
}

// ByNumber indexes a slice of lines by their Number field. Later lines with
// a repeated number overwrite earlier ones; well-formed deductions never
// repeat a line number.
func ByNumber(lines []Line) map[int]Line {
	m := make(map[int]Line, len(lines))
	for _, l := range lines {
		m[l.Number] = l
	}
	return m
}
