// Package ruledetector recognises whether a Lemmon proof line is a correct
// application of one of the ~25 replacement and inference rules of
// classical propositional deduction. It never raises: an undetectable line
// simply produces no match.
//
// The dispatch shape is a fixed, ordered list of named detectors tried
// until one succeeds. Detectors here are plain functions rather than an
// interface hierarchy since each one's arity and reference shape differs
// too much to share a single method set profitably.
package ruledetector

import (
	"github.com/jafaripur/avicenna-logic-system/ast"
	"github.com/jafaripur/avicenna-logic-system/proof"
)

type detectorFunc func(cur proof.Line, refs []proof.Line) bool

// order is the fixed priority list: replacement rules first, then
// inference rules.
var order = []struct {
	code string
	fn   detectorFunc
}{
	{"Dist", detectDist},
	{"Comm", detectComm},
	{"Assoc", detectAssoc},
	{"Exp", detectExp},
	{"DN", detectDN},
	{"DeM", detectDeM},
	{"Contra", detectContra},
	{"Simp", detectSimp},
	{"BE", detectBE},
	{"T", detectT},
	{"CPA", detectCPA},
	{"RAA", detectRAA},
	{"¬I", detectNotI},
	{"MP", detectMP},
	{"MT", detectMT},
	{"MPT", detectMPT},
	{"HS", detectHS},
	{"DS", detectDS},
	{"CD", detectCD},
	{"DD", detectDD},
	{"∧I", detectAndI},
	{"∧E", detectAndE},
	{"∨I", detectOrI},
	{"∨E", detectOrE},
	{"Abs", detectAbs},
}

// Detect tries every detector in priority order against cur, resolving its
// CitedRefs against all, and returns the code of the first one that
// matches. It returns ("", false) if none match or if a citation points to
// a line that does not exist.
func Detect(cur proof.Line, all map[int]proof.Line) (string, bool) {
	refs, ok := resolveRefs(cur, all)
	if !ok {
		return "", false
	}
	for _, d := range order {
		if d.fn(cur, refs) {
			return d.code, true
		}
	}
	return "", false
}

func resolveRefs(cur proof.Line, all map[int]proof.Line) ([]proof.Line, bool) {
	refs := make([]proof.Line, 0, len(cur.CitedRefs))
	for _, n := range cur.CitedRefs {
		l, ok := all[n]
		if !ok {
			return nil, false
		}
		refs = append(refs, l)
	}
	return refs, true
}

func arity(refs []proof.Line, n int) bool {
	return len(refs) == n
}

func asts(refs []proof.Line) []*ast.Node {
	out := make([]*ast.Node, len(refs))
	for i, r := range refs {
		out[i] = r.AST
	}
	return out
}
