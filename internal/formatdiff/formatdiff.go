// Package formatdiff renders a human-readable diff between two short
// strings, for diagnostic use when a user-cited rule fails to match the
// detector's finding: lemmon.ParseLemmon calls Diff on the user-cited rule
// code and the detector's own code and passes the result to
// internal/debug.LogRuleMismatch, so the mismatch reads as a diff rather
// than two bare strings. The diff is computed with
// github.com/sergi/go-diff/diffmatchpatch; the two operands are always
// single-line, so no multi-line mode or tagged-node reconstruction is
// needed.
package formatdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a line rendering want/got as an inline diff built from
// diffmatchpatch's semantic diff: unchanged spans printed plain,
// insertions wrapped in "{+...+}", deletions in "{-...-}".
func Diff(want, got string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var out string
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			out += "{+" + d.Text + "+}"
		case diffpatch.DiffDelete:
			out += "{-" + d.Text + "-}"
		case diffpatch.DiffEqual:
			out += d.Text
		}
	}
	return out
}
