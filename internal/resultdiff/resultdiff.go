// Package resultdiff diffs two JSON-marshalled values using
// github.com/evanphx/json-patch's merge-patch support. It backs a
// regression test helper: two truthtable.Result values produced from
// identical input should diff to an empty patch, confirming Analyse is
// deterministic.
package resultdiff

import (
	"bytes"
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch"
)

// Diff marshals before and after to JSON and returns the RFC 7396 merge
// patch that turns before into after. An empty object ("{}") means the two
// values are identical once marshalled.
func Diff(before, after any) ([]byte, error) {
	b, err := json.Marshal(before)
	if err != nil {
		return nil, err
	}
	a, err := json.Marshal(after)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(b, a)
}

// Equal reports whether before and after marshal to JSON values that diff
// to an empty merge patch.
func Equal(before, after any) (bool, error) {
	patch, err := Diff(before, after)
	if err != nil {
		return false, err
	}
	return bytes.Equal(bytes.TrimSpace(patch), []byte("{}")), nil
}
