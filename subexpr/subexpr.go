// Package subexpr collects the compound sub-expressions of a set of
// formulas: a post-order traversal gathers every Not and binary node,
// de-duplicated by structural identity, in first-encountered order. Atomic
// Var nodes are never included.
package subexpr

import "github.com/jafaripur/avicenna-logic-system/ast"

// Collect returns every distinct compound sub-expression across roots, in
// the order each was first encountered by a post-order traversal of the
// roots in order.
func Collect(roots []*ast.Node) []*ast.Node {
	var out []*ast.Node
	for _, root := range roots {
		collectOne(root, &out)
	}
	return out
}

func collectOne(n *ast.Node, out *[]*ast.Node) {
	if n.Kind == ast.VarKind {
		return
	}
	collectOne(n.Left, out)
	if n.IsBinary() {
		collectOne(n.Right, out)
	}
	if !containsEqual(*out, n) {
		*out = append(*out, n)
	}
}

func containsEqual(nodes []*ast.Node, n *ast.Node) bool {
	for _, existing := range nodes {
		if ast.Equal(existing, n) {
			return true
		}
	}
	return false
}
