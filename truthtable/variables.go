package truthtable

import "github.com/jafaripur/avicenna-logic-system/ast"

// collectVariables gathers the distinct variable names appearing across
// roots, in the order each name is first encountered by a left-to-right
// walk of each formula in turn.
func collectVariables(roots []*ast.Node) []string {
	var names []string
	seen := make(map[string]bool)
	for _, root := range roots {
		walkVars(root, &names, seen)
	}
	return names
}

func walkVars(n *ast.Node, names *[]string, seen map[string]bool) {
	if n == nil {
		return
	}
	if n.Kind == ast.VarKind {
		if !seen[n.Name] {
			seen[n.Name] = true
			*names = append(*names, n.Name)
		}
		return
	}
	walkVars(n.Left, names, seen)
	if n.IsBinary() {
		walkVars(n.Right, names, seen)
	}
}

// stableSortByDepth orders nodes by ast.Depth ascending, preserving the
// relative order of equal-depth entries: sub-expression rows are listed
// shallowest-first, ties broken by first-encountered order.
func stableSortByDepth(nodes []*ast.Node) {
	n := len(nodes)
	depths := make([]int, n)
	for i, node := range nodes {
		depths[i] = ast.Depth(node)
	}
	for i := 1; i < n; i++ {
		for j := i; j > 0 && depths[j-1] > depths[j]; j-- {
			nodes[j-1], nodes[j] = nodes[j], nodes[j-1]
			depths[j-1], depths[j] = depths[j], depths[j-1]
		}
	}
}
