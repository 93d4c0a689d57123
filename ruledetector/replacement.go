package ruledetector

import (
	"sort"

	"github.com/jafaripur/avicenna-logic-system/ast"
	"github.com/jafaripur/avicenna-logic-system/proof"
)

// Every replacement rule cites exactly one earlier line and reduces to a
// structural-equality check between the current line's AST and an AST
// built (or reshaped) from that one reference.

func detectDist(cur proof.Line, refs []proof.Line) bool {
	if !arity(refs, 1) {
		return false
	}
	return distMatch(cur.AST, refs[0].AST)
}

// distMatch checks the two distributive equivalences in both directions:
//
//	(A∨B)∧(A∨C) ⇔ A∨(B∧C)
//	A∧(B∨C) ⇔ (A∧B)∨(A∧C)
//
// The shared factor A may be either operand of each disjunct/conjunct;
// ast.Equal's built-in commutativity for ∧/∨ covers every resulting
// permutation once the candidate split below is found.
func distMatch(a, b *ast.Node) bool {
	return distOrAndForm(a, b) || distOrAndForm(b, a) ||
		distAndOrForm(a, b) || distAndOrForm(b, a)
}

// distOrAndForm checks short = A∨(B∧C), long = (A∨B)∧(A∨C).
func distOrAndForm(short, long *ast.Node) bool {
	if short.Kind != ast.OrKind {
		return false
	}
	for _, split := range [][2]*ast.Node{{short.Left, short.Right}, {short.Right, short.Left}} {
		a, bc := split[0], split[1]
		if bc.Kind != ast.AndKind {
			continue
		}
		b, c := bc.Left, bc.Right
		expected := ast.And(ast.Or(a, b), ast.Or(a, c))
		if ast.Equal(expected, long) {
			return true
		}
	}
	return false
}

// distAndOrForm checks short = A∧(B∨C), long = (A∧B)∨(A∧C).
func distAndOrForm(short, long *ast.Node) bool {
	if short.Kind != ast.AndKind {
		return false
	}
	for _, split := range [][2]*ast.Node{{short.Left, short.Right}, {short.Right, short.Left}} {
		a, bc := split[0], split[1]
		if bc.Kind != ast.OrKind {
			continue
		}
		b, c := bc.Left, bc.Right
		expected := ast.Or(ast.And(a, b), ast.And(a, c))
		if ast.Equal(expected, long) {
			return true
		}
	}
	return false
}

func detectComm(cur proof.Line, refs []proof.Line) bool {
	if !arity(refs, 1) {
		return false
	}
	c, r := cur.AST, refs[0].AST
	if c.Kind != r.Kind || (c.Kind != ast.AndKind && c.Kind != ast.OrKind) {
		return false
	}
	return ast.Equal(c.Left, r.Right) && ast.Equal(c.Right, r.Left)
}

func detectAssoc(cur proof.Line, refs []proof.Line) bool {
	if !arity(refs, 1) {
		return false
	}
	c, r := cur.AST, refs[0].AST
	if c.Kind != r.Kind || (c.Kind != ast.AndKind && c.Kind != ast.OrKind) {
		return false
	}
	leavesC := flattenChain(c, c.Kind)
	leavesR := flattenChain(r, r.Kind)
	if len(leavesC) != len(leavesR) {
		return false
	}
	sortLeaves(leavesC)
	sortLeaves(leavesR)
	for i := range leavesC {
		if !ast.Equal(leavesC[i], leavesR[i]) {
			return false
		}
	}
	return true
}

// flattenChain collects n's leaves under a run of the same associative
// operator kind, treating any subtree of a different kind as an atomic
// leaf of the chain — even when it is itself compound.
func flattenChain(n *ast.Node, kind ast.Kind) []*ast.Node {
	if n.Kind != kind {
		return []*ast.Node{n}
	}
	return append(flattenChain(n.Left, kind), flattenChain(n.Right, kind)...)
}

// sortLeaves imposes a total order over leaves by comparing canonicalKey,
// so that two leaves ast.Equal treats as equal (commutative And/Or/Iff
// subtrees with swapped children) always land at the same position in
// both chains being compared.
func sortLeaves(leaves []*ast.Node) {
	sort.Slice(leaves, func(i, j int) bool {
		return canonicalKey(leaves[i]) < canonicalKey(leaves[j])
	})
}

// canonicalKey renders n to a string that agrees with ast.Equal: for the
// commutative kinds (And, Or, Iff) the two children's keys are sorted
// before joining, so swapped-child subtrees that ast.Equal treats as equal
// always produce the same key. Implies and Xor keep left-right order,
// matching ast.Equal's own ordered treatment of those two kinds.
func canonicalKey(n *ast.Node) string {
	switch n.Kind {
	case ast.VarKind:
		return n.Name
	case ast.NotKind:
		return "¬" + canonicalKey(n.Left)
	case ast.AndKind, ast.OrKind, ast.IffKind:
		l, r := canonicalKey(n.Left), canonicalKey(n.Right)
		if l > r {
			l, r = r, l
		}
		return "(" + l + canonicalOp[n.Kind] + r + ")"
	default:
		return "(" + canonicalKey(n.Left) + canonicalOp[n.Kind] + canonicalKey(n.Right) + ")"
	}
}

var canonicalOp = map[ast.Kind]string{
	ast.AndKind:     "∧",
	ast.OrKind:      "∨",
	ast.XorKind:     "⊕",
	ast.ImpliesKind: "→",
	ast.IffKind:     "↔",
}

func detectExp(cur proof.Line, refs []proof.Line) bool {
	if !arity(refs, 1) {
		return false
	}
	return expMatch(cur.AST, refs[0].AST) || expMatch(refs[0].AST, cur.AST)
}

// expMatch checks x = (A∧B)→C against y = A→(B→C).
func expMatch(x, y *ast.Node) bool {
	if x.Kind != ast.ImpliesKind || x.Left.Kind != ast.AndKind {
		return false
	}
	a, b, c := x.Left.Left, x.Left.Right, x.Right
	if y.Kind != ast.ImpliesKind || !ast.Equal(y.Left, a) {
		return false
	}
	return y.Right.Kind == ast.ImpliesKind &&
		ast.Equal(y.Right.Left, b) && ast.Equal(y.Right.Right, c)
}

func detectDN(cur proof.Line, refs []proof.Line) bool {
	if !arity(refs, 1) {
		return false
	}
	return dnMatch(cur.AST, refs[0].AST) || dnMatch(refs[0].AST, cur.AST)
}

func dnMatch(x, y *ast.Node) bool {
	return x.Kind == ast.NotKind && x.Left.Kind == ast.NotKind && ast.Equal(x.Left.Left, y)
}

func detectDeM(cur proof.Line, refs []proof.Line) bool {
	if !arity(refs, 1) {
		return false
	}
	a, b := cur.AST, refs[0].AST
	return demOrForm(a, b) || demOrForm(b, a) || demAndForm(a, b) || demAndForm(b, a)
}

// demOrForm checks x = ¬(A∨B) against y = ¬A∧¬B.
func demOrForm(x, y *ast.Node) bool {
	if x.Kind != ast.NotKind || x.Left.Kind != ast.OrKind {
		return false
	}
	a, b := x.Left.Left, x.Left.Right
	return ast.Equal(ast.And(ast.Not(a), ast.Not(b)), y)
}

// demAndForm checks x = ¬(A∧B) against y = ¬A∨¬B, the dual of demOrForm.
func demAndForm(x, y *ast.Node) bool {
	if x.Kind != ast.NotKind || x.Left.Kind != ast.AndKind {
		return false
	}
	a, b := x.Left.Left, x.Left.Right
	return ast.Equal(ast.Or(ast.Not(a), ast.Not(b)), y)
}

func detectContra(cur proof.Line, refs []proof.Line) bool {
	if !arity(refs, 1) {
		return false
	}
	return contraMatch(cur.AST, refs[0].AST) || contraMatch(refs[0].AST, cur.AST)
}

// contraMatch checks x = A→B against y = ¬B→¬A.
func contraMatch(x, y *ast.Node) bool {
	if x.Kind != ast.ImpliesKind {
		return false
	}
	a, b := x.Left, x.Right
	return ast.Equal(ast.Implies(ast.Not(b), ast.Not(a)), y)
}

func detectSimp(cur proof.Line, refs []proof.Line) bool {
	if !arity(refs, 1) {
		return false
	}
	return simpMatch(cur.AST, refs[0].AST) || simpMatch(refs[0].AST, cur.AST)
}

// simpMatch checks x = A→B against y = ¬A∨B (Material Implication).
func simpMatch(x, y *ast.Node) bool {
	if x.Kind != ast.ImpliesKind {
		return false
	}
	a, b := x.Left, x.Right
	return ast.Equal(ast.Or(ast.Not(a), b), y)
}

func detectBE(cur proof.Line, refs []proof.Line) bool {
	if !arity(refs, 1) {
		return false
	}
	return beMatch(cur.AST, refs[0].AST) || beMatch(refs[0].AST, cur.AST)
}

// beMatch checks x = A↔B against y = (A→B)∧(B→A).
func beMatch(x, y *ast.Node) bool {
	if x.Kind != ast.IffKind {
		return false
	}
	a, b := x.Left, x.Right
	return ast.Equal(ast.And(ast.Implies(a, b), ast.Implies(b, a)), y)
}

func detectT(cur proof.Line, refs []proof.Line) bool {
	if !arity(refs, 1) {
		return false
	}
	return tMatch(cur.AST, refs[0].AST) || tMatch(refs[0].AST, cur.AST)
}

// tMatch checks x = A∧A or x = A∨A against y = A.
func tMatch(x, y *ast.Node) bool {
	if x.Kind != ast.AndKind && x.Kind != ast.OrKind {
		return false
	}
	return ast.Equal(x.Left, x.Right) && ast.Equal(x.Left, y)
}
