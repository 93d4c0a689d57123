package ruledetector

import (
	"github.com/jafaripur/avicenna-logic-system/ast"
	"github.com/jafaripur/avicenna-logic-system/proof"
)

func detectMP(cur proof.Line, refs []proof.Line) bool {
	if !arity(refs, 2) {
		return false
	}
	c := asts(refs)
	return mpMatch(cur.AST, c[0], c[1]) || mpMatch(cur.AST, c[1], c[0])
}

// mpMatch checks imp = A→B, ant = A, cur = B.
func mpMatch(cur, imp, ant *ast.Node) bool {
	return imp.Kind == ast.ImpliesKind && ast.Equal(imp.Left, ant) && ast.Equal(cur, imp.Right)
}

func detectMT(cur proof.Line, refs []proof.Line) bool {
	if !arity(refs, 2) {
		return false
	}
	c := asts(refs)
	return mtMatch(cur.AST, c[0], c[1]) || mtMatch(cur.AST, c[1], c[0])
}

// mtMatch checks imp = A→B, negB = ¬B, cur = ¬A.
func mtMatch(cur, imp, negB *ast.Node) bool {
	if imp.Kind != ast.ImpliesKind || negB.Kind != ast.NotKind {
		return false
	}
	if !ast.Equal(negB.Left, imp.Right) {
		return false
	}
	return cur.Kind == ast.NotKind && ast.Equal(cur.Left, imp.Left)
}

// disjElim is the shared shape of MPT and DS: one ref is A∨B, the other is
// ¬X matching one disjunct, and cur is the other disjunct.
func disjElim(cur, disj, negX *ast.Node) bool {
	if disj.Kind != ast.OrKind || negX.Kind != ast.NotKind {
		return false
	}
	x := negX.Left
	if ast.Equal(x, disj.Left) {
		return ast.Equal(cur, disj.Right)
	}
	if ast.Equal(x, disj.Right) {
		return ast.Equal(cur, disj.Left)
	}
	return false
}

func detectMPT(cur proof.Line, refs []proof.Line) bool {
	if !arity(refs, 2) {
		return false
	}
	c := asts(refs)
	return disjElim(cur.AST, c[0], c[1]) || disjElim(cur.AST, c[1], c[0])
}

func detectDS(cur proof.Line, refs []proof.Line) bool {
	if !arity(refs, 2) {
		return false
	}
	c := asts(refs)
	return disjElim(cur.AST, c[0], c[1]) || disjElim(cur.AST, c[1], c[0])
}

func detectHS(cur proof.Line, refs []proof.Line) bool {
	if !arity(refs, 2) {
		return false
	}
	c := asts(refs)
	return hsMatch(cur.AST, c[0], c[1]) || hsMatch(cur.AST, c[1], c[0])
}

// hsMatch checks imp1 = A→B, imp2 = B→C, cur = A→C.
func hsMatch(cur, imp1, imp2 *ast.Node) bool {
	if imp1.Kind != ast.ImpliesKind || imp2.Kind != ast.ImpliesKind {
		return false
	}
	if !ast.Equal(imp1.Right, imp2.Left) {
		return false
	}
	return cur.Kind == ast.ImpliesKind &&
		ast.Equal(cur.Left, imp1.Left) && ast.Equal(cur.Right, imp2.Right)
}

func detectCD(cur proof.Line, refs []proof.Line) bool {
	if !arity(refs, 3) {
		return false
	}
	c := asts(refs)
	// Try each of the three refs as the disjunction, the other two as the
	// pair of implications, in either pairing with the disjuncts.
	for i := 0; i < 3; i++ {
		j, k := (i+1)%3, (i+2)%3
		disj, imp1, imp2 := c[i], c[j], c[k]
		if cdMatch(cur.AST, disj, imp1, imp2) {
			return true
		}
	}
	return false
}

// cdMatch checks disj = A∨B, imp1 and imp2 are implications whose
// antecedents are (in either order) A and B, and cur = C∨D where C, D are
// the corresponding consequents.
func cdMatch(cur, disj, imp1, imp2 *ast.Node) bool {
	if disj.Kind != ast.OrKind || imp1.Kind != ast.ImpliesKind || imp2.Kind != ast.ImpliesKind {
		return false
	}
	a, b := disj.Left, disj.Right
	if ast.Equal(imp1.Left, a) && ast.Equal(imp2.Left, b) {
		return ast.Equal(cur, ast.Or(imp1.Right, imp2.Right))
	}
	if ast.Equal(imp1.Left, b) && ast.Equal(imp2.Left, a) {
		return ast.Equal(cur, ast.Or(imp2.Right, imp1.Right))
	}
	return false
}

func detectDD(cur proof.Line, refs []proof.Line) bool {
	if !arity(refs, 2) {
		return false
	}
	c := asts(refs)
	return ddMatch(cur.AST, c[0], c[1]) || ddMatch(cur.AST, c[1], c[0])
}

// ddMatch checks conj = (A→C)∧(B→D), disj = ¬C∨¬D, cur = ¬A∨¬B.
func ddMatch(cur, conj, disj *ast.Node) bool {
	if conj.Kind != ast.AndKind || disj.Kind != ast.OrKind {
		return false
	}
	imp1, imp2 := conj.Left, conj.Right
	negC, negD := disj.Left, disj.Right
	if imp1.Kind != ast.ImpliesKind || imp2.Kind != ast.ImpliesKind {
		return false
	}
	if negC.Kind != ast.NotKind || negD.Kind != ast.NotKind {
		return false
	}
	if ast.Equal(imp1.Right, negC.Left) && ast.Equal(imp2.Right, negD.Left) {
		return ast.Equal(cur, ast.Or(ast.Not(imp1.Left), ast.Not(imp2.Left)))
	}
	if ast.Equal(imp1.Right, negD.Left) && ast.Equal(imp2.Right, negC.Left) {
		return ast.Equal(cur, ast.Or(ast.Not(imp2.Left), ast.Not(imp1.Left)))
	}
	return false
}

func detectAndI(cur proof.Line, refs []proof.Line) bool {
	if !arity(refs, 2) {
		return false
	}
	c := asts(refs)
	if cur.AST.Kind != ast.AndKind {
		return false
	}
	l, r := cur.AST.Left, cur.AST.Right
	return (ast.Equal(l, c[0]) && ast.Equal(r, c[1])) || (ast.Equal(l, c[1]) && ast.Equal(r, c[0]))
}

func detectAndE(cur proof.Line, refs []proof.Line) bool {
	if !arity(refs, 1) {
		return false
	}
	r := refs[0].AST
	if r.Kind != ast.AndKind {
		return false
	}
	return ast.Equal(cur.AST, r.Left) || ast.Equal(cur.AST, r.Right)
}

func detectOrI(cur proof.Line, refs []proof.Line) bool {
	if !arity(refs, 1) {
		return false
	}
	if cur.AST.Kind != ast.OrKind {
		return false
	}
	r := refs[0].AST
	return ast.Equal(cur.AST.Left, r) || ast.Equal(cur.AST.Right, r)
}

func detectOrE(cur proof.Line, refs []proof.Line) bool {
	if !arity(refs, 5) {
		return false
	}
	disj, assumeA, conclA, assumeB, conclB := refs[0], refs[1], refs[2], refs[3], refs[4]
	if disj.AST.Kind != ast.OrKind {
		return false
	}
	if assumeA.AutoKind != proof.Assume || assumeB.AutoKind != proof.Assume {
		return false
	}
	a, b := disj.AST.Left, disj.AST.Right
	matched := (ast.Equal(assumeA.AST, a) && ast.Equal(assumeB.AST, b)) ||
		(ast.Equal(assumeA.AST, b) && ast.Equal(assumeB.AST, a))
	if !matched {
		return false
	}
	return ast.Equal(conclA.AST, cur.AST) && ast.Equal(conclB.AST, cur.AST)
}

func detectAbs(cur proof.Line, refs []proof.Line) bool {
	if !arity(refs, 1) {
		return false
	}
	r := refs[0].AST
	if r.Kind != ast.ImpliesKind {
		return false
	}
	a, b := r.Left, r.Right
	return ast.Equal(cur.AST, ast.Implies(a, ast.And(a, b)))
}

func detectCPA(cur proof.Line, refs []proof.Line) bool {
	if cur.AST.Kind != ast.ImpliesKind {
		return false
	}
	a, b := cur.AST.Left, cur.AST.Right
	foundA, foundB := false, false
	for _, r := range refs {
		if r.AutoKind == proof.Assume && ast.Equal(r.AST, a) {
			foundA = true
		}
		if ast.Equal(r.AST, b) {
			foundB = true
		}
	}
	return foundA && foundB
}

func detectRAA(cur proof.Line, refs []proof.Line) bool {
	if !arity(refs, 2) {
		return false
	}
	if cur.AST.Kind != ast.NotKind {
		return false
	}
	a := cur.AST.Left
	return raaMatch(a, refs[0], refs[1]) || raaMatch(a, refs[1], refs[0])
}

// raaMatch checks assumeRef is an Assume line with AST a, and contraRef's
// AST is X∧¬X for some X (in either order).
func raaMatch(a *ast.Node, assumeRef, contraRef proof.Line) bool {
	if assumeRef.AutoKind != proof.Assume || !ast.Equal(assumeRef.AST, a) {
		return false
	}
	c := contraRef.AST
	if c.Kind != ast.AndKind {
		return false
	}
	x, y := c.Left, c.Right
	if y.Kind == ast.NotKind && ast.Equal(y.Left, x) {
		return true
	}
	if x.Kind == ast.NotKind && ast.Equal(x.Left, y) {
		return true
	}
	return false
}

func detectNotI(cur proof.Line, refs []proof.Line) bool {
	if cur.AST.Kind != ast.NotKind {
		return false
	}
	a := cur.AST.Left

	var implications []*ast.Node
	for _, r := range refs {
		if r.AST.Kind == ast.AndKind {
			implications = append(implications, r.AST.Left, r.AST.Right)
		} else {
			implications = append(implications, r.AST)
		}
	}

	for i := range implications {
		for j := range implications {
			if i == j {
				continue
			}
			imp1, imp2 := implications[i], implications[j]
			if imp1.Kind != ast.ImpliesKind || imp2.Kind != ast.ImpliesKind {
				continue
			}
			if !ast.Equal(imp1.Left, a) || !ast.Equal(imp2.Left, a) {
				continue
			}
			x, negX := imp1.Right, imp2.Right
			if negX.Kind == ast.NotKind && ast.Equal(negX.Left, x) {
				return true
			}
		}
	}
	return false
}
