// Package satcheck provides an independent, SAT-based cross-check of an
// argument's semantic validity, wired against github.com/go-air/gini via a
// circuit-to-CNF encoding (github.com/go-air/gini/logic.C). The brute-force
// truth-table analyser and this package share no code path, so agreement
// between them is a meaningful soundness check.
package satcheck

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/jafaripur/avicenna-logic-system/ast"
)

// Result is the outcome of checking premises ⊨ conclusion by asking
// whether premises ∧ ¬conclusion is satisfiable.
type Result struct {
	// Valid is true iff premises ∧ ¬conclusion is unsatisfiable.
	Valid bool
	// CounterExample is the satisfying assignment gini found when Valid is
	// false — a witness that premises can all hold while conclusion fails.
	CounterExample ast.Assignment
}

// Check builds premises ∧ ¬conclusion as a boolean circuit, converts it to
// CNF, and solves it with gini.
func Check(premises []*ast.Node, conclusion *ast.Node) Result {
	c := logic.NewC()
	vars := make(map[string]z.Lit)

	var build func(n *ast.Node) z.Lit
	build = func(n *ast.Node) z.Lit {
		switch n.Kind {
		case ast.VarKind:
			lit, ok := vars[n.Name]
			if !ok {
				lit = c.Lit()
				vars[n.Name] = lit
			}
			return lit
		case ast.NotKind:
			return build(n.Left).Not()
		case ast.AndKind:
			return c.Ands(build(n.Left), build(n.Right))
		case ast.OrKind:
			return c.Ors(build(n.Left), build(n.Right))
		case ast.ImpliesKind:
			return c.Ors(build(n.Left).Not(), build(n.Right))
		case ast.XorKind:
			l, r := build(n.Left), build(n.Right)
			return c.Ors(c.Ands(l, r.Not()), c.Ands(l.Not(), r))
		case ast.IffKind:
			l, r := build(n.Left), build(n.Right)
			return c.Ors(c.Ands(l, r), c.Ands(l.Not(), r.Not()))
		default:
			panic("satcheck: unknown node kind")
		}
	}

	lits := make([]z.Lit, 0, len(premises)+1)
	for _, p := range premises {
		lits = append(lits, build(p))
	}
	lits = append(lits, build(conclusion).Not())
	formula := c.Ands(lits...)

	g := gini.New()
	c.ToCnf(g)
	g.Assume(formula)

	if g.Solve() != 1 {
		return Result{Valid: true}
	}

	ce := make(ast.Assignment, len(vars))
	for name, lit := range vars {
		ce[name] = g.Value(lit)
	}
	return Result{Valid: false, CounterExample: ce}
}
