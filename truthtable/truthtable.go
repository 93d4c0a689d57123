// Package truthtable implements a truth-table analyser: variable
// collection, assignment enumeration, per-line and per-subexpression
// evaluation, classification, and validity checking with counter-examples.
package truthtable

import (
	"runtime"
	"sync"

	"github.com/jafaripur/avicenna-logic-system/ast"
	"github.com/jafaripur/avicenna-logic-system/printer"
	"github.com/jafaripur/avicenna-logic-system/proof"
	"github.com/jafaripur/avicenna-logic-system/subexpr"
)

// Classification is the reduction of a formula's full truth-vector.
type Classification int

const (
	Tautology Classification = iota
	Contradiction
	Contingent
)

func (c Classification) String() string {
	switch c {
	case Tautology:
		return "Tautology"
	case Contradiction:
		return "Contradiction"
	default:
		return "Contingent"
	}
}

// EntryResult is one row of PerLine or PerSubexpr: a printed expression,
// its truth vector (indexed the same way as Result.Combinations), and the
// classification reduced from that vector.
type EntryResult struct {
	Expression     string
	Results        []bool
	Classification Classification
}

// Result is the full output of Analyse.
type Result struct {
	Variables       []string
	Combinations    [][]bool
	PerLine         []EntryResult
	PerSubexpr      []EntryResult
	Valid           bool
	CounterExamples []ast.Assignment
}

// Analyse builds the Result for a deduction (or a single formula, or a
// sequent's premises + conclusion, all represented the same way: a slice
// of proof.Line). The premises are every line with AutoKind ==
// proof.Premise; the conclusion is the last line of lines, regardless of
// its kind.
func Analyse(lines []proof.Line) Result {
	variables := collectVariables(linesToRoots(lines))
	n := len(variables)
	total := 1 << n

	combinations := make([][]bool, total)
	assignments := make([]ast.Assignment, total)
	for i := 0; i < total; i++ {
		combo := make([]bool, n)
		a := make(ast.Assignment, n)
		for k := 0; k < n; k++ {
			bit := (i >> (n - 1 - k)) & 1
			v := bit != 0
			combo[k] = v
			a[variables[k]] = v
		}
		combinations[i] = combo
		assignments[i] = a
	}

	perLine := make([]EntryResult, len(lines))
	evaluateAll(lines2Nodes(lines), assignments, func(idx int, results []bool) {
		perLine[idx] = EntryResult{
			Expression:     printer.ToString(lines[idx].AST),
			Results:        results,
			Classification: classify(results),
		}
	})

	subs := subexpr.Collect(linesToRoots(lines))
	stableSortByDepth(subs)
	perSub := make([]EntryResult, len(subs))
	evaluateAll(subs, assignments, func(idx int, results []bool) {
		perSub[idx] = EntryResult{
			Expression:     printer.ToString(subs[idx]),
			Results:        results,
			Classification: classify(results),
		}
	})

	valid, counterExamples := checkValidity(lines, assignments)

	return Result{
		Variables:       variables,
		Combinations:    combinations,
		PerLine:         perLine,
		PerSubexpr:      perSub,
		Valid:           valid,
		CounterExamples: counterExamples,
	}
}

func linesToRoots(lines []proof.Line) []*ast.Node {
	roots := make([]*ast.Node, len(lines))
	for i, l := range lines {
		roots[i] = l.AST
	}
	return roots
}

func lines2Nodes(lines []proof.Line) []*ast.Node {
	return linesToRoots(lines)
}

// evaluateAll evaluates every node in nodes over every assignment. The
// per-assignment loop is embarrassingly data-parallel; work is handed out
// one node at a time to a worker pool bounded by
// runtime.NumCPU() (never more workers than nodes), and each worker writes
// its node's result slice by index so ordering stays aligned with the
// assignment enumeration regardless of completion order.
func evaluateAll(nodes []*ast.Node, assignments []ast.Assignment, store func(idx int, results []bool)) {
	allResults := make([][]bool, len(nodes))
	jobs := make(chan int)

	workers := runtime.NumCPU()
	if workers > len(nodes) {
		workers = len(nodes)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				n := nodes[idx]
				results := make([]bool, len(assignments))
				for i, a := range assignments {
					results[i] = ast.Evaluate(n, a)
				}
				allResults[idx] = results
			}
		}()
	}

	for idx := range nodes {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	for idx, results := range allResults {
		store(idx, results)
	}
}

func classify(results []bool) Classification {
	allTrue, allFalse := true, true
	for _, r := range results {
		if r {
			allFalse = false
		} else {
			allTrue = false
		}
	}
	switch {
	case allTrue:
		return Tautology
	case allFalse:
		return Contradiction
	default:
		return Contingent
	}
}

func checkValidity(lines []proof.Line, assignments []ast.Assignment) (bool, []ast.Assignment) {
	if len(lines) == 0 {
		return true, nil
	}
	var premises []*ast.Node
	for _, l := range lines {
		if l.AutoKind == proof.Premise {
			premises = append(premises, l.AST)
		}
	}
	conclusion := lines[len(lines)-1].AST

	var counterExamples []ast.Assignment
	for _, a := range assignments {
		allPremisesTrue := true
		for _, p := range premises {
			if !ast.Evaluate(p, a) {
				allPremisesTrue = false
				break
			}
		}
		if allPremisesTrue && !ast.Evaluate(conclusion, a) {
			counterExamples = append(counterExamples, a)
		}
	}
	return len(counterExamples) == 0, counterExamples
}
