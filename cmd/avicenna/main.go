// Command avicenna is a thin CLI over the analysis library: it reads a
// Lemmon-style deduction (or, with -formula, a single bare formula) from
// stdin or a file argument, runs it through avicenna.Analyse, and prints
// the per-line classification and the final verdict. Colorized output is
// gated on github.com/mattn/go-isatty, same as the "-no-color" flag below.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/jafaripur/avicenna-logic-system"
	"github.com/jafaripur/avicenna-logic-system/proof"
	"github.com/jafaripur/avicenna-logic-system/truthtable"
)

func main() {
	var (
		formula  = flag.Bool("formula", false, "treat the input as a single formula instead of a Lemmon deduction")
		noColor  = flag.Bool("no-color", false, "disable colorized output even on a terminal")
		sat      = flag.Bool("sat", false, "cross-check validity against the SAT-based verifier")
		validate = flag.Bool("validate", true, "cross-check every line's cited rule against the detector before analysing")
	)
	flag.Parse()

	colors := newColors(!*noColor && isatty.IsTerminal(os.Stdout.Fd()))

	var src io.Reader = os.Stdin
	if args := flag.Args(); len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, colors.err(err.Error()))
			os.Exit(1)
		}
		defer f.Close()
		src = f
	}

	if err := run(src, os.Stdout, *formula, *sat, *validate, colors); err != nil {
		fmt.Fprintln(os.Stderr, colors.err(err.Error()))
		os.Exit(1)
	}
}

func run(src io.Reader, out io.Writer, singleFormula, verifySAT, validate bool, colors *colors) error {
	text, err := io.ReadAll(src)
	if err != nil {
		return err
	}

	var lines []proof.Line
	if singleFormula {
		n, err := avicenna.ParseFormula(avicenna.Propositional, string(text))
		if err != nil {
			return err
		}
		lines = []proof.Line{{Number: 1, AST: n}}
	} else {
		lines, err = avicenna.ParseLemmon(avicenna.Propositional, string(text))
		if err != nil {
			return err
		}
		if validate {
			if err := avicenna.ValidateDeduction(lines); err != nil {
				return err
			}
		}
	}

	result := avicenna.Analyse(lines)
	if verifySAT {
		if err := avicenna.VerifySAT(lines, result); err != nil {
			return fmt.Errorf("sat cross-check: %w", err)
		}
	}

	printResult(out, result, colors)
	return nil
}

func printResult(out io.Writer, result truthtable.Result, colors *colors) {
	for _, entry := range result.PerLine {
		fmt.Fprintf(out, "%s  %s\n", entry.Expression, colors.classification(entry.Classification))
	}
	fmt.Fprintln(out, colors.verdict(result.Valid))
}
