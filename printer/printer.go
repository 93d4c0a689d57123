// Package printer renders an ast.Node to its canonical string form: a raw,
// fully-parenthesised assembly pass followed by a whitespace/outer-paren
// normalisation pass.
package printer

import (
	"strings"

	"github.com/jafaripur/avicenna-logic-system/ast"
)

var symbols = map[ast.Kind]string{
	ast.NotKind:     "¬",
	ast.AndKind:     "∧",
	ast.OrKind:      "∨",
	ast.XorKind:     "⊕",
	ast.ImpliesKind: "→",
	ast.IffKind:     "↔",
}

// Raw assembles n into a fully-parenthesised string with operators flush
// against their operands and no extraneous whitespace: binary nodes are
// "(L<op>R)", Not is "<op>X". Raw itself never strips redundant parens or
// inserts spacing — ToString does both in a second pass.
func Raw(n *ast.Node) string {
	var b strings.Builder
	writeRaw(&b, n)
	return b.String()
}

func writeRaw(b *strings.Builder, n *ast.Node) {
	switch n.Kind {
	case ast.VarKind:
		b.WriteString(n.Name)
	case ast.NotKind:
		b.WriteString(symbols[ast.NotKind])
		writeRaw(b, n.Left)
	default:
		b.WriteByte('(')
		writeRaw(b, n.Left)
		b.WriteString(symbols[n.Kind])
		writeRaw(b, n.Right)
		b.WriteByte(')')
	}
}

// ToString returns the canonical printed form of n: Raw followed by
// FormatSpacing.
func ToString(n *ast.Node) string {
	return FormatSpacing(Raw(n))
}
