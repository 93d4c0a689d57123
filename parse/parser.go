// Package parse implements a Shunting-Yard parser: tokens to reverse-Polish
// notation, then a second pass from RPN to an ast.Node tree. Grounded in
// spirit on the explicit operator/operand stacks of
// DolphyWind-SAT-Solver's parser.go, adapted to this package's own
// precedence table, associativity rules, and error catalogue.
package parse

import (
	"github.com/jafaripur/avicenna-logic-system/apperr"
	"github.com/jafaripur/avicenna-logic-system/ast"
	"github.com/jafaripur/avicenna-logic-system/token"
)

// precedence assigns binding power, highest first: ¬=5, ∧=4, ∨=⊕=3, →=2, ↔=1.
var precedence = map[token.Kind]int{
	token.OpNot:     5,
	token.OpAnd:     4,
	token.OpOr:      3,
	token.OpXor:     3,
	token.OpImplies: 2,
	token.OpIff:     1,
}

// rightAssoc is the set of right-associative operators: ¬ and →.
var rightAssoc = map[token.Kind]bool{
	token.OpNot:     true,
	token.OpImplies: true,
}

// ParseFormula parses a formula's surface syntax into an ast.Node.
func ParseFormula(text string) (*ast.Node, error) {
	toks, err := token.Tokenize(text)
	if err != nil {
		return nil, err
	}
	rpn, err := toRPN(toks)
	if err != nil {
		return nil, err
	}
	return fromRPN(rpn)
}

// toRPN runs the Shunting-Yard algorithm, producing tokens in reverse-Polish
// order.
func toRPN(toks []token.Token) ([]token.Token, error) {
	var output []token.Token
	var ops []token.Token

	popHigherOrEqual := func(t token.Token) {
		for len(ops) > 0 {
			top := ops[len(ops)-1]
			if !top.IsOperator() {
				break
			}
			topPrec, curPrec := precedence[top.Kind], precedence[t.Kind]
			if topPrec > curPrec || (topPrec == curPrec && !rightAssoc[t.Kind]) {
				output = append(output, top)
				ops = ops[:len(ops)-1]
				continue
			}
			break
		}
	}

	for _, t := range toks {
		switch {
		case t.Kind == token.Ident:
			output = append(output, t)
		case t.Kind == token.LParen:
			ops = append(ops, t)
		case t.Kind == token.RParen:
			found := false
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.Kind == token.LParen {
					found = true
					break
				}
				output = append(output, top)
			}
			if !found {
				return nil, apperr.ErrUnbalancedParens
			}
		case t.IsOperator():
			popHigherOrEqual(t)
			ops = append(ops, t)
		default:
			return nil, apperr.ErrUnknownOperator
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.Kind == token.LParen {
			return nil, apperr.ErrUnbalancedParens
		}
		output = append(output, top)
	}

	return output, nil
}

// fromRPN builds an ast.Node from a reverse-Polish token stream: ¬ pops one
// operand, binary operators pop right then left so argument order survives
// for non-commutative operators such as →.
func fromRPN(rpn []token.Token) (*ast.Node, error) {
	var stack []*ast.Node

	pop := func() (*ast.Node, bool) {
		if len(stack) == 0 {
			return nil, false
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return n, true
	}

	for _, t := range rpn {
		switch t.Kind {
		case token.Ident:
			stack = append(stack, ast.Var(t.Text))
		case token.OpNot:
			operand, ok := pop()
			if !ok {
				return nil, apperr.ErrMissingNotOperand
			}
			stack = append(stack, ast.Not(operand))
		case token.OpAnd, token.OpOr, token.OpXor, token.OpImplies, token.OpIff:
			right, ok := pop()
			if !ok {
				return nil, apperr.ErrInsufficientOperands
			}
			left, ok := pop()
			if !ok {
				return nil, apperr.ErrInsufficientOperands
			}
			stack = append(stack, buildBinary(t.Kind, left, right))
		default:
			return nil, apperr.ErrUnknownOperator
		}
	}

	if len(stack) != 1 {
		return nil, apperr.ErrMalformedExpression
	}
	return stack[0], nil
}

func buildBinary(k token.Kind, l, r *ast.Node) *ast.Node {
	switch k {
	case token.OpAnd:
		return ast.And(l, r)
	case token.OpOr:
		return ast.Or(l, r)
	case token.OpXor:
		return ast.Xor(l, r)
	case token.OpImplies:
		return ast.Implies(l, r)
	case token.OpIff:
		return ast.Iff(l, r)
	default:
		panic("parse: unreachable binary token kind")
	}
}
