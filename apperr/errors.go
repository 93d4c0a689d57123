// Package apperr collects the sentinel error values surfaced by the parser,
// splitter, and Lemmon-line reader. The analyser and the rule detector never
// raise; a rule that cannot be detected simply reports no detection.
package apperr

import "errors"

var (
	// ErrInvalidConclusion is returned when a sequent does not contain
	// exactly one turnstile (⊢ or ∴).
	ErrInvalidConclusion = errors.New("invalid conclusion: expected exactly one turnstile")

	// ErrLemmonParse is returned when a line of a Lemmon-style deduction
	// does not match the expected "[refs] (n) formula [details]" shape.
	ErrLemmonParse = errors.New("lemmon parse error")

	// ErrUnbalancedParens is returned by the parser when a ")" has no
	// matching "(", or a "(" is left on the operator stack.
	ErrUnbalancedParens = errors.New("unbalanced parentheses")

	// ErrMissingNotOperand is returned when "¬" is applied with no operand
	// on the value stack.
	ErrMissingNotOperand = errors.New("missing operand for negation")

	// ErrInsufficientOperands is returned when a binary operator is
	// applied with fewer than two operands on the value stack.
	ErrInsufficientOperands = errors.New("insufficient operands for binary operator")

	// ErrUnknownOperator guards against an operator token the parser does
	// not know how to reduce; unreachable as long as the tokenizer only
	// emits the canonical operator set.
	ErrUnknownOperator = errors.New("unknown operator")

	// ErrMalformedExpression is returned when the operand stack does not
	// contain exactly one expression once the input is exhausted.
	ErrMalformedExpression = errors.New("malformed expression")

	// ErrUnsupportedLogicType is returned when a caller asks for analysis
	// of anything other than classical propositional logic.
	ErrUnsupportedLogicType = errors.New("unsupported logic type")

	// ErrInvalidCharacter is returned by the tokenizer for any character
	// that is not whitespace, a parenthesis, a recognised operator alias,
	// or part of a variable identifier. Not one of the named codes in the
	// original surface; see DESIGN.md.
	ErrInvalidCharacter = errors.New("invalid character")
)
