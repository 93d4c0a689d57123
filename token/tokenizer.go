package token

import (
	"strings"
	"unicode"

	"github.com/jafaripur/avicenna-logic-system/apperr"
)

// symbolAlias is a fixed-text operator spelling, tried longest-first so that
// e.g. "<->" is recognised before its "->" suffix is mistaken for →.
type symbolAlias struct {
	text string
	kind Kind
}

var symbolAliases = []symbolAlias{
	{"<->", OpIff},
	{"->", OpImplies},
	{"&&", OpAnd},
	{"||", OpOr},
	{"/\\", OpAnd},
	{"\\/", OpOr},
	{"&", OpAnd},
	{"|", OpOr},
	{"~", OpNot},
	{"!", OpNot},
	{"¬", OpNot},
	{"∧", OpAnd},
	{"∨", OpOr},
	{"⊕", OpXor},
	{"⊻", OpXor},
	{"→", OpImplies},
	{"↔", OpIff},
	{"≡", OpIff},
}

// wordAliases are recognised case-insensitively only when they consume an
// entire identifier run, so "AND" is an operator but "ANDY" is a variable.
var wordAliases = map[string]Kind{
	"NOT": OpNot,
	"AND": OpAnd,
	"OR":  OpOr,
	"XOR": OpXor,
	"IMP": OpImplies,
	"EQ":  OpIff,
}

var canonicalSymbol = map[Kind]string{
	OpNot:     "¬",
	OpAnd:     "∧",
	OpOr:      "∨",
	OpXor:     "⊕",
	OpImplies: "→",
	OpIff:     "↔",
}

// Tokenize converts a formula's surface syntax into canonical tokens.
func Tokenize(s string) ([]Token, error) {
	runes := []rune(s)
	n := len(runes)
	var toks []Token

	for i := 0; i < n; {
		r := runes[i]

		if unicode.IsSpace(r) {
			i++
			continue
		}
		if r == '(' {
			toks = append(toks, Token{Kind: LParen})
			i++
			continue
		}
		if r == ')' {
			toks = append(toks, Token{Kind: RParen})
			i++
			continue
		}
		if isIdentRune(r) {
			j := i
			for j < n && isIdentRune(runes[j]) {
				j++
			}
			word := string(runes[i:j])
			if kind, ok := wordAliases[strings.ToUpper(word)]; ok {
				toks = append(toks, Token{Kind: kind, Text: canonicalSymbol[kind]})
			} else {
				toks = append(toks, Token{Kind: Ident, Text: word})
			}
			i = j
			continue
		}

		if kind, width, ok := matchSymbolAlias(runes[i:]); ok {
			toks = append(toks, Token{Kind: kind, Text: canonicalSymbol[kind]})
			i += width
			continue
		}

		return nil, apperr.ErrInvalidCharacter
	}

	return toks, nil
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// matchSymbolAlias tries every symbolic alias at the start of rest, longest
// text first, and returns the matching kind and its width in runes.
func matchSymbolAlias(rest []rune) (Kind, int, bool) {
	for _, alias := range symbolAliases {
		w := []rune(alias.text)
		if len(w) > len(rest) {
			continue
		}
		if string(rest[:len(w)]) == alias.text {
			return alias.kind, len(w), true
		}
	}
	return 0, 0, false
}
