package token

import (
	"errors"
	"testing"

	"github.com/jafaripur/avicenna-logic-system/apperr"
)

func TestTokenizeParensAndIdent(t *testing.T) {
	toks, err := Tokenize("(P)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Token{
		{Kind: LParen},
		{Kind: Ident, Text: "P"},
		{Kind: RParen},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Errorf("token %d = %+v, want %+v", i, toks[i], want[i])
		}
	}
}

func TestTokenizeSkipsWhitespace(t *testing.T) {
	toks, err := Tokenize("  P   Q ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 2 || toks[0].Text != "P" || toks[1].Text != "Q" {
		t.Fatalf("got %+v, want two identifiers P and Q", toks)
	}
}

func TestTokenizeIdentifierAllowsDigitsAndUnderscore(t *testing.T) {
	toks, err := Tokenize("P_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].Kind != Ident || toks[0].Text != "P_1" {
		t.Fatalf("got %+v, want a single Ident %q", toks, "P_1")
	}
}

func TestTokenizeSymbolAliases(t *testing.T) {
	cases := []struct {
		text string
		kind Kind
	}{
		{"¬", OpNot}, {"~", OpNot}, {"!", OpNot},
		{"∧", OpAnd}, {"&", OpAnd}, {"&&", OpAnd}, {"/\\", OpAnd},
		{"∨", OpOr}, {"|", OpOr}, {"||", OpOr}, {"\\/", OpOr},
		{"⊕", OpXor}, {"⊻", OpXor},
		{"→", OpImplies}, {"->", OpImplies},
		{"↔", OpIff}, {"<->", OpIff}, {"≡", OpIff},
	}
	for _, c := range cases {
		toks, err := Tokenize("P" + c.text + "Q")
		if err != nil {
			t.Errorf("%q: unexpected error: %v", c.text, err)
			continue
		}
		if len(toks) != 3 {
			t.Errorf("%q: got %d tokens, want 3: %+v", c.text, len(toks), toks)
			continue
		}
		if toks[1].Kind != c.kind {
			t.Errorf("%q: operator kind = %v, want %v", c.text, toks[1].Kind, c.kind)
		}
		if toks[1].Text != canonicalSymbol[c.kind] {
			t.Errorf("%q: operator text = %q, want canonical %q", c.text, toks[1].Text, canonicalSymbol[c.kind])
		}
	}
}

func TestTokenizeAmbiguousArrowPrefersLongerAlias(t *testing.T) {
	// "<->" must not be tokenized as "<" (invalid) followed by "->".
	toks, err := Tokenize("P<->Q")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 3 || toks[1].Kind != OpIff {
		t.Fatalf("got %+v, want [Ident OpIff Ident]", toks)
	}
}

func TestTokenizeWordAliasesAreCaseInsensitiveWholeWords(t *testing.T) {
	toks, err := Tokenize("P and Q")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 3 || toks[1].Kind != OpAnd {
		t.Fatalf("got %+v, want [Ident OpAnd Ident]", toks)
	}

	// "ANDY" must not be split into the AND operator plus a stray "Y".
	toks, err = Tokenize("ANDY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].Kind != Ident || toks[0].Text != "ANDY" {
		t.Fatalf("got %+v, want a single Ident %q", toks, "ANDY")
	}
}

func TestTokenizeRejectsInvalidCharacter(t *testing.T) {
	_, err := Tokenize("P @ Q")
	if !errors.Is(err, apperr.ErrInvalidCharacter) {
		t.Fatalf("got %v, want apperr.ErrInvalidCharacter", err)
	}
}

func TestTokenIsOperatorAndIsUnary(t *testing.T) {
	not := Token{Kind: OpNot}
	if !not.IsOperator() || !not.IsUnary() {
		t.Error("OpNot should be an operator and unary")
	}
	and := Token{Kind: OpAnd}
	if !and.IsOperator() || and.IsUnary() {
		t.Error("OpAnd should be an operator but not unary")
	}
	ident := Token{Kind: Ident}
	if ident.IsOperator() {
		t.Error("Ident should not be an operator")
	}
}
