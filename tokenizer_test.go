package main

import "testing"

func tokenTypes(toks []Token) []TokenType {
	out := make([]TokenType, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestTokenizeKeywordsAndPunctuation(t *testing.T) {
	diags := NewDiagnosticManager()
	toks := Tokenize("int x; if (x) { return x; }", diags)
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Diagnostics)
	}
	want := []TokenType{
		TokenInt, TokenIdentifier, TokenSemi,
		TokenIf, TokenLParen, TokenIdentifier, TokenRParen,
		TokenLBrace, TokenReturn, TokenIdentifier, TokenSemi, TokenRBrace,
		TokenEOF,
	}
	got := tokenTypes(toks)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, TokenTypeName(got[i]), TokenTypeName(want[i]))
		}
	}
}

func TestTokenizeCompoundOperators(t *testing.T) {
	diags := NewDiagnosticManager()
	toks := Tokenize("a += 1; b <<= 2; c == d; e != f; g <= h; i >= j;", diags)
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Diagnostics)
	}
	want := []TokenType{
		TokenIdentifier, TokenPlusEq, TokenIntLit, TokenSemi,
		TokenIdentifier, TokenLShiftEq, TokenIntLit, TokenSemi,
		TokenIdentifier, TokenEqual, TokenIdentifier, TokenSemi,
		TokenIdentifier, TokenNotEqual, TokenIdentifier, TokenSemi,
		TokenIdentifier, TokenLessEq, TokenIdentifier, TokenSemi,
		TokenIdentifier, TokenGreaterEq, TokenIdentifier, TokenSemi,
		TokenEOF,
	}
	got := tokenTypes(toks)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, TokenTypeName(got[i]), TokenTypeName(want[i]))
		}
	}
}

func TestTokenizeStringLiteral(t *testing.T) {
	diags := NewDiagnosticManager()
	toks := Tokenize(`printf("%i\n", 1);`, diags)
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Diagnostics)
	}
	if toks[0].Type != TokenIdentifier || toks[0].Value != "printf" {
		t.Fatalf("token 0 = %+v", toks[0])
	}
	if toks[2].Type != TokenStringLit {
		t.Fatalf("token 2 type = %s, want string literal", TokenTypeName(toks[2].Type))
	}
	if toks[2].Value != `"%i\n"` {
		t.Errorf("string literal raw = %q, want %q", toks[2].Value, `"%i\n"`)
	}
}

func TestTokenizeLineTracking(t *testing.T) {
	diags := NewDiagnosticManager()
	toks := Tokenize("int a;\nint b;\n", diags)
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Diagnostics)
	}
	var secondLine int
	for _, tok := range toks {
		if tok.Type == TokenIdentifier && tok.Value == "b" {
			secondLine = tok.Line
		}
	}
	if secondLine != 2 {
		t.Errorf("'b' reported on line %d, want 2", secondLine)
	}
}
