package lexer

import (
	"testing"

	"github.com/cartforge/shopql/token"
)

func TestLexer_Numbers(t *testing.T) {
	input := "42 9.99 -3 -0.5"
	l := New(input)

	want := []token.Token{
		{Type: token.INT, Literal: "42"},
		{Type: token.FLOAT, Literal: "9.99"},
		{Type: token.INT, Literal: "-3"},
		{Type: token.FLOAT, Literal: "-0.5"},
		{Type: token.EOF},
	}
	for i, w := range want {
		tok := l.NextToken()
		if tok.Type != w.Type {
			t.Fatalf("token %d: expected type %s, got %s", i, w.Type, tok.Type)
		}
		if tok.Literal != w.Literal {
			t.Errorf("token %d: expected literal %q, got %q", i, w.Literal, tok.Literal)
		}
	}
}

func TestLexer_Strings(t *testing.T) {
	input := `"hello world" "say \"hi\""`
	l := New(input)

	tok := l.NextToken()
	if tok.Type != token.STRING || tok.Literal != "hello world" {
		t.Errorf("expected STRING 'hello world', got %s %q", tok.Type, tok.Literal)
	}

	tok = l.NextToken()
	if tok.Type != token.STRING || tok.Literal != `say "hi"` {
		t.Errorf("expected escaped string, got %s %q", tok.Type, tok.Literal)
	}
}

func TestLexer_UnterminatedString(t *testing.T) {
	l := New(`"never closed`)
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Errorf("expected ILLEGAL for unterminated string, got %s", tok.Type)
	}
}

func TestLexer_Comments(t *testing.T) {
	input := "query # trailing words\n{ getProduct }"
	l := New(input)

	want := []token.Token{
		{Type: token.IDENT, Literal: "query"},
		{Type: token.LBRACE, Literal: "{"},
		{Type: token.IDENT, Literal: "getProduct"},
		{Type: token.RBRACE, Literal: "}"},
		{Type: token.EOF},
	}
	for i, w := range want {
		tok := l.NextToken()
		if tok.Type != w.Type || tok.Literal != w.Literal {
			t.Fatalf("token %d: expected %s %q, got %s %q", i, w.Type, w.Literal, tok.Type, tok.Literal)
		}
	}
}

func TestLexer_Punctuators(t *testing.T) {
	input := `($id: String!) { a, b }`
	l := New(input)

	types := []token.Type{
		token.LPAREN, token.DOLLAR, token.IDENT, token.COLON, token.IDENT,
		token.BANG, token.RPAREN, token.LBRACE, token.IDENT, token.COMMA,
		token.IDENT, token.RBRACE, token.EOF,
	}
	for i, w := range types {
		tok := l.NextToken()
		if tok.Type != w {
			t.Fatalf("token %d: expected %s, got %s (%q)", i, w, tok.Type, tok.Literal)
		}
	}
}

func TestLexer_IllegalCharacter(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL || tok.Literal != "@" {
		t.Errorf("expected ILLEGAL '@', got %s %q", tok.Type, tok.Literal)
	}
	if tok = l.NextToken(); tok.Type != token.EOF {
		t.Errorf("expected EOF after illegal token, got %s", tok.Type)
	}
}
