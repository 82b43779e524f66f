// Package lexer tokenizes GraphQL request documents.
package lexer

import (
	"strings"
	"unicode"

	"github.com/cartforge/shopql/token"
)

// Lexer walks a GraphQL source string and produces tokens on demand.
type Lexer struct {
	input string
	pos   int  // index of ch
	next  int  // index after ch
	ch    byte // character under examination, 0 at end of input
}

// New returns a Lexer positioned at the start of input.
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.advance()
	return l
}

func (l *Lexer) advance() {
	if l.next >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.next]
	}
	l.pos = l.next
	l.next++
}

// NextToken returns the next token, or an EOF token once the input is
// exhausted.
func (l *Lexer) NextToken() token.Token {
	l.skipIgnored()

	var tok token.Token
	switch l.ch {
	case ':':
		tok = token.Token{Type: token.COLON, Literal: ":"}
	case ',':
		tok = token.Token{Type: token.COMMA, Literal: ","}
	case '(':
		tok = token.Token{Type: token.LPAREN, Literal: "("}
	case ')':
		tok = token.Token{Type: token.RPAREN, Literal: ")"}
	case '{':
		tok = token.Token{Type: token.LBRACE, Literal: "{"}
	case '}':
		tok = token.Token{Type: token.RBRACE, Literal: "}"}
	case '[':
		tok = token.Token{Type: token.LBRACKET, Literal: "["}
	case ']':
		tok = token.Token{Type: token.RBRACKET, Literal: "]"}
	case '$':
		tok = token.Token{Type: token.DOLLAR, Literal: "$"}
	case '!':
		tok = token.Token{Type: token.BANG, Literal: "!"}
	case '=':
		tok = token.Token{Type: token.EQUALS, Literal: "="}
	case '"':
		return l.readString()
	case 0:
		return token.Token{Type: token.EOF}
	default:
		if isNameStart(l.ch) {
			return l.readName()
		}
		if isDigit(l.ch) || l.ch == '-' {
			return l.readNumber()
		}
		tok = token.Token{Type: token.ILLEGAL, Literal: string(l.ch)}
	}
	l.advance()
	return tok
}

// skipIgnored consumes whitespace and "#" line comments, both of which are
// insignificant between GraphQL tokens.
func (l *Lexer) skipIgnored() {
	for {
		switch l.ch {
		case ' ', '\t', '\r', '\n':
			l.advance()
		case '#':
			for l.ch != '\n' && l.ch != 0 {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *Lexer) readName() token.Token {
	start := l.pos
	for isNameStart(l.ch) || isDigit(l.ch) {
		l.advance()
	}
	return token.Token{Type: token.IDENT, Literal: l.input[start:l.pos]}
}

// readNumber lexes an integer or float literal, including an optional
// leading minus and a fractional part.
func (l *Lexer) readNumber() token.Token {
	start := l.pos
	if l.ch == '-' {
		l.advance()
	}
	for isDigit(l.ch) {
		l.advance()
	}
	typ := token.INT
	if l.ch == '.' {
		typ = token.FLOAT
		l.advance()
		for isDigit(l.ch) {
			l.advance()
		}
	}
	return token.Token{Type: typ, Literal: l.input[start:l.pos]}
}

// readString lexes a double-quoted string literal. Supported escapes are the
// JSON ones clients actually send: \" \\ \/ \n \t \r.
func (l *Lexer) readString() token.Token {
	l.advance() // opening quote
	var b strings.Builder
	for l.ch != '"' && l.ch != 0 {
		if l.ch == '\\' {
			l.advance()
			switch l.ch {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteByte(l.ch)
			}
			l.advance()
			continue
		}
		b.WriteByte(l.ch)
		l.advance()
	}
	if l.ch == 0 {
		return token.Token{Type: token.ILLEGAL, Literal: b.String()}
	}
	l.advance() // closing quote
	return token.Token{Type: token.STRING, Literal: b.String()}
}

func isNameStart(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
