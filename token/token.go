package token

// Type identifies the kind of a lexed token.
type Type string

const (
	ILLEGAL Type = "ILLEGAL"
	EOF     Type = "EOF"

	// Identifiers and literals.
	IDENT  Type = "IDENT"
	INT    Type = "INT"
	FLOAT  Type = "FLOAT"
	STRING Type = "STRING"

	// Punctuators.
	COLON    Type = ":"
	COMMA    Type = ","
	LPAREN   Type = "("
	RPAREN   Type = ")"
	LBRACE   Type = "{"
	RBRACE   Type = "}"
	LBRACKET Type = "["
	RBRACKET Type = "]"
	DOLLAR   Type = "$"
	BANG     Type = "!"
	EQUALS   Type = "="
)

// Token is a single lexical element of a GraphQL document.
type Token struct {
	Type    Type
	Literal string
}
