// Package parser turns lexed GraphQL tokens into an ast.Document.
package parser

import (
	"github.com/cartforge/shopql/ast"
	"github.com/cartforge/shopql/lexer"
	"github.com/cartforge/shopql/token"
)

// Parser is a two-token lookahead recursive-descent parser for the request
// subset of GraphQL: operations, variables, selection sets, and argument
// literals. Schema definition language is not accepted here.
type Parser struct {
	l    *lexer.Lexer
	cur  token.Token
	peek token.Token
}

// New returns a Parser reading from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

// ParseDocument parses the whole input. Unrecognized top-level tokens are
// skipped so a malformed document yields an empty operation list rather
// than an infinite loop.
func (p *Parser) ParseDocument() *ast.Document {
	doc := &ast.Document{}
	for p.cur.Type != token.EOF {
		switch {
		case p.cur.Type == token.IDENT && p.cur.Literal == string(ast.Query),
			p.cur.Type == token.IDENT && p.cur.Literal == string(ast.Mutation),
			p.cur.Type == token.IDENT && p.cur.Literal == string(ast.Subscription),
			p.cur.Type == token.LBRACE:
			if op := p.parseOperation(); op != nil {
				doc.Operations = append(doc.Operations, op)
			}
		default:
			p.next()
		}
	}
	return doc
}

func (p *Parser) parseOperation() *ast.Operation {
	op := &ast.Operation{Kind: ast.Query}
	if p.cur.Type == token.IDENT {
		op.Kind = ast.OperationKind(p.cur.Literal)
		p.next()
		if p.cur.Type == token.IDENT {
			op.Name = p.cur.Literal
			p.next()
		}
		if p.cur.Type == token.LPAREN {
			op.Variables = p.parseVariableDefinitions()
		}
	}
	if p.cur.Type != token.LBRACE {
		return nil
	}
	op.Selection = p.parseSelectionSet()
	return op
}

func (p *Parser) parseVariableDefinitions() []ast.VariableDefinition {
	var defs []ast.VariableDefinition
	p.next() // '('
	for p.cur.Type != token.RPAREN && p.cur.Type != token.EOF {
		if p.cur.Type != token.DOLLAR {
			p.next()
			continue
		}
		p.next() // '$'
		if p.cur.Type != token.IDENT {
			continue
		}
		def := ast.VariableDefinition{Name: p.cur.Literal}
		p.next()
		if p.cur.Type == token.COLON {
			p.next()
			if t := p.parseType(); t != nil {
				def.Type = *t
			}
		}
		// Skip a default value if one is declared.
		if p.cur.Type == token.EQUALS {
			p.next()
			p.parseValue()
		}
		defs = append(defs, def)
		if p.cur.Type == token.COMMA {
			p.next()
		}
	}
	p.next() // ')'
	return defs
}

func (p *Parser) parseType() *ast.Type {
	if p.cur.Type == token.LBRACKET {
		p.next() // '['
		t := &ast.Type{IsList: true, Elem: p.parseType()}
		if p.cur.Type == token.RBRACKET {
			p.next()
		}
		if p.cur.Type == token.BANG {
			t.NonNull = true
			p.next()
		}
		return t
	}
	if p.cur.Type != token.IDENT {
		return nil
	}
	t := &ast.Type{Name: p.cur.Literal}
	p.next()
	if p.cur.Type == token.BANG {
		t.NonNull = true
		p.next()
	}
	return t
}

func (p *Parser) parseSelectionSet() *ast.SelectionSet {
	ss := &ast.SelectionSet{}
	p.next() // '{'
	for p.cur.Type != token.RBRACE && p.cur.Type != token.EOF {
		if f := p.parseField(); f != nil {
			ss.Fields = append(ss.Fields, f)
		} else {
			p.next()
		}
		if p.cur.Type == token.COMMA {
			p.next()
		}
	}
	p.next() // '}'
	return ss
}

func (p *Parser) parseField() *ast.Field {
	if p.cur.Type != token.IDENT {
		return nil
	}
	f := &ast.Field{Name: p.cur.Literal}
	p.next()
	if p.cur.Type == token.LPAREN {
		f.Arguments = p.parseArguments()
	}
	if p.cur.Type == token.LBRACE {
		f.Selection = p.parseSelectionSet()
	}
	return f
}

func (p *Parser) parseArguments() []ast.Argument {
	var args []ast.Argument
	p.next() // '('
	for p.cur.Type != token.RPAREN && p.cur.Type != token.EOF {
		if p.cur.Type != token.IDENT {
			p.next()
			continue
		}
		arg := ast.Argument{Name: p.cur.Literal}
		p.next()
		if p.cur.Type == token.COLON {
			p.next()
			arg.Value = p.parseValue()
		}
		args = append(args, arg)
		if p.cur.Type == token.COMMA {
			p.next()
		}
	}
	p.next() // ')'
	return args
}

func (p *Parser) parseValue() *ast.Value {
	switch p.cur.Type {
	case token.LBRACE:
		return p.parseObjectValue()
	case token.LBRACKET:
		return p.parseListValue()
	case token.INT:
		v := &ast.Value{Kind: ast.IntValue, Literal: p.cur.Literal}
		p.next()
		return v
	case token.FLOAT:
		v := &ast.Value{Kind: ast.FloatValue, Literal: p.cur.Literal}
		p.next()
		return v
	case token.STRING:
		v := &ast.Value{Kind: ast.StringValue, Literal: p.cur.Literal}
		p.next()
		return v
	case token.DOLLAR:
		p.next() // '$'
		v := &ast.Value{Kind: ast.VariableValue}
		if p.cur.Type == token.IDENT {
			v.Literal = p.cur.Literal
			p.next()
		}
		return v
	case token.IDENT:
		v := &ast.Value{Literal: p.cur.Literal}
		switch p.cur.Literal {
		case "true", "false":
			v.Kind = ast.BooleanValue
		case "null":
			v.Kind = ast.NullValue
		default:
			v.Kind = ast.EnumValue
		}
		p.next()
		return v
	default:
		v := &ast.Value{Kind: ast.IllegalValue, Literal: p.cur.Literal}
		p.next()
		return v
	}
}

func (p *Parser) parseObjectValue() *ast.Value {
	fields := make(map[string]*ast.Value)
	p.next() // '{'
	for p.cur.Type != token.RBRACE && p.cur.Type != token.EOF {
		if p.cur.Type != token.IDENT {
			return &ast.Value{Kind: ast.IllegalValue, Literal: "expected object key"}
		}
		key := p.cur.Literal
		p.next()
		if p.cur.Type != token.COLON {
			return &ast.Value{Kind: ast.IllegalValue, Literal: "expected ':' in object"}
		}
		p.next()
		fields[key] = p.parseValue()
		if p.cur.Type == token.COMMA {
			p.next()
		}
	}
	p.next() // '}'
	return &ast.Value{Kind: ast.ObjectValue, Object: fields}
}

func (p *Parser) parseListValue() *ast.Value {
	var list []*ast.Value
	p.next() // '['
	for p.cur.Type != token.RBRACKET && p.cur.Type != token.EOF {
		list = append(list, p.parseValue())
		if p.cur.Type == token.COMMA {
			p.next()
		}
	}
	p.next() // ']'
	return &ast.Value{Kind: ast.ListValue, List: list}
}
