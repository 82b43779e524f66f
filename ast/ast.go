// Package ast defines the syntax tree for GraphQL request documents.
package ast

// Document is a parsed GraphQL document: one or more operation definitions.
type Document struct {
	Operations []*Operation
}

// First returns the document's first operation, or nil for an empty
// document. Execution only ever considers the first operation.
func (d *Document) First() *Operation {
	if len(d.Operations) == 0 {
		return nil
	}
	return d.Operations[0]
}

// OperationKind distinguishes queries, mutations, and subscriptions.
type OperationKind string

const (
	Query        OperationKind = "query"
	Mutation     OperationKind = "mutation"
	Subscription OperationKind = "subscription"
)

// Operation is a single executable operation. Anonymous shorthand documents
// ("{ ... }") parse as an unnamed query.
type Operation struct {
	Kind      OperationKind
	Name      string
	Variables []VariableDefinition
	Selection *SelectionSet
}

// VariableDefinition declares one operation variable and its type.
type VariableDefinition struct {
	Name string
	Type Type
}

// Type is a GraphQL type reference such as String, Int!, or [Order!]!.
type Type struct {
	Name    string
	NonNull bool
	IsList  bool
	Elem    *Type
}

// SelectionSet is the braced list of fields requested at one level.
type SelectionSet struct {
	Fields []*Field
}

// Field is one requested field, with any arguments and nested selections.
type Field struct {
	Name      string
	Arguments []Argument
	Selection *SelectionSet
}

// Argument is a name:value pair attached to a field.
type Argument struct {
	Name  string
	Value *Value
}

// ValueKind identifies what a literal Value holds.
type ValueKind int

const (
	IntValue ValueKind = iota
	FloatValue
	StringValue
	BooleanValue
	NullValue
	EnumValue
	VariableValue
	ObjectValue
	ListValue
	IllegalValue
)

// Value is an argument value literal. Exactly one of Literal, Object, or
// List carries the payload, depending on Kind.
type Value struct {
	Kind    ValueKind
	Literal string
	Object  map[string]*Value
	List    []*Value
}
