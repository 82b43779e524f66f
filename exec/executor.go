// Package exec evaluates parsed GraphQL operations against a set of
// registered resolver functions.
package exec

import (
	"context"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/cartforge/shopql/ast"
	"github.com/cartforge/shopql/errs"
)

// ResolverFunc resolves one root field. args holds the field's arguments
// after variable substitution; request-scoped data (caller identity, auth
// flag) travels on ctx.
type ResolverFunc func(ctx context.Context, args map[string]interface{}) (interface{}, error)

// Executor dispatches operations to resolvers registered per root field.
// Instances are independent: there is no process-global registry, so tests
// and servers wire their own.
type Executor struct {
	queries       map[string]ResolverFunc
	mutations     map[string]ResolverFunc
	subscriptions map[string]ResolverFunc
}

// New returns an empty Executor.
func New() *Executor {
	return &Executor{
		queries:       make(map[string]ResolverFunc),
		mutations:     make(map[string]ResolverFunc),
		subscriptions: make(map[string]ResolverFunc),
	}
}

// Query registers a resolver for a root query field.
func (e *Executor) Query(field string, fn ResolverFunc) {
	e.queries[field] = fn
}

// Mutation registers a resolver for a root mutation field.
func (e *Executor) Mutation(field string, fn ResolverFunc) {
	e.mutations[field] = fn
}

// Subscription registers a resolver for a subscription field. The resolver
// must return a channel of events.
func (e *Executor) Subscription(field string, fn ResolverFunc) {
	e.subscriptions[field] = fn
}

// Execute runs the document's first operation and returns the data map,
// keyed by root field name. Results are shaped by each field's selection
// set before being returned.
func (e *Executor) Execute(ctx context.Context, doc *ast.Document, vars map[string]interface{}) (map[string]interface{}, error) {
	op := doc.First()
	if op == nil {
		return nil, errs.New(errs.InvalidInput, "document contains no operations")
	}

	var resolvers map[string]ResolverFunc
	switch op.Kind {
	case ast.Query:
		resolvers = e.queries
	case ast.Mutation:
		resolvers = e.mutations
	default:
		return nil, errs.Newf(errs.InvalidInput, "operation kind %q cannot be executed over HTTP", op.Kind)
	}

	data := make(map[string]interface{})
	for _, field := range op.Selection.Fields {
		fn, ok := resolvers[field.Name]
		if !ok {
			return nil, errs.Newf(errs.InvalidInput, "no %s resolver for field %q", op.Kind, field.Name)
		}
		res, err := fn(ctx, argumentValues(field, vars))
		if err != nil {
			return nil, err
		}
		data[field.Name] = project(res, field.Selection)
	}
	return data, nil
}

// Subscribe resolves a subscription field to its event channel.
func (e *Executor) Subscribe(ctx context.Context, field *ast.Field, vars map[string]interface{}) (<-chan interface{}, error) {
	fn, ok := e.subscriptions[field.Name]
	if !ok {
		return nil, errs.Newf(errs.InvalidInput, "no subscription resolver for field %q", field.Name)
	}
	res, err := fn(ctx, argumentValues(field, vars))
	if err != nil {
		return nil, err
	}
	switch ch := res.(type) {
	case <-chan interface{}:
		return ch, nil
	case chan interface{}:
		return ch, nil
	}
	return nil, errors.Errorf("subscription resolver %q did not return a channel", field.Name)
}

// Project shapes a resolved value by a selection set: structs and slices of
// structs are cut down to the requested fields, scalars pass through.
func Project(res interface{}, sel *ast.SelectionSet) interface{} {
	return project(res, sel)
}

func project(res interface{}, sel *ast.SelectionSet) interface{} {
	if sel == nil || res == nil {
		return res
	}
	v := reflect.ValueOf(res)
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return nil
		}
		return project(v.Elem().Interface(), sel)
	case reflect.Struct:
		out := make(map[string]interface{}, len(sel.Fields))
		for _, f := range sel.Fields {
			fv, ok := structField(v, f.Name)
			if !ok {
				out[f.Name] = nil
				continue
			}
			out[f.Name] = project(fv, f.Selection)
		}
		return out
	case reflect.Slice:
		out := make([]interface{}, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			out = append(out, project(v.Index(i).Interface(), sel))
		}
		return out
	}
	return res
}

// structField finds a struct field by GraphQL name, matching the json tag
// first and falling back to a case-insensitive field-name match.
func structField(v reflect.Value, name string) (interface{}, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if tag, ok := sf.Tag.Lookup("json"); ok {
			if tagName := strings.Split(tag, ",")[0]; tagName == name {
				return v.Field(i).Interface(), true
			}
		}
	}
	for i := 0; i < t.NumField(); i++ {
		if strings.EqualFold(t.Field(i).Name, name) {
			return v.Field(i).Interface(), true
		}
	}
	return nil, false
}

// argumentValues materializes a field's arguments, substituting variables.
func argumentValues(field *ast.Field, vars map[string]interface{}) map[string]interface{} {
	args := make(map[string]interface{}, len(field.Arguments))
	for _, arg := range field.Arguments {
		args[arg.Name] = literalValue(arg.Value, vars)
	}
	return args
}

func literalValue(v *ast.Value, vars map[string]interface{}) interface{} {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case ast.IntValue:
		n, err := strconv.Atoi(v.Literal)
		if err != nil {
			return 0
		}
		return n
	case ast.FloatValue:
		f, err := strconv.ParseFloat(v.Literal, 64)
		if err != nil {
			return 0.0
		}
		return f
	case ast.StringValue, ast.EnumValue:
		return v.Literal
	case ast.BooleanValue:
		return v.Literal == "true"
	case ast.NullValue:
		return nil
	case ast.VariableValue:
		return vars[v.Literal]
	case ast.ObjectValue:
		m := make(map[string]interface{}, len(v.Object))
		for k, fv := range v.Object {
			m[k] = literalValue(fv, vars)
		}
		return m
	case ast.ListValue:
		list := make([]interface{}, 0, len(v.List))
		for _, el := range v.List {
			list = append(list, literalValue(el, vars))
		}
		return list
	}
	return nil
}
