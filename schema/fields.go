// Package schema is the declarative side of the API: one canonical field
// descriptor table per entity. Mutation argument sets, input coercion, and
// the SDL rendering are all derived from the same table, so the create and
// update surfaces of an entity cannot drift apart.
package schema

import (
	"math"

	"github.com/cartforge/shopql/errs"
)

// Kind is the wire-level scalar kind of a field.
type Kind int

const (
	String Kind = iota
	Int
	Float
	Boolean
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "Int"
	case Float:
		return "Float"
	case Boolean:
		return "Boolean"
	default:
		return "String"
	}
}

// Field describes one entity field: its GraphQL name, scalar kind, and the
// input constraints enforced at creation.
type Field struct {
	Name     string
	Kind     Kind
	Required bool // must be supplied when creating the entity
	MinLen   int  // string length bounds; zero means unbounded
	MaxLen   int
	ReadOnly bool // set by the server, never accepted as input
}

// Product fields carry no constraints beyond their scalar kind.
var Product = []Field{
	{Name: "brand", Kind: String},
	{Name: "category", Kind: String},
	{Name: "description", Kind: String},
	{Name: "discountPercentage", Kind: Float},
	{Name: "images", Kind: String},
	{Name: "price", Kind: Float},
	{Name: "rating", Kind: Float},
	{Name: "stock", Kind: Int},
	{Name: "thumbnail", Kind: String},
	{Name: "title", Kind: String},
}

// Order fields are all required at creation; createdDate is stamped by the
// server and never accepted from the client.
var Order = []Field{
	{Name: "userId", Kind: String, Required: true},
	{Name: "firstName", Kind: String, Required: true},
	{Name: "lastName", Kind: String, Required: true},
	{Name: "address", Kind: String, Required: true},
	{Name: "city", Kind: String, Required: true},
	{Name: "country", Kind: String, Required: true},
	{Name: "zipCode", Kind: String, Required: true},
	{Name: "totalAmount", Kind: Float, Required: true},
	{Name: "items", Kind: String, Required: true},
	{Name: "createdDate", Kind: String, ReadOnly: true},
}

// User length bounds mirror the store's constraints; the password bound
// applies to the plaintext, the stored value is a bcrypt hash.
var User = []Field{
	{Name: "username", Kind: String, Required: true, MinLen: 5, MaxLen: 50},
	{Name: "email", Kind: String, Required: true, MinLen: 5, MaxLen: 225},
	{Name: "password", Kind: String, Required: true, MinLen: 5, MaxLen: 1024},
	{Name: "isAdmin", Kind: Boolean},
}

// Args validates and coerces raw argument values against the descriptor
// table. Only keys the client actually supplied appear in the result;
// explicit nulls count as absent. requireAll additionally enforces the
// Required flag (creation); with it false the same table validates partial
// input (update).
func Args(defs []Field, raw map[string]interface{}, requireAll bool) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(raw))
	for _, def := range defs {
		if def.ReadOnly {
			continue
		}
		v, present := raw[def.Name]
		if !present || v == nil {
			if requireAll && def.Required {
				return nil, errs.Newf(errs.InvalidInput, "%s is required", def.Name)
			}
			continue
		}
		coerced, err := coerce(def, v)
		if err != nil {
			return nil, err
		}
		out[def.Name] = coerced
	}
	return out, nil
}

// coerce converts v to the field's kind. JSON-decoded variables arrive as
// float64 even for integral fields, so numeric kinds accept both int and
// float64.
func coerce(def Field, v interface{}) (interface{}, error) {
	switch def.Kind {
	case String:
		s, ok := v.(string)
		if !ok {
			return nil, errs.Newf(errs.InvalidInput, "%s must be a string", def.Name)
		}
		if def.MinLen > 0 && len(s) < def.MinLen {
			return nil, errs.Newf(errs.InvalidInput, "%s must be at least %d characters", def.Name, def.MinLen)
		}
		if def.MaxLen > 0 && len(s) > def.MaxLen {
			return nil, errs.Newf(errs.InvalidInput, "%s must be at most %d characters", def.Name, def.MaxLen)
		}
		return s, nil
	case Int:
		switch n := v.(type) {
		case int:
			return n, nil
		case int64:
			return int(n), nil
		case float64:
			if n != math.Trunc(n) {
				return nil, errs.Newf(errs.InvalidInput, "%s must be an integer", def.Name)
			}
			return int(n), nil
		}
		return nil, errs.Newf(errs.InvalidInput, "%s must be an integer", def.Name)
	case Float:
		switch n := v.(type) {
		case float64:
			return n, nil
		case int:
			return float64(n), nil
		case int64:
			return float64(n), nil
		}
		return nil, errs.Newf(errs.InvalidInput, "%s must be a number", def.Name)
	case Boolean:
		b, ok := v.(bool)
		if !ok {
			return nil, errs.Newf(errs.InvalidInput, "%s must be a boolean", def.Name)
		}
		return b, nil
	}
	return nil, errs.Newf(errs.InvalidInput, "%s has an unknown kind", def.Name)
}

// Typed getters for coerced argument maps. Absent keys yield zero values,
// matching the original contract where unset product fields persist as
// empty.

func Str(args map[string]interface{}, name string) string {
	s, _ := args[name].(string)
	return s
}

func F64(args map[string]interface{}, name string) float64 {
	f, _ := args[name].(float64)
	return f
}

func I(args map[string]interface{}, name string) int {
	n, _ := args[name].(int)
	return n
}

func B(args map[string]interface{}, name string) bool {
	b, _ := args[name].(bool)
	return b
}
