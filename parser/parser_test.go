package parser

import (
	"testing"
	"time"

	"github.com/cartforge/shopql/ast"
	"github.com/cartforge/shopql/lexer"
)

func parse(t *testing.T, input string) *ast.Document {
	t.Helper()
	return New(lexer.New(input)).ParseDocument()
}

func TestParseImplicitQuery(t *testing.T) {
	doc := parse(t, `{ getAllProduct { id title } }`)
	op := doc.First()
	if op == nil {
		t.Fatal("expected one operation")
	}
	if op.Kind != ast.Query {
		t.Errorf("expected query kind, got %q", op.Kind)
	}
	if len(op.Selection.Fields) != 1 {
		t.Fatalf("expected one top-level field, got %d", len(op.Selection.Fields))
	}
	f := op.Selection.Fields[0]
	if f.Name != "getAllProduct" {
		t.Errorf("expected field getAllProduct, got %q", f.Name)
	}
	if f.Selection == nil || len(f.Selection.Fields) != 2 {
		t.Fatal("expected two nested fields")
	}
}

func TestParseNamedMutationWithVariables(t *testing.T) {
	doc := parse(t, `mutation AddProduct($title: String!, $price: Float) {
		createProduct(title: $title, price: $price) { id }
	}`)
	op := doc.First()
	if op == nil {
		t.Fatal("expected one operation")
	}
	if op.Kind != ast.Mutation || op.Name != "AddProduct" {
		t.Errorf("unexpected operation %q %q", op.Kind, op.Name)
	}
	if len(op.Variables) != 2 {
		t.Fatalf("expected 2 variable definitions, got %d", len(op.Variables))
	}
	if op.Variables[0].Name != "title" || !op.Variables[0].Type.NonNull {
		t.Errorf("unexpected first variable %+v", op.Variables[0])
	}
	if op.Variables[1].Type.Name != "Float" || op.Variables[1].Type.NonNull {
		t.Errorf("unexpected second variable %+v", op.Variables[1])
	}
}

func TestParseArgumentLiterals(t *testing.T) {
	doc := parse(t, `mutation {
		createProduct(title: "Mouse", price: 9.99, stock: 4, fresh: true, tag: null)
	}`)
	op := doc.First()
	if op == nil {
		t.Fatal("expected one operation")
	}
	args := op.Selection.Fields[0].Arguments
	if len(args) != 5 {
		t.Fatalf("expected 5 arguments, got %d", len(args))
	}

	kinds := map[string]ast.ValueKind{
		"title": ast.StringValue,
		"price": ast.FloatValue,
		"stock": ast.IntValue,
		"fresh": ast.BooleanValue,
		"tag":   ast.NullValue,
	}
	for _, arg := range args {
		if arg.Value.Kind != kinds[arg.Name] {
			t.Errorf("argument %q: unexpected kind %v", arg.Name, arg.Value.Kind)
		}
	}
}

func TestParseObjectAndListValues(t *testing.T) {
	doc := parse(t, `{ search(filter: {brand: "acme", limit: 3}, ids: ["a", "b"]) }`)
	args := doc.First().Selection.Fields[0].Arguments
	if len(args) != 2 {
		t.Fatalf("expected 2 arguments, got %d", len(args))
	}

	filter := args[0].Value
	if filter.Kind != ast.ObjectValue || len(filter.Object) != 2 {
		t.Fatalf("unexpected filter value %+v", filter)
	}
	if filter.Object["brand"].Literal != "acme" {
		t.Errorf("unexpected brand %q", filter.Object["brand"].Literal)
	}

	ids := args[1].Value
	if ids.Kind != ast.ListValue || len(ids.List) != 2 {
		t.Fatalf("unexpected ids value %+v", ids)
	}
}

func TestParseSubscriptionOperation(t *testing.T) {
	doc := parse(t, `subscription { orderPlaced { id totalAmount } }`)
	op := doc.First()
	if op == nil || op.Kind != ast.Subscription {
		t.Fatalf("expected subscription operation, got %+v", op)
	}
}

func TestParseGarbageYieldsNoOperations(t *testing.T) {
	doc := parse(t, `] &&& 12`)
	if len(doc.Operations) != 0 {
		t.Errorf("expected no operations, got %d", len(doc.Operations))
	}
}

func TestParseTerminatesOnKeywordLikeTokens(t *testing.T) {
	// A string literal spelled like an operation keyword must not be
	// mistaken for one. Run with a watchdog so a regression fails fast
	// instead of hanging the suite.
	for _, input := range []string{`"query"`, `"mutation" "subscription"`, `query "query"`} {
		done := make(chan *ast.Document, 1)
		go func() {
			done <- New(lexer.New(input)).ParseDocument()
		}()
		select {
		case doc := <-done:
			if len(doc.Operations) != 0 {
				t.Errorf("input %q: expected no operations, got %d", input, len(doc.Operations))
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("ParseDocument did not terminate on input %q", input)
		}
	}
}
