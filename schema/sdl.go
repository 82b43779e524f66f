package schema

import (
	"fmt"
	"strings"
)

// SDL renders the served schema from the descriptor tables. It is
// documentation for clients (served on GET /graphql), not an input to
// execution: resolvers are bound in code.
func SDL() string {
	var b strings.Builder

	writeType(&b, "Product", Product)
	writeType(&b, "Order", Order)
	writeType(&b, "User", User)

	b.WriteString("type Query {\n")
	fmt.Fprintf(&b, "  getAllProduct(id: String): [Product]\n")
	fmt.Fprintf(&b, "  getProduct(id: String): Product\n")
	fmt.Fprintf(&b, "  getAllOrders(id: String): [Order]\n")
	b.WriteString("}\n\n")

	b.WriteString("type Mutation {\n")
	fmt.Fprintf(&b, "  createProduct(%s): Product\n", argList(Product, false))
	fmt.Fprintf(&b, "  updateProduct(id: String!, %s): Product\n", argList(Product, false))
	fmt.Fprintf(&b, "  deleteProduct(id: String!): Product\n")
	fmt.Fprintf(&b, "  createUser(%s): String\n", argList(User, true))
	fmt.Fprintf(&b, "  loginUser(email: String!, password: String!): String\n")
	fmt.Fprintf(&b, "  createOrder(%s): String\n", argList(Order, true))
	b.WriteString("}\n\n")

	b.WriteString("type Subscription {\n")
	b.WriteString("  orderPlaced: Order\n")
	b.WriteString("}\n")

	return b.String()
}

func writeType(b *strings.Builder, name string, defs []Field) {
	fmt.Fprintf(b, "type %s {\n", name)
	fmt.Fprintf(b, "  id: String\n")
	for _, def := range defs {
		fmt.Fprintf(b, "  %s: %s\n", def.Name, def.Kind)
	}
	b.WriteString("}\n\n")
}

// argList renders the input arguments derived from a descriptor table.
// Read-only fields are server-set and never appear as arguments.
func argList(defs []Field, markRequired bool) string {
	parts := make([]string, 0, len(defs))
	for _, def := range defs {
		if def.ReadOnly {
			continue
		}
		bang := ""
		if markRequired && def.Required {
			bang = "!"
		}
		parts = append(parts, fmt.Sprintf("%s: %s%s", def.Name, def.Kind, bang))
	}
	return strings.Join(parts, ", ")
}
