// Package shopql assembles the storefront GraphQL API: entity stores,
// credential handling, the resolver set, and the HTTP transport around the
// bundled GraphQL engine.
package shopql

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/cartforge/shopql/auth"
	"github.com/cartforge/shopql/config"
	"github.com/cartforge/shopql/exec"
	"github.com/cartforge/shopql/resolver"
	"github.com/cartforge/shopql/server"
	"github.com/cartforge/shopql/store"
)

// App is a fully wired server: open store, resolver set, and HTTP handler.
type App struct {
	Store   *store.Store
	Root    *resolver.Root
	Handler http.Handler
}

// New opens the store and wires every root field to its resolver. Callers
// own the returned App and must Close it.
func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	st, err := store.Open(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	root := resolver.New(st, st, st, tokens, log)

	srv := server.New(Executor(root), tokens, log)
	return &App{Store: st, Root: root, Handler: srv.Handler()}, nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}

// Executor binds the resolver set to the schema's root fields.
func Executor(root *resolver.Root) *exec.Executor {
	e := exec.New()

	e.Query("getAllProduct", root.GetAllProduct)
	e.Query("getProduct", root.GetProduct)
	e.Query("getAllOrders", root.GetAllOrders)

	e.Mutation("createProduct", root.CreateProduct)
	e.Mutation("updateProduct", root.UpdateProduct)
	e.Mutation("deleteProduct", root.DeleteProduct)
	e.Mutation("createUser", root.CreateUser)
	e.Mutation("loginUser", root.LoginUser)
	e.Mutation("createOrder", root.CreateOrder)

	e.Subscription("orderPlaced", root.OrderPlaced)

	return e
}
