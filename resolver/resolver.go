// Package resolver implements the root query and mutation fields. Each
// resolver validates its trivial preconditions, makes exactly one store
// round-trip, and shapes the result for the wire; stores and the token
// issuer are injected so tests can supply their own.
package resolver

import (
	"context"

	"go.uber.org/zap"

	"github.com/cartforge/shopql/model"
)

// ProductStore is the product collection as the resolvers see it.
type ProductStore interface {
	CreateProduct(ctx context.Context, p *model.Product) error
	Product(ctx context.Context, id string) (*model.Product, error)
	Products(ctx context.Context) ([]*model.Product, error)
	UpdateProduct(ctx context.Context, id string, patch func(*model.Product)) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) (*model.Product, error)
}

// OrderStore is the order collection as the resolvers see it.
type OrderStore interface {
	CreateOrder(ctx context.Context, o *model.Order) error
	OrdersByUser(ctx context.Context, userID string) ([]*model.Order, error)
}

// UserStore is the user collection as the resolvers see it.
type UserStore interface {
	CreateUser(ctx context.Context, u *model.User) error
	UserByEmail(ctx context.Context, email string) (*model.User, error)
}

// TokenIssuer mints an auth token bound to a user id and admin flag.
type TokenIssuer interface {
	Issue(userID string, isAdmin bool) (string, error)
}

// Root is the resolver set.
type Root struct {
	Products ProductStore
	Orders   OrderStore
	Users    UserStore
	Tokens   TokenIssuer
	Events   *Broker
	Log      *zap.Logger
}

// New returns a Root with an event broker and the given collaborators.
// A nil logger is replaced with a no-op one.
func New(products ProductStore, orders OrderStore, users UserStore, tokens TokenIssuer, log *zap.Logger) *Root {
	if log == nil {
		log = zap.NewNop()
	}
	return &Root{
		Products: products,
		Orders:   orders,
		Users:    users,
		Tokens:   tokens,
		Events:   NewBroker(),
		Log:      log,
	}
}
