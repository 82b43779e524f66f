package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cartforge/shopql/errs"
	"github.com/cartforge/shopql/model"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestProductCRUD(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	p := &model.Product{Title: "Mouse", Brand: "acme", Price: 9.99, Stock: 3}
	require.NoError(t, s.CreateProduct(ctx, p))
	require.NotEmpty(t, p.ID)

	got, err := s.Product(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, p, got)

	updated, err := s.UpdateProduct(ctx, p.ID, func(r *model.Product) {
		r.Price = 7.5
		r.Stock = 2
	})
	require.NoError(t, err)
	require.Equal(t, 7.5, updated.Price)
	require.Equal(t, p.ID, updated.ID)

	deleted, err := s.DeleteProduct(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 7.5, deleted.Price, "delete returns the final state")

	_, err = s.Product(ctx, p.ID)
	require.True(t, errs.Is(err, errs.NotFound))
}

func TestProductsListsEverything(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.CreateProduct(ctx, &model.Product{Title: "item"}))
	}
	all, err := s.Products(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
}

func TestUpdateMissingProduct(t *testing.T) {
	s := newStore(t)
	_, err := s.UpdateProduct(context.Background(), "nope", func(*model.Product) {})
	require.True(t, errs.Is(err, errs.NotFound))
}

func TestDeleteMissingProduct(t *testing.T) {
	s := newStore(t)
	_, err := s.DeleteProduct(context.Background(), "nope")
	require.True(t, errs.Is(err, errs.NotFound))
}

func TestOrdersByUser(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	for _, uid := range []string{"u1", "u1", "u2"} {
		require.NoError(t, s.CreateOrder(ctx, &model.Order{
			UserID: uid, FirstName: "A", LastName: "B", Address: "1 Main",
			City: "X", Country: "Y", ZipCode: "00000", TotalAmount: 9.99,
			Items: "[]", CreatedDate: "2026-08-31T00:00:00Z",
		}))
	}

	u1, err := s.OrdersByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, u1, 2)

	u2, err := s.OrdersByUser(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, u2, 1)
	require.Equal(t, "u2", u2[0].UserID)

	none, err := s.OrdersByUser(ctx, "u3")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestOrdersByUserExactMatch(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateOrder(ctx, &model.Order{UserID: "u1", Items: "[]"}))
	require.NoError(t, s.CreateOrder(ctx, &model.Order{UserID: "u10", Items: "[]"}))

	got, err := s.OrdersByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1, "u10 must not match the u1 prefix")
}

func TestCreateUserUniqueness(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	u := &model.User{Username: "ferris", Email: "f@example.com", Password: "hash"}
	require.NoError(t, s.CreateUser(ctx, u))

	dup := &model.User{Username: "other", Email: "f@example.com", Password: "hash"}
	err := s.CreateUser(ctx, dup)
	require.True(t, errs.Is(err, errs.AlreadyExists))

	nameDup := &model.User{Username: "ferris", Email: "g@example.com", Password: "hash"}
	err = s.CreateUser(ctx, nameDup)
	require.True(t, errs.Is(err, errs.AlreadyExists))
}

func TestUserByEmail(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	u := &model.User{Username: "ferris", Email: "f@example.com", Password: "hash", IsAdmin: true}
	require.NoError(t, s.CreateUser(ctx, u))

	got, err := s.UserByEmail(ctx, "f@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.True(t, got.IsAdmin)

	_, err = s.UserByEmail(ctx, "missing@example.com")
	require.True(t, errs.Is(err, errs.NotFound))
}
