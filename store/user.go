package store

import (
	"context"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/cartforge/shopql/errs"
	"github.com/cartforge/shopql/model"
)

// CreateUser persists u, assigning a fresh id. Email and username
// uniqueness is checked and the index keys written inside the same
// transaction, so two concurrent registrations with the same email cannot
// both commit.
func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	u.ID = uuid.NewString()
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get([]byte(userEmailIdx + u.Email)); err == nil {
			return errs.New(errs.AlreadyExists, "user already exists")
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if _, err := txn.Get([]byte(userNameIdx + u.Username)); err == nil {
			return errs.New(errs.AlreadyExists, "username already taken")
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if err := setJSON(txn, userPrefix+u.ID, u); err != nil {
			return err
		}
		if err := txn.Set([]byte(userEmailIdx+u.Email), []byte(u.ID)); err != nil {
			return err
		}
		return txn.Set([]byte(userNameIdx+u.Username), []byte(u.ID))
	})
	if err != nil {
		var e *errs.Error
		if errors.As(err, &e) {
			return e
		}
		return errs.Wrap(err, errs.StoreUnavailable, "saving user")
	}
	return nil
}

// UserByEmail resolves the email index and loads the record. Returns
// NotFound when no user has the given email.
func (s *Store) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(userEmailIdx + email))
		if err != nil {
			return err
		}
		var id string
		if err := item.Value(func(val []byte) error {
			id = string(val)
			return nil
		}); err != nil {
			return err
		}
		return getJSON(txn, userPrefix+id, &u)
	})
	if err != nil {
		return nil, storeErr(err, "no user with that email", "loading user")
	}
	return &u, nil
}

// User returns the user with the given id, or NotFound.
func (s *Store) User(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, userPrefix+id, &u)
	})
	if err != nil {
		return nil, storeErr(err, "user not found", "loading user")
	}
	return &u, nil
}
