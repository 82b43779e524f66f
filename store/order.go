package store

import (
	"context"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/cartforge/shopql/errs"
	"github.com/cartforge/shopql/model"
)

// CreateOrder persists o, assigning a fresh id and indexing it by user so
// OrdersByUser is a prefix scan instead of a full-collection filter.
func (s *Store) CreateOrder(ctx context.Context, o *model.Order) error {
	o.ID = uuid.NewString()
	err := s.db.Update(func(txn *badger.Txn) error {
		if err := setJSON(txn, orderPrefix+o.ID, o); err != nil {
			return err
		}
		return txn.Set([]byte(orderUserIdx+o.UserID+"/"+o.ID), nil)
	})
	return errs.Wrap(err, errs.StoreUnavailable, "saving order")
}

// OrdersByUser returns every order whose userId matches exactly.
func (s *Store) OrdersByUser(ctx context.Context, userID string) ([]*model.Order, error) {
	out := []*model.Order{}
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		prefix := []byte(orderUserIdx + userID + "/")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			id := string(it.Item().Key()[len(prefix):])
			var o model.Order
			if err := getJSON(txn, orderPrefix+id, &o); err != nil {
				return err
			}
			out = append(out, &o)
		}
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err, errs.StoreUnavailable, "listing orders")
	}
	return out, nil
}
