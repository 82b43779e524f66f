package store

import (
	"context"
	"encoding/json"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/cartforge/shopql/errs"
	"github.com/cartforge/shopql/model"
)

// CreateProduct persists p, assigning a fresh id.
func (s *Store) CreateProduct(ctx context.Context, p *model.Product) error {
	p.ID = uuid.NewString()
	err := s.db.Update(func(txn *badger.Txn) error {
		return setJSON(txn, productPrefix+p.ID, p)
	})
	return errs.Wrap(err, errs.StoreUnavailable, "saving product")
}

// Product returns the product with the given id, or NotFound.
func (s *Store) Product(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, productPrefix+id, &p)
	})
	if err != nil {
		return nil, storeErr(err, "product not found", "loading product")
	}
	return &p, nil
}

// Products returns every product, in key order.
func (s *Store) Products(ctx context.Context) ([]*model.Product, error) {
	out := []*model.Product{}
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(productPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var p model.Product
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &p)
			})
			if err != nil {
				return err
			}
			out = append(out, &p)
		}
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err, errs.StoreUnavailable, "listing products")
	}
	return out, nil
}

// UpdateProduct loads the record, applies patch, and writes it back inside
// one transaction. Returns the post-update record, or NotFound when no
// record has the given id.
func (s *Store) UpdateProduct(ctx context.Context, id string, patch func(*model.Product)) (*model.Product, error) {
	var p model.Product
	err := s.db.Update(func(txn *badger.Txn) error {
		if err := getJSON(txn, productPrefix+id, &p); err != nil {
			return err
		}
		patch(&p)
		p.ID = id // the id is not patchable
		return setJSON(txn, productPrefix+id, &p)
	})
	if err != nil {
		return nil, storeErr(err, "product not found", "updating product")
	}
	return &p, nil
}

// DeleteProduct removes the record and returns its final state, or
// NotFound when no record has the given id.
func (s *Store) DeleteProduct(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	err := s.db.Update(func(txn *badger.Txn) error {
		if err := getJSON(txn, productPrefix+id, &p); err != nil {
			return err
		}
		return txn.Delete([]byte(productPrefix + id))
	})
	if err != nil {
		return nil, storeErr(err, "product not found", "deleting product")
	}
	return &p, nil
}
