// Package store persists entity records in an embedded badger database,
// one logical collection per entity. Records are stored as JSON under
// collection-prefixed keys; user uniqueness is enforced with index keys
// written in the same transaction as the record.
package store

import (
	"encoding/json"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/cartforge/shopql/errs"
)

// Key prefixes, one per collection plus the uniqueness/lookup indexes.
const (
	productPrefix = "product/"
	orderPrefix   = "order/"
	orderUserIdx  = "idx/order-user/"
	userPrefix    = "user/"
	userEmailIdx  = "idx/user-email/"
	userNameIdx   = "idx/user-name/"
)

// Store wraps a badger handle. The handle is safe for concurrent use; every
// operation is a single transaction.
type Store struct {
	db *badger.DB
}

// Open opens (creating if needed) the database under dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening store at %q", dir)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a throwaway in-memory database. Used by tests.
func OpenInMemory() (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return nil, errors.Wrap(err, "opening in-memory store")
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// getJSON reads and decodes the value at key inside txn.
func getJSON(txn *badger.Txn, key string, out interface{}) error {
	item, err := txn.Get([]byte(key))
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, out)
	})
}

// setJSON encodes v and writes it at key inside txn.
func setJSON(txn *badger.Txn, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return txn.Set([]byte(key), raw)
}

// storeErr converts a badger error into the taxonomy: missing keys become
// NotFound, everything else StoreUnavailable.
func storeErr(err error, notFoundMsg, failMsg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, badger.ErrKeyNotFound) {
		return errs.New(errs.NotFound, notFoundMsg)
	}
	return errs.Wrap(err, errs.StoreUnavailable, failMsg)
}
