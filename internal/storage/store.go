package storage

import (
	"encoding/json"
	"errors"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/habitta-app/habitta/internal/logging"
)

// ErrKeyNotFound is returned when a key is not found in the database.
var ErrKeyNotFound = errors.New("key not found")

// IsErrKeyNotFound returns true if the error is a key not found error.
func IsErrKeyNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound) || errors.Is(err, badger.ErrKeyNotFound)
}

// Store is the typed key-value persistence layer. Values round-trip through
// JSON; readers supply their own default by pre-filling the target value.
// Set synchronously notifies subscribers so dependent state can recompute.
type Store struct {
	db          *DB
	subscribers []func(key string)
}

// NewStore creates a store over the given database.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying database.
func (s *Store) DB() *DB {
	return s.db
}

// Subscribe registers a change listener invoked synchronously after every
// successful Set with the key that changed.
func (s *Store) Subscribe(fn func(key string)) {
	s.subscribers = append(s.subscribers, fn)
}

// Get unmarshals the value stored under key into v. When the key is missing
// or the persisted bytes fail to parse, v is left at the caller's default and
// Get returns false. Parse failures are logged, never raised: corrupt state
// must not crash the application on load.
func (s *Store) Get(key string, v any) bool {
	data, err := s.getBytes(key)
	if err != nil {
		if !IsErrKeyNotFound(err) {
			logging.Warn("failed to read store key", logging.KeyStoreKey, key, logging.KeyError, err)
		}
		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		logging.Warn("persisted value is malformed, using default",
			logging.KeyStoreKey, key, logging.KeyError, err)
		return false
	}
	return true
}

// Set marshals v, persists it under key, and notifies subscribers.
func (s *Store) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := s.SetBytes(key, data); err != nil {
		return err
	}
	return nil
}

// GetBytes retrieves the raw bytes stored under key.
func (s *Store) GetBytes(key string) ([]byte, error) {
	return s.getBytes(key)
}

// SetBytes persists raw bytes under key and notifies subscribers.
func (s *Store) SetBytes(key string, data []byte) error {
	err := s.db.Badger().Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return err
	}
	s.notify(key)
	return nil
}

// Delete removes a key. Missing keys are a no-op.
func (s *Store) Delete(key string) error {
	err := s.db.Badger().Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return err
	}
	s.notify(key)
	return nil
}

// Exists checks if a key exists.
func (s *Store) Exists(key string) (bool, error) {
	var exists bool
	err := s.db.Badger().View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		exists = true
		return nil
	})
	return exists, err
}

// Reset deletes the given keys.
func (s *Store) Reset(keys ...string) error {
	for _, key := range keys {
		if err := s.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) getBytes(key string) ([]byte, error) {
	var result []byte
	err := s.db.Badger().View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrKeyNotFound
			}
			return err
		}

		return item.Value(func(val []byte) error {
			result = make([]byte, len(val))
			copy(result, val)
			return nil
		})
	})
	return result, err
}

func (s *Store) notify(key string) {
	for _, fn := range s.subscribers {
		fn(key)
	}
}

// getList loads an ordered collection stored as a whole JSON array. A missing
// or malformed key yields the empty collection.
func getList[T any](s *Store, key string) []T {
	list := []T{}
	s.Get(key, &list)
	if list == nil {
		list = []T{}
	}
	return list
}
