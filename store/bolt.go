//go:build !wasm
// +build !wasm

package store

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketValues = "values"

// initDB holds the bucket initializers run when a database is opened.
var initDB = map[string]func(*bolt.Tx) error{
	"initialize value table": func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketValues))
		return err
	},
}

// BoltStore is a Store backed by a bbolt database file.
type BoltStore struct {
	db *bolt.DB
}

// Compile-time assertion to ensure BoltStore implements Store.
var _ Store = (*BoltStore)(nil)

// OpenBolt opens (creating if needed) the bbolt database at path. Opening a
// file that another process holds fails after one second.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &BoltStore{db: db}, nil
}

// Get implements Store.
func (s *BoltStore) Get(key string) (string, bool, error) {
	var (
		value string
		ok    bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketValues))
		if v := b.Get([]byte(key)); v != nil {
			value, ok = string(v), true
		}
		return nil
	})
	if err == bolt.ErrDatabaseNotOpen {
		err = ErrClosed
	}
	return value, ok, err
}

// Set implements Store.
func (s *BoltStore) Set(key, value string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketValues))
		// bbolt keeps nil and empty values apart only for non-nil slices
		return b.Put([]byte(key), append([]byte{}, value...))
	})
	if err == bolt.ErrDatabaseNotOpen {
		return ErrClosed
	}
	return err
}

// Close implements Store.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
