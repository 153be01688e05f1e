// Package store abstracts the durable key-value storage components persist
// their state in.
//
// Values are plain strings and writes are last-write-wins. Backends:
// MemStore (tests, --store memory), BoltStore and SQLiteStore (native files)
// and LocalStorage (browser builds).
package store

import "errors"

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store: closed")

// Store is an interface satisfied by the storage backends.
type Store interface {
	// Get returns the value stored under key. ok is false when the key is
	// absent; an empty value that was stored is present.
	Get(key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	// Close releases the backend. Further calls return ErrClosed.
	Close() error
}
