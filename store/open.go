//go:build !wasm
// +build !wasm

package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// Backend names accepted by Open.
const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open opens the named backend with its database file under dataDir, creating
// the directory if needed.
func Open(backend, dataDir string) (Store, error) {
	if backend == BackendMemory {
		return NewMemStore(), nil
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	switch backend {
	case BackendBolt:
		return OpenBolt(filepath.Join(dataDir, "effectlab.db"))
	case BackendSQLite:
		return OpenSQLite(filepath.Join(dataDir, "effectlab.sqlite"))
	default:
		return nil, fmt.Errorf("unknown store backend %q (want %s, %s or %s)",
			backend, BackendBolt, BackendSQLite, BackendMemory)
	}
}
