package storage

import (
	"fmt"
	"strings"
)

const (
	BackendSQLite = "sqlite"
	BackendNutsDB = "nutsdb"
	BackendMemory = "memory"
)

// KV is the host key-value store the adapter persists its slots into.
type KV interface {
	// Get returns the value stored under key; ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)

	// Put overwrites the value stored under key.
	Put(key, value string) error

	// Close releases the underlying store.
	Close() error
}

// Open returns the backend named by backend, rooted at path.
func Open(backend, path string) (KV, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendSQLite:
		return OpenSQLite(path)
	case BackendNutsDB:
		return OpenNutsDB(path)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
