package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by KV.Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// StorageError wraps a failed write. Callers treat writes as fire-and-forget:
// in-memory state stays authoritative and the failure is logged, not raised.
type StorageError struct {
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store write %q: %v", e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// KV is the key-value contract the scheduling core persists through.
// Get returns ErrNotFound for absent keys; Set fails with *StorageError.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
}
