package store

import "errors"

// MemoryKV is an in-memory KV used by tests and by the engine when no
// database is available. FailWrites simulates a full or read-only store.
type MemoryKV struct {
	Values     map[string]string
	FailWrites bool
}

// NewMemoryKV creates an empty in-memory KV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{Values: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, error) {
	v, ok := m.Values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MemoryKV) Set(key, value string) error {
	if m.FailWrites {
		return &StorageError{Key: key, Err: errors.New("write disabled")}
	}
	if m.Values == nil {
		m.Values = make(map[string]string)
	}
	m.Values[key] = value
	return nil
}
