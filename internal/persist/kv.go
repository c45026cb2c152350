// Package persist is the key-value persistence collaborator used for the
// session record and user preferences. Values are serialized records; a
// missing or malformed value is recovered by falling back to defaults.
package persist

import (
	"context"
	"errors"
	"sync"
)

// Well-known preference keys.
const (
	KeyUser         = "oceanGuardian_user"
	KeyDarkMode     = "oceanGuardian_darkMode"
	KeyReportFilter = "oceanGuardian_reportFilter"
)

// ErrNotFound is returned by Get when the key has no stored value.
var ErrNotFound = errors.New("persist: key not found")

// KV is a simple get/set/remove store keyed by string.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Memory is an in-process KV used in tests and as a fallback.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
