// Package storage provides the persistent key-value slots that back the cart
// and the one-shot form flags. Each Storage is scoped to one browser profile.
package storage

import (
	"context"
	"sync"
)

// Fixed slot keys.
const (
	KeyCart            = "bh_cart"
	KeySubscribed      = "bh_subscribed"
	KeySubscribedEmail = "bh_subscribed_email"
	KeyContact         = "bh_contact_submitted"
)

// Storage is a string-to-string key-value store. Writes are last-writer-wins.
type Storage interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Memory is an in-process Storage.
type Memory struct {
	mu    sync.RWMutex
	slots map[string]string
}

// NewMemory returns an empty Memory storage.
func NewMemory() *Memory {
	return &Memory{slots: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.slots[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = value
	return nil
}

func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, key)
	return nil
}
