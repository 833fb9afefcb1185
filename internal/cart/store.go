// Package cart holds the shopping cart persisted in a profile's storage slot.
package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bookhaven/storefront/internal/storage"
)

// Store reads and writes the cart list under storage.KeyCart. Every mutation
// is a non-atomic read-modify-write; concurrent writers lose updates.
type Store struct {
	slots storage.Storage
}

// NewStore creates a Store over the given slots.
func NewStore(slots storage.Storage) *Store {
	return &Store{slots: slots}
}

// Read returns the stored items in insertion order. An absent, unparsable or
// non-array slot reads as an empty cart. Only storage failures are returned.
func (s *Store) Read(ctx context.Context) ([]Item, error) {
	raw, ok, err := s.slots.Get(ctx, storage.KeyCart)
	if err != nil {
		return nil, fmt.Errorf("reading cart: %w", err)
	}
	if !ok || raw == "" {
		return []Item{}, nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		return []Item{}, nil
	}

	items := make([]Item, len(elems))
	for i, e := range elems {
		// Malformed elements keep their position as zero items.
		_ = json.Unmarshal(e, &items[i])
	}
	return items, nil
}

// Write overwrites the slot with items.
func (s *Store) Write(ctx context.Context, items []Item) error {
	if items == nil {
		items = []Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding cart: %w", err)
	}
	if err := s.slots.Set(ctx, storage.KeyCart, string(data)); err != nil {
		return fmt.Errorf("writing cart: %w", err)
	}
	return nil
}

// Add appends item at the tail.
func (s *Store) Add(ctx context.Context, item Item) error {
	items, err := s.Read(ctx)
	if err != nil {
		return err
	}
	return s.Write(ctx, append(items, item))
}

// RemoveAt removes the item at index. An index outside the list is ignored
// and leaves the slot untouched.
func (s *Store) RemoveAt(ctx context.Context, index int) error {
	items, err := s.Read(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(items) {
		return nil
	}
	items = append(items[:index], items[index+1:]...)
	return s.Write(ctx, items)
}

// Clear writes an empty list.
func (s *Store) Clear(ctx context.Context) error {
	return s.Write(ctx, nil)
}
