package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/tumble/pkg/domain"
	"github.com/aretw0/tumble/pkg/inventory"
)

// Stash implements ports.SnapshotStash in memory.
// Safe for concurrent use.
type Stash struct {
	data map[string]*inventory.Inventory
	mu   sync.RWMutex
}

// NewStash creates a new in-memory stash.
func NewStash() *Stash {
	return &Stash{
		data: make(map[string]*inventory.Inventory),
	}
}

// Save stores a deep copy of inv.
func (s *Stash) Save(ctx context.Context, key string, inv *inventory.Inventory) error {
	copied := inv.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = copied
	return nil
}

// Load returns a deep copy so callers can't mutate the stashed inventory.
func (s *Stash) Load(ctx context.Context, key string) (*inventory.Inventory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, ok := s.data[key]
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}
	return inv.Clone(), nil
}

// Delete removes the entry.
func (s *Stash) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// List returns the stashed keys in sorted order.
func (s *Stash) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
