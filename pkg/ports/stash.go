package ports

import (
	"context"

	"github.com/aretw0/tumble/pkg/inventory"
)

// SnapshotStash keeps inventories aside while a temporary one is in use.
// This is what lets a quick roll replace the configured dice and put them
// back untouched afterwards.
type SnapshotStash interface {
	// Save stores a copy of inv under key, replacing any previous entry.
	Save(ctx context.Context, key string, inv *inventory.Inventory) error

	// Load returns a copy of the inventory stored under key.
	// Returns domain.ErrSnapshotNotFound if there is none.
	Load(ctx context.Context, key string) (*inventory.Inventory, error)

	// Delete removes the entry for key.
	Delete(ctx context.Context, key string) error
}
