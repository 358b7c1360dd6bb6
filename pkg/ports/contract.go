package ports

import (
	"context"
	"testing"

	"github.com/aretw0/tumble/pkg/domain"
	"github.com/aretw0/tumble/pkg/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSnapshotStashContract runs a suite of tests to verify that a SnapshotStash
// implementation adheres to the defined interface contract.
func RunSnapshotStashContract(t *testing.T, stash SnapshotStash) {
	ctx := context.Background()
	key := "contract-" + t.Name()

	seed := func() *inventory.Inventory {
		inv := inventory.New()
		require.NoError(t, inv.Select(domain.D20, 2))
		require.NoError(t, inv.CommitGroup())
		require.NoError(t, inv.Select(domain.D100, 1))
		require.NoError(t, inv.CommitGroup())
		return inv
	}

	t.Run("Save and Load", func(t *testing.T) {
		inv := seed()
		require.NoError(t, stash.Save(ctx, key, inv))

		loaded, err := stash.Load(ctx, key)
		require.NoError(t, err)
		assert.True(t, inv.Equal(loaded), "loaded inventory must match saved one")
	})

	t.Run("Isolation", func(t *testing.T) {
		inv := seed()
		require.NoError(t, stash.Save(ctx, key, inv))

		// Mutating the original after Save must not leak into the stash.
		inv.Clear()

		loaded, err := stash.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, 2, loaded.GroupCount())

		// Mutating a loaded copy must not leak either.
		loaded.Clear()
		again, err := stash.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, 2, again.GroupCount())
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := stash.Load(ctx, "missing-"+key)
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, stash.Save(ctx, key, seed()))
		require.NoError(t, stash.Delete(ctx, key))

		_, err := stash.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound, "Load after Delete should return ErrSnapshotNotFound")
	})
}
