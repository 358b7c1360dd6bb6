package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/tumble/pkg/adapters/memory"
	"github.com/aretw0/tumble/pkg/domain"
	"github.com/aretw0/tumble/pkg/inventory"
	"github.com/aretw0/tumble/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStash_Contract(t *testing.T) {
	ports.RunSnapshotStashContract(t, memory.NewStash())
}

func TestMemoryStash_List(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStash()
	require.NoError(t, s.Save(ctx, "b", inventory.New()))
	require.NoError(t, s.Save(ctx, "a", inventory.New()))

	keys, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestRecorder(t *testing.T) {
	r := memory.NewRecorder()
	_, ok := r.Last()
	assert.False(t, ok)

	groups := []domain.DieGroup{domain.NewDieGroup(domain.D8, 2)}
	r.Render(domain.Snapshot{State: domain.StateResults, Inventory: domain.InventoryView{Groups: groups}})
	groups[0].Count = 9

	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, domain.StateResults, last.State)
	assert.Equal(t, 2, last.Inventory.Groups[0].Count)
	assert.Equal(t, uint64(1), r.Frames())
}
