package runtime_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aretw0/tumble/internal/runtime"
	"github.com/aretw0/tumble/pkg/domain"
	"github.com/aretw0/tumble/pkg/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickRoll_RestoresInventoryBitForBit(t *testing.T) {
	h := newHarness(t, nil)

	// Configure d8 x2 and d20 x1, then go back to the first screen.
	h.dispatch(domain.InputUp, domain.InputSelect, domain.InputUp, domain.InputSelect)
	h.dispatch(domain.InputSelect, domain.InputUp, domain.InputUp, domain.InputUp, domain.InputSelect, domain.InputSelect)
	require.Equal(t, 2, h.engine.Inventory().GroupCount())
	h.dispatch(domain.InputSelect)
	require.Equal(t, domain.StatePickDie, h.engine.State())

	before := h.engine.Inventory()

	h.dispatch(domain.InputSelectHeld)

	require.True(t, h.engine.QuickRollActive())
	require.Equal(t, domain.StateRolling, h.engine.State())
	temp := h.engine.Inventory()
	require.Equal(t, 1, temp.GroupCount())
	g, _ := temp.Group(0)
	assert.Equal(t, before.SelectedKind(), g.Kind)
	assert.Equal(t, 1, g.Count)

	h.clock.RunUntilIdle(10000)
	require.Equal(t, domain.StateResults, h.engine.State())
	assert.True(t, h.engine.Snapshot().QuickRoll)
	assert.Equal(t, 0, h.restores, "restore waits for the user to leave results")
	require.Len(t, h.commits, 1)

	h.dispatch(domain.InputSelect)

	assert.False(t, h.engine.QuickRollActive())
	assert.Equal(t, 1, h.restores)
	assert.True(t, before.Equal(h.engine.Inventory()), "restored inventory matches the saved one")
	assert.Equal(t, domain.StateAddGroupPrompt, h.engine.State())
}

func TestQuickRoll_CloseRestoresBeforeRestart(t *testing.T) {
	h := newHarness(t, nil)
	h.dispatch(domain.InputSelect, domain.InputUp, domain.InputSelect, domain.InputSelect)
	require.Equal(t, domain.StatePickDie, h.engine.State())
	before := h.engine.Inventory()

	h.dispatch(domain.InputSelectHeld)
	h.clock.Advance(500 * time.Millisecond)
	require.True(t, h.engine.QuickRollActive())
	require.Equal(t, domain.StateRolling, h.engine.State())

	h.engine.Close()

	assert.False(t, h.engine.QuickRollActive())
	assert.Equal(t, 1, h.restores)
	assert.True(t, before.Equal(h.engine.Inventory()), "configured dice are back")
	assert.Equal(t, 0, h.clock.Pending())

	h.engine.Start(context.Background())
	assert.Equal(t, domain.StatePickDie, h.engine.State())
	assert.False(t, h.engine.Snapshot().QuickRoll)
	assert.Equal(t, domain.Unset, h.engine.Snapshot().RollingValue)

	h.dispatch(domain.InputSelectHeld)
	assert.True(t, h.engine.QuickRollActive(), "a new quick roll is accepted")
	assert.Equal(t, domain.StateRolling, h.engine.State())
	h.clock.RunUntilIdle(10000)
	h.dispatch(domain.InputSelect)
	assert.True(t, before.Equal(h.engine.Inventory()))
	assert.Equal(t, domain.StateAddGroupPrompt, h.engine.State())
}

func TestQuickRoll_FromEmptyInventory(t *testing.T) {
	h := newHarness(t, nil)

	h.dispatch(domain.InputSelectHeld)
	require.True(t, h.engine.QuickRollActive())
	h.dispatch(domain.InputTap)
	require.Equal(t, domain.StateResults, h.engine.State())

	h.dispatch(domain.InputBack)

	assert.Equal(t, domain.StatePickDie, h.engine.State())
	assert.False(t, h.engine.Inventory().HasGroups())
	assert.Equal(t, domain.D6, h.engine.Inventory().SelectedKind())
}

func TestQuickRoll_RerollKeepsTemporaryInventory(t *testing.T) {
	inv := inventoryOf(t, domain.NewDieGroup(domain.D12, 4))
	h := newHarness(t, nil, runtime.WithInventory(inv))
	h.dispatch(domain.InputSelect)
	require.Equal(t, domain.StatePickCount, h.engine.State())

	h.dispatch(domain.InputSelectHeld, domain.InputTap, domain.InputUp, domain.InputTap)

	require.Equal(t, domain.StateResults, h.engine.State())
	assert.True(t, h.engine.QuickRollActive())
	assert.Equal(t, 1, h.engine.Inventory().TotalDice())

	h.dispatch(domain.InputBack)
	assert.Equal(t, 4, h.engine.Inventory().TotalDice())
}

type failingStash struct{ err error }

func (f failingStash) Save(context.Context, string, *inventory.Inventory) error { return f.err }
func (f failingStash) Load(context.Context, string) (*inventory.Inventory, error) {
	return nil, f.err
}
func (f failingStash) Delete(context.Context, string) error { return f.err }

func TestQuickRoll_StashFailureRefusesQuickRoll(t *testing.T) {
	inv := inventoryOf(t, domain.NewDieGroup(domain.D6, 2))
	h := newHarness(t, nil,
		runtime.WithInventory(inv),
		runtime.WithStash(failingStash{err: errors.New("boom")}),
	)

	h.dispatch(domain.InputSelectHeld)

	assert.False(t, h.engine.QuickRollActive())
	assert.Equal(t, domain.StatePickDie, h.engine.State())
	assert.Equal(t, 2, h.engine.Inventory().TotalDice())
}
