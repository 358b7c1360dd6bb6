package runtime_test

import (
	"testing"
	"time"

	"github.com/aretw0/tumble/internal/anim"
	"github.com/aretw0/tumble/internal/runtime"
	"github.com/aretw0/tumble/pkg/domain"
	"github.com/aretw0/tumble/pkg/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// firstDieDone is the virtual time at which one uninterrupted animation completes.
const firstDieDone = 3240 * time.Millisecond

func TestSequencer_CommitsEveryDieInOrder(t *testing.T) {
	inv := inventoryOf(t, domain.NewDieGroup(domain.D6, 2), domain.NewDieGroup(domain.D20, 1))
	h := newHarness(t, nil, runtime.WithInventory(inv))

	require.NoError(t, h.engine.Roll())
	assert.Equal(t, domain.StateRolling, h.engine.State())

	h.clock.RunUntilIdle(10000)

	require.Len(t, h.commits, 3)
	order := [][2]int{{0, 0}, {0, 1}, {1, 0}}
	for i, c := range h.commits {
		assert.Equal(t, order[i], [2]int{c.Group, c.Die})
		assert.True(t, c.Animated)
		assert.Equal(t, i+1, c.Completed)
		assert.Equal(t, 3, c.Total)
	}
	assert.Equal(t, domain.D6, h.commits[0].Kind)
	assert.Equal(t, domain.D20, h.commits[2].Kind)

	final := h.engine.Inventory()
	g, d := final.Cursor()
	assert.Equal(t, [2]int{2, 0}, [2]int{g, d})
	assert.Equal(t, 1, h.count(domain.StateResults))
	assert.Equal(t, domain.StateResults, h.engine.State())
	require.Len(t, h.finished, 1)
	assert.False(t, h.finished[0].Skipped)

	for i, c := range h.commits {
		grp, _ := final.Group(c.Group)
		assert.Equal(t, c.Value, grp.Results[c.Die], "commit %d stored", i)
	}
}

func TestSequencer_HoldDelayBetweenDice(t *testing.T) {
	inv := inventoryOf(t, domain.NewDieGroup(domain.D4, 2))
	h := newHarness(t, nil, runtime.WithInventory(inv), runtime.WithHoldDelay(500*time.Millisecond))

	require.NoError(t, h.engine.Roll())
	h.clock.Advance(firstDieDone)
	require.Len(t, h.commits, 1)
	assert.False(t, h.engine.Snapshot().Animating, "holding, not animating")

	h.clock.Advance(499 * time.Millisecond)
	assert.False(t, h.engine.Snapshot().Animating)
	h.clock.Advance(time.Millisecond)
	assert.True(t, h.engine.Snapshot().Animating, "next die starts after the hold")
}

func TestSequencer_FirstFrameOfNextDie(t *testing.T) {
	inv := inventoryOf(t, domain.NewDieGroup(domain.D6, 2))
	h := newHarness(t, nil, runtime.WithInventory(inv), runtime.WithHoldDelay(200*time.Millisecond))

	require.NoError(t, h.engine.Roll())
	h.clock.Advance(firstDieDone)
	require.Len(t, h.commits, 1)
	rendered := len(h.frames)

	h.clock.Advance(200 * time.Millisecond)
	require.Greater(t, len(h.frames), rendered)

	first := h.frames[rendered]
	assert.True(t, first.Animating)
	assert.Equal(t, 0, first.Progress)
	assert.Equal(t, domain.Unset, first.RollingValue)
	assert.Equal(t, 0, first.Inventory.CursorGroup)
	assert.Equal(t, 1, first.Inventory.CursorDie)
}

func TestSequencer_SkipAllMidAnimation(t *testing.T) {
	inv := inventoryOf(t, domain.NewDieGroup(domain.D6, 3), domain.NewDieGroup(domain.D20, 2))
	h := newHarness(t, nil, runtime.WithInventory(inv))

	require.NoError(t, h.engine.Roll())
	h.clock.Advance(500 * time.Millisecond)
	require.Empty(t, h.commits)

	h.dispatch(domain.InputTap)

	assert.Equal(t, domain.StateResults, h.engine.State(), "skip resolves synchronously")
	require.Len(t, h.commits, 5)
	assert.True(t, h.commits[0].Animated, "the running animation is cut short")
	for _, c := range h.commits[1:] {
		assert.False(t, c.Animated, "no further animation sessions")
	}
	assert.Equal(t, 0, h.clock.Pending())
	assert.Equal(t, 1, h.count(domain.StateResults))
	require.Len(t, h.finished, 1)
	assert.True(t, h.finished[0].Skipped)

	h.clock.RunUntilIdle(1000)
	assert.Len(t, h.commits, 5)
}

func TestSequencer_SkipDuringHold(t *testing.T) {
	inv := inventoryOf(t, domain.NewDieGroup(domain.D8, 3))
	h := newHarness(t, nil, runtime.WithInventory(inv))

	require.NoError(t, h.engine.Roll())
	h.clock.Advance(firstDieDone)
	require.Len(t, h.commits, 1)
	require.Equal(t, 1, h.clock.Pending(), "only the hold timer is pending")

	h.dispatch(domain.InputSelect)

	assert.Equal(t, domain.StateResults, h.engine.State())
	assert.Len(t, h.commits, 3)
	assert.Equal(t, 0, h.clock.Pending())
}

func TestSequencer_RepeatedSkipCommitsOnce(t *testing.T) {
	inv := inventoryOf(t, domain.NewDieGroup(domain.D6, 1))
	h := newHarness(t, nil, runtime.WithInventory(inv))

	require.NoError(t, h.engine.Roll())
	h.dispatch(domain.InputTap, domain.InputTap, domain.InputBack)

	assert.Len(t, h.commits, 1)
	assert.Equal(t, 1, h.count(domain.StateResults))
}

func TestSequencer_NormalizesPreviewAndCommit(t *testing.T) {
	tests := []struct {
		name  string
		kind  domain.Kind
		check func(t *testing.T, v int)
	}{
		{"tens die", domain.D100, func(t *testing.T, v int) {
			assert.Zero(t, v%10)
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, 90)
		}},
		{"percentile", domain.Percentile, func(t *testing.T, v int) {
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, 99)
		}},
		{"standard", domain.D12, func(t *testing.T, v int) {
			assert.GreaterOrEqual(t, v, 1)
			assert.LessOrEqual(t, v, 12)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := inventoryOf(t, domain.NewDieGroup(tt.kind, 2))
			h := newHarness(t, random.New(77), runtime.WithInventory(inv))

			require.NoError(t, h.engine.Roll())
			h.clock.RunUntilIdle(10000)

			for _, f := range h.frames {
				if f.State == domain.StateRolling && f.RollingValue != domain.Unset {
					tt.check(t, f.RollingValue)
				}
			}
			require.Len(t, h.commits, 2)
			for _, c := range h.commits {
				tt.check(t, c.Value)
			}
		})
	}
}

func TestSequencer_ScriptedTensValue(t *testing.T) {
	// First draw picks the final tick count; every later draw is 7.
	inv := inventoryOf(t, domain.NewDieGroup(domain.D100, 1))
	h := newHarness(t, random.NewScripted(7), runtime.WithInventory(inv))

	require.NoError(t, h.engine.Roll())
	h.clock.RunUntilIdle(10000)

	require.Len(t, h.commits, 1)
	assert.Equal(t, 60, h.commits[0].Value)
}

func TestSequencer_ProgressResetsAroundRolling(t *testing.T) {
	inv := inventoryOf(t, domain.NewDieGroup(domain.D6, 1))
	h := newHarness(t, nil, runtime.WithInventory(inv))

	require.NoError(t, h.engine.Roll())
	assert.Equal(t, 0, h.engine.Snapshot().Progress)

	h.clock.Advance(anim.TotalDuration() / 2)
	assert.Positive(t, h.engine.Snapshot().Progress)

	h.clock.RunUntilIdle(1000)
	assert.Equal(t, domain.StateResults, h.engine.State())
	assert.Equal(t, 0, h.engine.Snapshot().Progress)

	h.frames = nil
	h.dispatch(domain.InputUp)
	require.NotEmpty(t, h.frames)
	assert.Equal(t, domain.StateRolling, h.frames[0].State)
	assert.Equal(t, 0, h.frames[0].Progress, "a reroll starts from zero progress")
}

func TestSequencer_RerollUnsetsPreviousResults(t *testing.T) {
	inv := inventoryOf(t, domain.NewDieGroup(domain.D10, 2))
	h := newHarness(t, nil, runtime.WithInventory(inv))

	require.NoError(t, h.engine.Roll())
	h.clock.RunUntilIdle(10000)
	h.dispatch(domain.InputSelectHeld)

	require.Equal(t, domain.StateRolling, h.engine.State())
	g, _ := h.engine.Inventory().Group(0)
	assert.Equal(t, domain.Unset, g.Results[0])
	assert.Equal(t, domain.Unset, g.Results[1])
}
