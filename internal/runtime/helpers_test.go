package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/tumble/internal/runtime"
	"github.com/aretw0/tumble/pkg/domain"
	"github.com/aretw0/tumble/pkg/inventory"
	"github.com/aretw0/tumble/pkg/ports"
	"github.com/aretw0/tumble/pkg/random"
	"github.com/aretw0/tumble/pkg/timer"
	"github.com/stretchr/testify/require"
)

// harness wires an engine to a virtual clock and records everything it emits.
type harness struct {
	engine *runtime.Engine
	clock  *timer.Manual
	frames []domain.Snapshot

	entered  []domain.AppState
	commits  []domain.RollEvent
	finished []domain.SessionEvent
	restores int
	exits    int
}

func newHarness(t *testing.T, rng ports.Random, opts ...runtime.EngineOption) *harness {
	t.Helper()
	if rng == nil {
		rng = random.New(1234)
	}
	h := &harness{clock: timer.NewManual()}

	hooks := domain.LifecycleHooks{
		OnStateEnter: func(_ context.Context, e *domain.StateEvent) { h.entered = append(h.entered, e.State) },
		OnRollCommit: func(_ context.Context, e *domain.RollEvent) { h.commits = append(h.commits, *e) },
		OnSessionFinish: func(_ context.Context, e *domain.SessionEvent) {
			h.finished = append(h.finished, *e)
		},
		OnQuickRollRestore: func(context.Context, *domain.EventBase) { h.restores++ },
		OnExit:             func(context.Context, *domain.EventBase) { h.exits++ },
	}

	renderer := ports.RenderFunc(func(s domain.Snapshot) { h.frames = append(h.frames, s) })
	all := append([]runtime.EngineOption{runtime.WithLifecycleHooks(hooks)}, opts...)
	h.engine = runtime.NewEngine(h.clock, rng, renderer, all...)
	h.engine.Start(context.Background())
	return h
}

func (h *harness) dispatch(inputs ...domain.Input) {
	for _, in := range inputs {
		h.engine.Dispatch(in)
	}
}

func (h *harness) count(s domain.AppState) int {
	n := 0
	for _, st := range h.entered {
		if st == s {
			n++
		}
	}
	return n
}

// inventoryOf builds an inventory from (kind, count) pairs.
func inventoryOf(t *testing.T, groups ...domain.DieGroup) *inventory.Inventory {
	t.Helper()
	inv := inventory.New()
	for _, g := range groups {
		require.NoError(t, inv.Select(g.Kind, g.Count))
		require.NoError(t, inv.CommitGroup())
	}
	inv.ResetCount()
	return inv
}
