// Package runtime is the dice application core: the application state machine
// and the roll sequencer that walks the inventory through the animator.
//
// Everything here runs on one logical thread. Input is delivered through
// Dispatch and time through the ports.Timer callbacks; both must come from the
// same loop.
package runtime

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/tumble/pkg/adapters/memory"
	"github.com/aretw0/tumble/pkg/domain"
	"github.com/aretw0/tumble/pkg/inventory"
	"github.com/aretw0/tumble/pkg/ports"
	"github.com/google/uuid"
)

// DefaultHoldDelay is the pause between two dice of the same roll session.
const DefaultHoldDelay = time.Second

// Engine is the application state machine.
type Engine struct {
	ctx      context.Context
	timer    ports.Timer
	rng      ports.Random
	renderer ports.Renderer
	stash    ports.SnapshotStash
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	newID    func() string

	holdDelay time.Duration

	inv *inventory.Inventory
	seq *sequencer

	started      bool
	exit         bool
	state        domain.AppState
	confirmClear bool
	quickRoll    bool
	scroll       int
	rolling      int
	sessionID    string

	last domain.Snapshot
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithHoldDelay sets the pause between dice. Non-positive values are ignored.
func WithHoldDelay(d time.Duration) EngineOption {
	return func(e *Engine) {
		if d > 0 {
			e.holdDelay = d
		}
	}
}

// WithStash sets where the configured inventory is parked during a quick roll.
func WithStash(stash ports.SnapshotStash) EngineOption {
	return func(e *Engine) {
		if stash != nil {
			e.stash = stash
		}
	}
}

// WithInventory starts the engine from an existing inventory.
func WithInventory(inv *inventory.Inventory) EngineOption {
	return func(e *Engine) {
		if inv != nil {
			e.inv = inv
		}
	}
}

// WithSessionIDGenerator overrides how roll session IDs are produced.
func WithSessionIDGenerator(fn func() string) EngineOption {
	return func(e *Engine) {
		if fn != nil {
			e.newID = fn
		}
	}
}

// NewEngine creates an engine. Nothing is rendered until Start.
func NewEngine(timer ports.Timer, rng ports.Random, renderer ports.Renderer, opts ...EngineOption) *Engine {
	e := &Engine{
		ctx:       context.Background(),
		timer:     timer,
		rng:       rng,
		renderer:  renderer,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		newID:     uuid.NewString,
		holdDelay: DefaultHoldDelay,
		rolling:   domain.Unset,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.renderer == nil {
		e.renderer = ports.NopRenderer
	}
	if e.stash == nil {
		e.stash = memory.NewStash()
	}
	if e.inv == nil {
		e.inv = inventory.New()
	}
	e.seq = newSequencer(timer, rng, e.holdDelay, e, e.logger)
	return e
}

// Start enters the initial state and renders it. Calling Start again only
// re-renders.
func (e *Engine) Start(ctx context.Context) {
	if e.started {
		e.render()
		return
	}
	if ctx != nil {
		e.ctx = ctx
	}
	e.started = true
	e.state = domain.StatePickDie
	e.logger.Info("state changed", "state", e.state)
	e.emitStateEnter(e.state)
	e.render()
}

// Close stops any roll in progress, releases pending timers and puts a
// quick-rolled inventory back, so a later Start begins from a clean screen.
func (e *Engine) Close() {
	e.seq.stop()
	e.restoreQuickRoll()

	e.started = false
	e.exit = false
	e.state = domain.StatePickDie
	e.confirmClear = false
	e.scroll = 0
	e.rolling = domain.Unset
}

// Dispatch feeds one input event to the state machine.
func (e *Engine) Dispatch(input domain.Input) {
	if !e.started || e.exit {
		return
	}
	e.logger.Debug("input", "input", input, "state", e.state)

	switch e.state {
	case domain.StatePickDie:
		e.handlePickDie(input)
	case domain.StatePickCount:
		e.handlePickCount(input)
	case domain.StateAddGroupPrompt:
		e.handleAddGroupPrompt(input)
	case domain.StateRolling:
		e.handleRolling(input)
	case domain.StateResults:
		e.handleResults(input)
	}
}

// Roll starts a roll session over the current inventory.
func (e *Engine) Roll() error {
	if !e.inv.HasGroups() {
		return domain.ErrNoGroups
	}
	e.beginRoll()
	return nil
}

// State returns the current application state.
func (e *Engine) State() domain.AppState {
	return e.state
}

// Snapshot returns the last rendered snapshot.
func (e *Engine) Snapshot() domain.Snapshot {
	return e.last
}

// Inventory returns a copy of the current inventory.
func (e *Engine) Inventory() *inventory.Inventory {
	return e.inv.Clone()
}

// QuickRollActive reports whether a temporary quick-roll inventory is in use.
func (e *Engine) QuickRollActive() bool {
	return e.quickRoll
}

// ExitRequested reports whether the user backed out of the empty first screen.
func (e *Engine) ExitRequested() bool {
	return e.exit
}

// SessionID returns the ID of the current or last roll session.
func (e *Engine) SessionID() string {
	return e.sessionID
}

// transition moves to next. Moving to the current state only re-renders.
func (e *Engine) transition(next domain.AppState) {
	if next == e.state {
		e.render()
		return
	}

	prev := e.state
	e.leave(prev)
	e.state = next
	e.logger.Info("state changed", "from", prev, "state", next)
	e.emitStateEnter(next)
	e.enter(next)
	e.render()
}

func (e *Engine) leave(s domain.AppState) {
	switch s {
	case domain.StateAddGroupPrompt:
		e.confirmClear = false
	case domain.StateRolling:
		e.seq.stop()
	case domain.StateResults:
		e.scroll = 0
	}
	e.emitStateLeave(s)
}

func (e *Engine) enter(s domain.AppState) {
	if s != domain.StateRolling {
		return
	}
	e.seq.resetProgress()
	e.rolling = domain.Unset
	e.emitSessionStart()
	e.seq.begin(e.inv)
}

func (e *Engine) beginRoll() {
	if !e.inv.HasGroups() {
		e.logger.Warn("roll refused", "err", domain.ErrNoGroups)
		return
	}
	if e.state == domain.StateRolling {
		e.render()
		return
	}
	e.sessionID = e.newID()
	e.logger.Info("roll started", "session_id", e.sessionID, "dice", e.inv.TotalDice(), "quick", e.quickRoll)
	e.transition(domain.StateRolling)
}

func (e *Engine) requestExit() {
	if e.exit {
		return
	}
	e.exit = true
	e.logger.Info("exit requested")
	e.emitExit()
}

// ----- sequenceListener -----

func (e *Engine) dieStarted(group, die int, kind domain.Kind) {
	e.rolling = domain.Unset
	e.logger.Debug("die started", "group", group, "die", die, "kind", kind)
	e.render()
}

func (e *Engine) rollPreview(value int) {
	e.rolling = value
	e.render()
}

func (e *Engine) rollCommitted(c commit) {
	e.rolling = c.value
	completed, total := e.inv.Completed(), e.inv.TotalDice()
	e.logger.Debug("roll committed",
		"kind", c.kind, "value", c.value,
		"completed", completed, "total", total,
		"progress", e.seq.progress(), "animated", c.animated)
	e.emitRollCommit(c, completed, total)
	e.render()
}

func (e *Engine) rollFinished(skipped bool) {
	e.logger.Info("roll finished", "session_id", e.sessionID, "skipped", skipped)
	e.emitSessionFinish(skipped)
	e.transition(domain.StateResults)
}
