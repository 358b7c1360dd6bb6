package tumble

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/tumble/internal/logging"
	"github.com/aretw0/tumble/internal/runtime"
	"github.com/aretw0/tumble/pkg/adapters/memory"
	"github.com/aretw0/tumble/pkg/domain"
	"github.com/aretw0/tumble/pkg/inventory"
	"github.com/aretw0/tumble/pkg/ports"
	"github.com/aretw0/tumble/pkg/random"
	"github.com/aretw0/tumble/pkg/timer"
)

// ErrNoLoop is returned by Run when the engine was built on a custom timer.
var ErrNoLoop = errors.New("engine has no event loop")

// Engine is the high-level entry point for the tumble library.
// It wraps the internal runtime and marshals every call onto its loop.
type Engine struct {
	runtime  *runtime.Engine
	loop     *timer.Loop
	timer    ports.Timer
	random   ports.Random
	recorder *memory.Recorder

	renderer    ports.Renderer
	stash       ports.SnapshotStash
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
	holdDelay   time.Duration
	seed        int64
	defaultKind domain.Kind
	groups      []domain.DieGroup
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = domain.MergeHooks(e.hooks, hooks)
	}
}

// WithTimer replaces the real-time event loop, e.g. with a timer.Manual.
// Calls are then executed directly on the caller's goroutine.
func WithTimer(t ports.Timer) Option {
	return func(e *Engine) {
		e.timer = t
	}
}

// WithRandom sets the random source. It takes precedence over WithSeed.
func WithRandom(r ports.Random) Option {
	return func(e *Engine) {
		e.random = r
	}
}

// WithSeed seeds the default random source. Zero means a fresh seed.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// WithRenderer sets the rendering sink.
func WithRenderer(r ports.Renderer) Option {
	return func(e *Engine) {
		e.renderer = r
	}
}

// WithHoldDelay sets the pause between dice (default 1s).
func WithHoldDelay(d time.Duration) Option {
	return func(e *Engine) {
		e.holdDelay = d
	}
}

// WithStash sets where the configured dice are parked during a quick roll.
func WithStash(s ports.SnapshotStash) Option {
	return func(e *Engine) {
		e.stash = s
	}
}

// WithDefaultKind sets the die kind selected on start.
func WithDefaultKind(k domain.Kind) Option {
	return func(e *Engine) {
		e.defaultKind = k
	}
}

// WithGroups preloads dice groups, as parsed by pkg/notation.
func WithGroups(groups ...domain.DieGroup) Option {
	return func(e *Engine) {
		e.groups = append(e.groups, groups...)
	}
}

// New initializes a new tumble Engine.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{defaultKind: domain.D6}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	if !eng.defaultKind.Valid() {
		return nil, fmt.Errorf("default kind %d: %w", eng.defaultKind, domain.ErrInvalidKind)
	}

	inv := inventory.New()
	for _, g := range eng.groups {
		if err := inv.Select(g.Kind, g.Count); err != nil {
			return nil, fmt.Errorf("group %s: %w", g.Label(), err)
		}
		if err := inv.CommitGroup(); err != nil {
			return nil, fmt.Errorf("group %s: %w", g.Label(), err)
		}
	}
	if err := inv.Select(eng.defaultKind, 1); err != nil {
		return nil, err
	}

	if eng.timer == nil {
		eng.loop = timer.NewLoop(timer.WithLogger(eng.logger))
		eng.timer = eng.loop
	}
	if eng.random == nil {
		src := random.New(eng.seed)
		eng.logger.Debug("random source seeded", "seed", src.Seed())
		eng.random = src
	}

	eng.recorder = memory.NewRecorder()
	hooks := eng.hooks
	if eng.loop != nil {
		hooks = domain.MergeHooks(hooks, domain.LifecycleHooks{
			OnExit: func(context.Context, *domain.EventBase) { eng.loop.Stop() },
		})
	}

	runtimeOpts := []runtime.EngineOption{
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(hooks),
		runtime.WithHoldDelay(eng.holdDelay),
		runtime.WithStash(eng.stash),
		runtime.WithInventory(inv),
	}
	eng.runtime = runtime.NewEngine(
		eng.timer,
		eng.random,
		ports.MultiRenderer(eng.recorder, eng.renderer),
		runtimeOpts...,
	)
	if eng.loop != nil {
		// First in the queue, so events dispatched before Run find the first screen.
		eng.loop.Post(func() { eng.runtime.Start(context.Background()) })
	}
	return eng, nil
}

// Run starts the engine and drives the event loop until ctx is cancelled,
// Close is called, or the user exits from the first screen.
func (e *Engine) Run(ctx context.Context) error {
	if e.loop == nil {
		return ErrNoLoop
	}
	err := e.loop.Run(ctx)
	e.runtime.Close()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Start renders the first screen. Only needed with a custom timer; with the
// event loop the first screen is queued by New.
func (e *Engine) Start(ctx context.Context) {
	e.do(func() { e.runtime.Start(ctx) })
}

// Dispatch delivers an input event. Safe to call from any goroutine when the
// engine runs on its own loop.
func (e *Engine) Dispatch(input domain.Input) {
	e.do(func() { e.runtime.Dispatch(input) })
}

// Roll starts a roll session over the configured groups. On the event loop
// it waits until the loop has processed the request.
func (e *Engine) Roll() error {
	errCh := make(chan error, 1)
	if !e.do(func() { errCh <- e.runtime.Roll() }) {
		return ErrNoLoop
	}
	if e.loop == nil {
		return <-errCh
	}
	select {
	case err := <-errCh:
		return err
	case <-e.loop.Done():
		return ErrNoLoop
	}
}

// Close stops the loop and any roll in progress.
func (e *Engine) Close() {
	if e.loop != nil {
		e.loop.Stop()
		return
	}
	e.runtime.Close()
}

// Snapshot returns the last rendered snapshot. Safe for concurrent use.
func (e *Engine) Snapshot() domain.Snapshot {
	s, _ := e.recorder.Last()
	return s
}

// Recorder exposes the snapshot recorder, e.g. for the debug server.
func (e *Engine) Recorder() *memory.Recorder {
	return e.recorder
}

// Loop returns the real-time event loop, or nil with a custom timer.
func (e *Engine) Loop() *timer.Loop {
	return e.loop
}

// Seed returns the seed of the default random source, or 0 for custom sources.
func (e *Engine) Seed() int64 {
	if src, ok := e.random.(*random.Source); ok {
		return src.Seed()
	}
	return 0
}

func (e *Engine) do(fn func()) bool {
	if e.loop == nil {
		fn()
		return true
	}
	return e.loop.Post(fn)
}
