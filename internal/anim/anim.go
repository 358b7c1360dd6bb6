// Package anim drives a single die-roll animation: a burst of preview values
// that slows down through fixed stages, a short final stage, and a hold on the
// final value before it is reported as complete.
//
// The animator owns at most one pending timer. Every Start begins a new
// generation, and callbacks from an older generation are ignored even if the
// timer runtime delivers them after a cancel.
package anim

import (
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/tumble/pkg/ports"
)

// Stage is one decelerating step of the main animation.
type Stage struct {
	Duration time.Duration
	Step     time.Duration
}

// Ticks returns how many previews the stage emits (at least one).
func (s Stage) Ticks() int {
	if s.Step <= 0 {
		return 1
	}
	n := int(s.Duration / s.Step)
	if n < 1 {
		return 1
	}
	return n
}

// MainStages are played in order before the final stage.
var MainStages = [...]Stage{
	{Duration: 700 * time.Millisecond, Step: 40 * time.Millisecond},
	{Duration: 500 * time.Millisecond, Step: 70 * time.Millisecond},
	{Duration: 300 * time.Millisecond, Step: 110 * time.Millisecond},
}

const (
	// FinalDuration is split evenly across the final stage ticks.
	FinalDuration = 1500 * time.Millisecond
	// HoldDuration is how long the final value stays on screen before completion.
	HoldDuration = 350 * time.Millisecond

	finalTicksMin = 3
	finalTicksMax = 4

	fallbackFinalInterval = 350 * time.Millisecond
)

// TotalDuration is the nominal session length used as the progress denominator.
func TotalDuration() time.Duration {
	total := FinalDuration + HoldDuration
	for _, s := range MainStages {
		total += s.Duration
	}
	return total
}

// Callbacks receive raw draws in [1, range].
type Callbacks struct {
	// OnPreview is called for every intermediate value.
	OnPreview func(value int)
	// OnComplete is called exactly once per Start with the final value.
	OnComplete func(value int)
}

type phase int

const (
	phaseIdle phase = iota
	phaseMain
	phaseFinal
	phaseHold
	phaseDone
)

// Animator runs one animation session at a time. It is not safe for
// concurrent use; all calls and timer callbacks must share one logical thread.
type Animator struct {
	timer     ports.Timer
	rng       ports.Random
	callbacks Callbacks
	logger    *slog.Logger

	handle  ports.TimerHandle
	gen     uint64
	running bool
	phase   phase
	rangeN  int

	stage          int
	stageTick      int
	stageTickLimit int

	finalTarget   int
	finalCount    int
	finalInterval time.Duration
	pending       int

	elapsed time.Duration
	total   time.Duration
}

// Option configures an Animator.
type Option func(*Animator)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Animator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New creates an idle animator.
func New(timer ports.Timer, rng ports.Random, callbacks Callbacks, opts ...Option) *Animator {
	a := &Animator{
		timer:     timer,
		rng:       rng,
		callbacks: callbacks,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start begins a new session drawing from [1, rangeN]. A running session is
// abandoned without completing. rangeN <= 0 is treated as 1.
func (a *Animator) Start(rangeN int) {
	if rangeN <= 0 {
		rangeN = 1
	}
	a.cancelTimer()
	a.gen++

	a.running = true
	a.phase = phaseMain
	a.rangeN = rangeN
	a.stage = 0
	a.stageTick = 0
	a.stageTickLimit = MainStages[0].Ticks()

	span := finalTicksMax - finalTicksMin + 1
	a.finalTarget = finalTicksMin + a.rng.Roll(span) - 1
	if a.finalTarget < finalTicksMin {
		a.finalTarget = finalTicksMin
	}
	a.finalInterval = FinalDuration / time.Duration(a.finalTarget)
	if a.finalInterval <= 0 {
		a.finalInterval = fallbackFinalInterval
	}
	a.finalCount = 0
	a.pending = 0

	a.elapsed = 0
	a.total = TotalDuration()

	a.logger.Debug("animation started", "range", rangeN, "final_ticks", a.finalTarget)
	a.schedule(MainStages[0].Step)
}

// Skip ends the session immediately with a fresh draw. The value is
// previewed, the session is marked finished, then completion fires.
// It is a no-op when nothing is running.
func (a *Animator) Skip() {
	if !a.running {
		return
	}
	a.cancelTimer()
	gen := a.gen

	value := a.draw()
	a.preview(value)
	if gen != a.gen {
		return
	}
	a.finish()
	a.logger.Debug("animation skipped", "value", value)
	a.complete(value)
}

// IsRunning reports whether a session is in progress.
func (a *Animator) IsRunning() bool {
	return a.running
}

// ProgressPerMille returns the session progress in [0, 1000].
// It is 0 when idle and 1000 once a session has finished.
func (a *Animator) ProgressPerMille() int {
	if a.total <= 0 {
		return 0
	}
	p := int(a.elapsed * 1000 / a.total)
	switch {
	case p > 1000:
		return 1000
	case p < 0:
		return 0
	}
	return p
}

// Deinit cancels any pending timer and resets the animator to idle.
// Completion does not fire for an abandoned session.
func (a *Animator) Deinit() {
	a.cancelTimer()
	a.gen++
	a.running = false
	a.phase = phaseIdle
	a.elapsed = 0
	a.total = 0
}

func (a *Animator) tick(gen uint64) {
	if gen != a.gen || !a.running {
		return
	}
	a.handle = ports.NoTimer

	if a.phase == phaseHold {
		a.elapsed += HoldDuration
		value := a.pending
		a.finish()
		a.complete(value)
		return
	}

	final := a.phase == phaseFinal
	step := a.finalInterval
	if !final {
		step = MainStages[a.stage].Step
	}

	value := a.draw()
	a.preview(value)
	if gen != a.gen || !a.running {
		return
	}
	a.elapsed += step

	if !final {
		a.stageTick++
		if a.stageTick >= a.stageTickLimit {
			a.stage++
			if a.stage >= len(MainStages) {
				a.phase = phaseFinal
				a.finalCount = 0
			} else {
				a.stageTick = 0
				a.stageTickLimit = MainStages[a.stage].Ticks()
			}
		}
		next := a.finalInterval
		if a.phase == phaseMain {
			next = MainStages[a.stage].Step
		}
		a.schedule(next)
		return
	}

	a.finalCount++
	if a.finalCount >= a.finalTarget {
		a.pending = value
		a.phase = phaseHold
		a.schedule(HoldDuration)
		return
	}
	a.schedule(a.finalInterval)
}

func (a *Animator) schedule(delay time.Duration) {
	gen := a.gen
	a.handle = a.timer.Register(delay, func() { a.tick(gen) })
}

func (a *Animator) cancelTimer() {
	if a.handle != ports.NoTimer {
		a.timer.Cancel(a.handle)
		a.handle = ports.NoTimer
	}
}

func (a *Animator) finish() {
	a.running = false
	a.phase = phaseDone
	a.handle = ports.NoTimer
	a.elapsed = a.total
}

func (a *Animator) draw() int {
	v := a.rng.Roll(a.rangeN)
	if v < 1 || v > a.rangeN {
		v = 1
	}
	return v
}

func (a *Animator) preview(v int) {
	if a.callbacks.OnPreview != nil {
		a.callbacks.OnPreview(v)
	}
}

func (a *Animator) complete(v int) {
	if a.callbacks.OnComplete != nil {
		a.callbacks.OnComplete(v)
	}
}
