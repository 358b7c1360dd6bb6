package runtime

import (
	"log/slog"
	"time"

	"github.com/aretw0/tumble/internal/anim"
	"github.com/aretw0/tumble/pkg/domain"
	"github.com/aretw0/tumble/pkg/inventory"
	"github.com/aretw0/tumble/pkg/ports"
)

// commit describes one value written into the inventory.
type commit struct {
	kind     domain.Kind
	group    int
	die      int
	value    int
	animated bool
}

// sequenceListener receives sequencer progress. The engine implements it.
type sequenceListener interface {
	dieStarted(group, die int, kind domain.Kind)
	rollPreview(value int)
	rollCommitted(c commit)
	rollFinished(skipped bool)
}

// sequencer walks every die of the inventory once per session, animating each
// one (or resolving it at once under skip-all) and pausing between dice.
//
// The animator timer and the hold timer are never pending together: the hold
// is only registered from the animator's completion, after the session ended,
// and next cancels the hold before starting an animation.
type sequencer struct {
	timer     ports.Timer
	rng       ports.Random
	anim      *anim.Animator
	listener  sequenceListener
	logger    *slog.Logger
	holdDelay time.Duration

	inv     *inventory.Inventory
	kind    domain.Kind
	hold    ports.TimerHandle
	active  bool
	skipAll bool

	// animations counts animator sessions started in the current roll.
	animations int
}

func newSequencer(timer ports.Timer, rng ports.Random, holdDelay time.Duration, listener sequenceListener, logger *slog.Logger) *sequencer {
	s := &sequencer{
		timer:     timer,
		rng:       rng,
		listener:  listener,
		logger:    logger,
		holdDelay: holdDelay,
	}
	s.anim = anim.New(timer, rng, anim.Callbacks{
		OnPreview:  s.onPreview,
		OnComplete: s.onComplete,
	}, anim.WithLogger(logger))
	return s
}

// begin unsets every result, rewinds the cursor and rolls the first die.
func (s *sequencer) begin(inv *inventory.Inventory) {
	s.cancelHold()
	s.anim.Deinit()

	inv.BeginRoll()
	s.inv = inv
	s.active = true
	s.skipAll = false
	s.animations = 0

	s.next()
}

// next rolls the die under the cursor, or finishes the session when the
// cursor is past the end. Under skip-all every remaining die is resolved here
// without animation.
func (s *sequencer) next() {
	s.cancelHold()

	for s.active {
		kind, ok := s.inv.CurrentKind()
		if !ok {
			s.finish()
			return
		}
		s.kind = kind
		def := domain.Lookup(kind)

		if s.skipAll {
			s.commit(def.Normalize(s.draw(def.RollRange)), false)
			continue
		}

		// The animation runs before the listener renders, so the new die's
		// first frame already reports it as animating.
		group, die := s.inv.Cursor()
		s.animations++
		s.anim.Start(def.RollRange)
		s.listener.dieStarted(group, die, kind)
		return
	}
}

// requestSkip turns skip-all on for the rest of the session.
func (s *sequencer) requestSkip() {
	if !s.active || s.skipAll {
		return
	}
	s.skipAll = true
	s.logger.Debug("skip requested", "animating", s.anim.IsRunning(), "holding", s.hold != ports.NoTimer)

	if s.hold != ports.NoTimer {
		s.next()
		return
	}
	if s.anim.IsRunning() {
		s.anim.Skip()
	}
}

// stop abandons the session without finishing it.
func (s *sequencer) stop() {
	s.active = false
	s.skipAll = false
	s.cancelHold()
	s.anim.Deinit()
}

func (s *sequencer) resetProgress() {
	s.anim.Deinit()
}

func (s *sequencer) progress() int {
	return s.anim.ProgressPerMille()
}

func (s *sequencer) animating() bool {
	return s.anim.IsRunning()
}

func (s *sequencer) skipping() bool {
	return s.active && s.skipAll
}

func (s *sequencer) onPreview(raw int) {
	if !s.active {
		return
	}
	s.listener.rollPreview(domain.Lookup(s.kind).Normalize(raw))
}

func (s *sequencer) onComplete(raw int) {
	if !s.active {
		return
	}
	s.commit(domain.Lookup(s.kind).Normalize(raw), true)
	if !s.active {
		return
	}
	if s.skipAll {
		s.next()
		return
	}
	s.hold = s.timer.Register(s.holdDelay, s.onHoldExpired)
}

func (s *sequencer) onHoldExpired() {
	s.hold = ports.NoTimer
	s.next()
}

func (s *sequencer) commit(value int, animated bool) {
	group, die := s.inv.Cursor()
	if !s.inv.CommitResult(value) {
		return
	}
	s.listener.rollCommitted(commit{
		kind:     s.kind,
		group:    group,
		die:      die,
		value:    value,
		animated: animated,
	})
}

func (s *sequencer) finish() {
	s.cancelHold()
	skipped := s.skipAll
	s.active = false
	s.skipAll = false
	s.listener.rollFinished(skipped)
}

func (s *sequencer) cancelHold() {
	if s.hold != ports.NoTimer {
		s.timer.Cancel(s.hold)
		s.hold = ports.NoTimer
	}
}

func (s *sequencer) draw(n int) int {
	v := s.rng.Roll(n)
	if v < 1 || v > n {
		return 1
	}
	return v
}
