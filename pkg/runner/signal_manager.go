package runner

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// DefaultRaceWindow is how long a failed key read waits for a signal that
// may still be in flight.
const DefaultRaceWindow = 100 * time.Millisecond

// SignalManager cancels the runner's context on SIGINT or SIGTERM. The key
// pump consults it when the input fails, because a terminal closing stdin on
// Ctrl+C can beat the signal itself.
type SignalManager struct {
	// RaceWindow bounds CheckRace.
	RaceWindow time.Duration

	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc
}

// NewSignalManager starts listening right away. A nil parent means
// context.Background.
func NewSignalManager(parent context.Context) *SignalManager {
	if parent == nil {
		parent = context.Background()
	}
	sm := &SignalManager{RaceWindow: DefaultRaceWindow, parent: parent}
	sm.Reset()
	return sm
}

// Context is cancelled by a signal or by the parent.
func (sm *SignalManager) Context() context.Context {
	return sm.ctx
}

// Reset drops the current context and listens again on a fresh one.
func (sm *SignalManager) Reset() {
	sm.Stop()
	sm.ctx, sm.cancel = signal.NotifyContext(sm.parent, os.Interrupt, syscall.SIGTERM)
}

// Stop cancels the context and unregisters the signals.
func (sm *SignalManager) Stop() {
	if sm.cancel != nil {
		sm.cancel()
	}
}

// CheckRace is called after a failed key read. It waits up to RaceWindow for
// a pending signal and reports whether the session was cancelled, so an EOF
// caused by Ctrl+C is not mistaken for the input simply running out.
func (sm *SignalManager) CheckRace() bool {
	if sm.ctx.Err() != nil {
		return true
	}
	t := time.NewTimer(sm.RaceWindow)
	defer t.Stop()
	select {
	case <-sm.ctx.Done():
		return true
	case <-t.C:
		return false
	}
}
