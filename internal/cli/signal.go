package cli

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

// sessionSignals end an interactive session. In raw mode Ctrl+C arrives as a
// key, so SIGHUP (terminal closed) matters as much as SIGINT.
var sessionSignals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP}

// SignalContext is a context cancelled by a process signal that remembers
// which one arrived, so the exit message can name it.
type SignalContext struct {
	context.Context
	Cancel func()

	received atomic.Pointer[os.Signal]
}

// NewSignalContext derives a SignalContext from parent.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{Context: ctx, Cancel: cancel}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sessionSignals...)
	go sc.watch(ch)
	return sc
}

func (sc *SignalContext) watch(ch chan os.Signal) {
	defer signal.Stop(ch)
	select {
	case sig := <-ch:
		sc.received.Store(&sig)
		sc.Cancel()
	case <-sc.Done():
	}
}

// Signal returns the signal that cancelled the session, or nil.
func (sc *SignalContext) Signal() os.Signal {
	if sig := sc.received.Load(); sig != nil {
		return *sig
	}
	return nil
}
