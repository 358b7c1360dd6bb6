package timer

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/tumble/pkg/ports"
)

// DefaultQueueSize is the default number of queued callbacks before Post blocks.
const DefaultQueueSize = 64

// Loop is a real-time single-threaded event loop implementing ports.Timer.
type Loop struct {
	mu      sync.Mutex
	next    ports.TimerHandle
	pending map[ports.TimerHandle]*time.Timer

	queue    chan func()
	done     chan struct{}
	stopOnce sync.Once

	logger *slog.Logger
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithQueueSize sets the callback queue capacity.
func WithQueueSize(n int) LoopOption {
	return func(l *Loop) {
		if n > 0 {
			l.queue = make(chan func(), n)
		}
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) LoopOption {
	return func(l *Loop) {
		l.logger = logger
	}
}

// NewLoop creates a stopped loop. Call Run to start dispatching.
func NewLoop(opts ...LoopOption) *Loop {
	l := &Loop{
		pending: make(map[ports.TimerHandle]*time.Timer),
		queue:   make(chan func(), DefaultQueueSize),
		done:    make(chan struct{}),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.Timer = (*Loop)(nil)

// Register implements ports.Timer. The callback runs on the loop goroutine.
func (l *Loop) Register(delay time.Duration, fn func()) ports.TimerHandle {
	if delay < 0 {
		delay = 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.next++
	h := l.next
	l.pending[h] = time.AfterFunc(delay, func() {
		l.enqueue(func() { l.fire(h, fn) })
	})
	return h
}

// Cancel implements ports.Timer.
func (l *Loop) Cancel(h ports.TimerHandle) {
	if h == ports.NoTimer {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if t, ok := l.pending[h]; ok {
		t.Stop()
		delete(l.pending, h)
	}
}

// fire runs fn unless h was cancelled after its time.Timer already expired.
func (l *Loop) fire(h ports.TimerHandle, fn func()) {
	l.mu.Lock()
	_, live := l.pending[h]
	delete(l.pending, h)
	l.mu.Unlock()

	if live {
		fn()
	}
}

// Post queues fn to run on the loop goroutine. It is safe to call from any
// goroutine and returns false once the loop has stopped.
func (l *Loop) Post(fn func()) bool {
	return l.enqueue(fn)
}

func (l *Loop) enqueue(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.queue <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Pending returns the number of scheduled, not yet fired callbacks.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}

// Run dispatches callbacks until ctx is cancelled or Stop is called.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Debug("event loop started")
	defer l.logger.Debug("event loop stopped")

	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()
		case <-l.done:
			return nil
		case fn := <-l.queue:
			fn()
		}
	}
}

// Done is closed once the loop stops.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Stop halts the loop and drops every pending timer. Safe to call repeatedly.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.done)
		l.mu.Lock()
		for h, t := range l.pending {
			t.Stop()
			delete(l.pending, h)
		}
		l.mu.Unlock()
	})
}
