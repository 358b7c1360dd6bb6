package timer

import (
	"time"

	"github.com/aretw0/tumble/pkg/ports"
)

type entry struct {
	handle ports.TimerHandle
	due    time.Duration
	fn     func()
}

// Manual is a virtual clock implementing ports.Timer. Nothing fires until the
// clock is advanced; callbacks then run on the caller's goroutine in due order
// (ties broken by registration order).
type Manual struct {
	now     time.Duration
	next    ports.TimerHandle
	entries []entry
	fired   int
}

// NewManual creates a virtual clock at time zero.
func NewManual() *Manual {
	return &Manual{}
}

var _ ports.Timer = (*Manual)(nil)

// Register implements ports.Timer.
func (m *Manual) Register(delay time.Duration, fn func()) ports.TimerHandle {
	if delay < 0 {
		delay = 0
	}
	m.next++
	m.entries = append(m.entries, entry{handle: m.next, due: m.now + delay, fn: fn})
	return m.next
}

// Cancel implements ports.Timer.
func (m *Manual) Cancel(h ports.TimerHandle) {
	for i, e := range m.entries {
		if e.handle == h {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return
		}
	}
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of scheduled callbacks.
func (m *Manual) Pending() int {
	return len(m.entries)
}

// Fired returns the number of callbacks run so far.
func (m *Manual) Fired() int {
	return m.fired
}

// Advance moves the clock forward by d, firing every callback that becomes
// due, including ones registered by callbacks fired along the way.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		i := m.earliest()
		if i < 0 || m.entries[i].due > target {
			break
		}
		m.pop(i)
	}
	m.now = target
}

// Step jumps to the earliest pending callback and fires it.
// It returns false when nothing is pending.
func (m *Manual) Step() bool {
	i := m.earliest()
	if i < 0 {
		return false
	}
	m.pop(i)
	return true
}

// RunUntilIdle steps until nothing is pending or limit callbacks have fired.
// It returns the number of callbacks fired.
func (m *Manual) RunUntilIdle(limit int) int {
	n := 0
	for n < limit && m.Step() {
		n++
	}
	return n
}

func (m *Manual) earliest() int {
	best := -1
	for i, e := range m.entries {
		if best < 0 || e.due < m.entries[best].due ||
			(e.due == m.entries[best].due && e.handle < m.entries[best].handle) {
			best = i
		}
	}
	return best
}

func (m *Manual) pop(i int) {
	e := m.entries[i]
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	if e.due > m.now {
		m.now = e.due
	}
	m.fired++
	e.fn()
}
