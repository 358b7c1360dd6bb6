package observability

import (
	"context"
	"sync"
	"time"

	"github.com/aretw0/tumble/pkg/domain"
)

// DefaultHistorySize is the number of sessions kept by NewHistory.
const DefaultHistorySize = 32

// Roll is one committed die inside a session.
type Roll struct {
	Kind     domain.Kind `json:"kind"`
	Group    int         `json:"group"`
	Die      int         `json:"die"`
	Value    int         `json:"value"`
	Animated bool        `json:"animated"`
}

// Session is the record of one roll session.
type Session struct {
	ID         string    `json:"id"`
	Quick      bool      `json:"quick"`
	Skipped    bool      `json:"skipped"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at,omitempty"`
	Rolls      []Roll    `json:"rolls"`
}

// Total sums the committed values.
func (s Session) Total() int {
	total := 0
	for _, r := range s.Rolls {
		total += r.Value
	}
	return total
}

// History keeps the most recent sessions in a bounded ring. Safe for
// concurrent use.
type History struct {
	mu      sync.RWMutex
	size    int
	done    []Session
	current *Session
}

// NewHistory creates a history keeping size sessions. Non-positive sizes use
// DefaultHistorySize.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{size: size}
}

// Hooks returns lifecycle hooks that feed the history.
func (h *History) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSessionStart: func(_ context.Context, e *domain.SessionEvent) {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.current = &Session{ID: e.SessionID, Quick: e.Quick, StartedAt: e.Timestamp}
		},
		OnRollCommit: func(_ context.Context, e *domain.RollEvent) {
			h.mu.Lock()
			defer h.mu.Unlock()
			if h.current == nil || h.current.ID != e.SessionID {
				return
			}
			h.current.Rolls = append(h.current.Rolls, Roll{
				Kind: e.Kind, Group: e.Group, Die: e.Die, Value: e.Value, Animated: e.Animated,
			})
		},
		OnSessionFinish: func(_ context.Context, e *domain.SessionEvent) {
			h.mu.Lock()
			defer h.mu.Unlock()
			if h.current == nil || h.current.ID != e.SessionID {
				return
			}
			s := *h.current
			s.Skipped = e.Skipped
			s.FinishedAt = e.Timestamp
			h.current = nil

			h.done = append(h.done, s)
			if len(h.done) > h.size {
				h.done = h.done[len(h.done)-h.size:]
			}
		},
	}
}

// Sessions returns finished sessions, newest first.
func (h *History) Sessions() []Session {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Session, 0, len(h.done))
	for i := len(h.done) - 1; i >= 0; i-- {
		s := h.done[i]
		s.Rolls = append([]Roll(nil), s.Rolls...)
		out = append(out, s)
	}
	return out
}

// Active reports the session in progress, if any.
func (h *History) Active() (Session, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.current == nil {
		return Session{}, false
	}
	s := *h.current
	s.Rolls = append([]Roll(nil), s.Rolls...)
	return s, true
}
