package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStateEnter    EventType = "state_enter"
	EventStateLeave    EventType = "state_leave"
	EventSessionStart  EventType = "session_start"
	EventSessionFinish EventType = "session_finish"
	EventRollCommit    EventType = "roll_commit"
	EventQuickRestore  EventType = "quick_roll_restore"
	EventExit          EventType = "exit"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id,omitempty"`
}

// StateEvent represents entry or exit from an application state.
type StateEvent struct {
	EventBase
	State AppState `json:"state"`
}

// SessionEvent represents the start or end of a roll session.
type SessionEvent struct {
	EventBase
	Quick   bool `json:"quick"`
	Dice    int  `json:"dice"`
	Skipped bool `json:"skipped,omitempty"`
}

// RollEvent represents a committed die result.
type RollEvent struct {
	EventBase
	Kind      Kind `json:"kind"`
	Group     int  `json:"group"`
	Die       int  `json:"die"`
	Value     int  `json:"value"`
	Animated  bool `json:"animated"`
	Completed int  `json:"completed"`
	Total     int  `json:"total"`
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks run synchronously on the engine's single logical thread and must not block.
type LifecycleHooks struct {
	OnStateEnter       func(context.Context, *StateEvent)
	OnStateLeave       func(context.Context, *StateEvent)
	OnSessionStart     func(context.Context, *SessionEvent)
	OnSessionFinish    func(context.Context, *SessionEvent)
	OnRollCommit       func(context.Context, *RollEvent)
	OnQuickRollRestore func(context.Context, *EventBase)
	OnExit             func(context.Context, *EventBase)
}

// MergeHooks returns hooks that call every non-nil callback of each input in order.
func MergeHooks(all ...LifecycleHooks) LifecycleHooks {
	var out LifecycleHooks
	for _, h := range all {
		out.OnStateEnter = chain(out.OnStateEnter, h.OnStateEnter)
		out.OnStateLeave = chain(out.OnStateLeave, h.OnStateLeave)
		out.OnSessionStart = chain(out.OnSessionStart, h.OnSessionStart)
		out.OnSessionFinish = chain(out.OnSessionFinish, h.OnSessionFinish)
		out.OnRollCommit = chain(out.OnRollCommit, h.OnRollCommit)
		out.OnQuickRollRestore = chain(out.OnQuickRollRestore, h.OnQuickRollRestore)
		out.OnExit = chain(out.OnExit, h.OnExit)
	}
	return out
}

func chain[E any](a, b func(context.Context, *E)) func(context.Context, *E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *E) {
		a(ctx, e)
		b(ctx, e)
	}
}
