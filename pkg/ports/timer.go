package ports

import "time"

// TimerHandle identifies a scheduled callback.
// The zero value, NoTimer, means "nothing scheduled".
type TimerHandle uint64

// NoTimer is the empty handle sentinel.
const NoTimer TimerHandle = 0

// Timer is a one-shot callback scheduler.
//
// Implementations must run callbacks one at a time on the same logical thread
// that calls Register and Cancel, and a cancelled callback must never run.
type Timer interface {
	// Register schedules fn to run once after delay and returns its handle.
	Register(delay time.Duration, fn func()) TimerHandle

	// Cancel drops a pending callback. Cancelling NoTimer, an already fired
	// handle, or an unknown handle is a no-op.
	Cancel(h TimerHandle)
}
