/*
Package timer implements ports.Timer.

Two runtimes are provided:

  - Loop: a real-time cooperative event loop. Timer callbacks and posted input
    events run one at a time on the goroutine that calls Run, so the engine
    never sees concurrent callbacks.
  - Manual: a virtual clock that fires callbacks on the caller's goroutine when
    advanced. It backs deterministic tests and the instant headless mode.
*/
package timer
