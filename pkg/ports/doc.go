/*
Package ports defines the driven ports (interfaces) for the Tumble engine.

These interfaces decouple the core logic from the host runtime, allowing the
engine to run on a real-time event loop, on a virtual clock in tests, or behind
any rendering surface.

# Key Interfaces

  - Timer: Schedules and cancels one-shot callbacks (the cooperative runtime).
  - Random: Uniform integer draws in [1, n].
  - Renderer: Receives a Snapshot on every state change.
  - SnapshotStash: Keeps a copy of the inventory while a quick roll replaces it.
*/
package ports
