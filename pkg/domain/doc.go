/*
Package domain contains the core domain models for the Tumble dice engine.

It defines the closed set of die kinds and their static definitions, the dice
group model, the application states and input events, and the render snapshot
handed to the host. This package is kept pure and free of external dependencies
like I/O or timers, following Hexagonal Architecture principles.

# Key Entities

  - Kind / Definition: A die kind and its immutable metadata (ranges, zero-based, tens mode).
  - DieGroup: A configured group of dice of one kind with per-die result slots.
  - AppState: The screen the application state machine is on.
  - Input: A discrete command coming from buttons or taps.
  - Snapshot: Everything a rendering sink needs to draw the current state.
*/
package domain
