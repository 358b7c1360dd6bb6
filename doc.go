/*
Package tumble is a timer-driven dice roller engine.

A roll animates each die through decelerating tumble stages, normalizes raw
draws into display values (zero-based and tens dice), and walks an ordered
inventory of dice groups one die at a time, pausing on each result. The
engine is a single-threaded state machine: input events and timer callbacks
are processed one at a time on the same loop, so the core needs no locking.

# Architecture

The core is decoupled from its host through ports:

  - ports.Timer schedules callbacks (timer.Loop in real time, timer.Manual for tests).
  - ports.Random draws uniform values (random.Source).
  - ports.Renderer receives a domain.Snapshot on every change.
  - ports.SnapshotStash parks the configured dice during a quick roll.

# Usage

	eng, err := tumble.New(
		tumble.WithRenderer(ports.RenderFunc(func(s domain.Snapshot) {
			fmt.Println(s.State, s.RollingValue, s.Progress)
		})),
	)
	if err != nil {
		log.Fatal(err)
	}

	go func() {
		eng.Dispatch(domain.InputSelectHeld) // quick roll the selected die
	}()

	if err := eng.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package tumble
