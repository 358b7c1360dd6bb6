/*
Package runner drives a tumble engine from an interactive terminal.

It reads keystrokes (raw mode when stdin is a TTY), maps them to domain
inputs, dispatches them to the engine and draws every snapshot as a text
frame. The engine's own event loop runs alongside; the runner returns when
the engine asks to exit, the input closes, or the process is signalled.

# Key Components

  - Runner: owns the engine loop goroutine and the key pump.
  - KeyMap: decodes raw terminal bytes into domain.Input values.
  - FrameRenderer: a ports.Renderer that repaints the terminal.
  - SignalManager: SIGINT/SIGTERM context handling.

# Usage

	frames := runner.NewFrameRenderer(os.Stdout)
	engine, _ := tumble.New(tumble.WithRenderer(frames))

	r := runner.NewRunner(engine, runner.WithLogger(logger))
	if err := r.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package runner
