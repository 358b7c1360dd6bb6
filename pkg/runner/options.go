package runner

import (
	"io"
	"log/slog"
)

// DefaultReadBufferSize is the number of bytes read from the input per call.
const DefaultReadBufferSize = 64

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInput sets the key source. Defaults to os.Stdin.
func WithInput(in io.Reader) Option {
	return func(r *Runner) {
		r.Input = in
	}
}

// WithHeadless disables raw mode and keeps the session alive after the input
// closes, so piped key scripts can finish their rolls.
func WithHeadless(headless bool) Option {
	return func(r *Runner) {
		r.Headless = headless
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(r *Runner) {
		r.Keys = keys
	}
}
