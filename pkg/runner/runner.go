package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/tumble/internal/logging"
	"github.com/aretw0/tumble/pkg/domain"
	"golang.org/x/term"
)

// Engine is the part of the tumble facade the runner drives.
type Engine interface {
	Run(ctx context.Context) error
	Dispatch(input domain.Input)
}

// Runner pumps terminal keys into an engine while the engine loop runs.
type Runner struct {
	Input    io.Reader
	Logger   *slog.Logger
	Headless bool
	Keys     KeyMap

	engine Engine
}

// NewRunner creates a runner reading from stdin.
func NewRunner(engine Engine, opts ...Option) *Runner {
	r := &Runner{
		Input:  os.Stdin,
		Logger: logging.NewNop(),
		Keys:   DefaultKeyMap(),
		engine: engine,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type readResult struct {
	buf []byte
	err error
}

// Run blocks until the engine exits, a quit key is pressed, the input closes
// (interactive mode only) or ctx is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	signals := NewSignalManager(ctx)
	defer signals.Stop()

	runCtx, cancel := context.WithCancel(signals.Context())
	defer cancel()

	restore, err := r.enterRaw()
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer restore()

	engineErr := make(chan error, 1)
	go func() {
		engineErr <- r.engine.Run(runCtx)
	}()

	reads := make(chan readResult)
	go r.pump(runCtx, reads)

	for {
		select {
		case err := <-engineErr:
			return normalize(err)

		case <-runCtx.Done():
			r.Logger.Debug("runner cancelled")
			return normalize(<-engineErr)

		case res, ok := <-reads:
			if !ok {
				reads = nil
				continue
			}
			if res.err != nil {
				if signals.CheckRace() {
					r.Logger.Debug("input closed by a signal")
					return normalize(<-engineErr)
				}
				if !errors.Is(res.err, io.EOF) {
					r.Logger.Warn("input read failed", "err", res.err)
				}
				if r.Headless {
					r.Logger.Debug("input closed, waiting for engine exit")
					reads = nil
					continue
				}
				cancel()
				return normalize(<-engineErr)
			}
			for _, action := range r.Keys.Decode(res.buf) {
				if action.Quit {
					r.Logger.Info("quit requested")
					cancel()
					return normalize(<-engineErr)
				}
				r.Logger.Debug("key", "input", action.Input)
				r.engine.Dispatch(action.Input)
			}
		}
	}
}

// pump reads the input until it fails. The final error is delivered before
// the channel closes.
func (r *Runner) pump(ctx context.Context, out chan<- readResult) {
	defer close(out)
	buf := make([]byte, DefaultReadBufferSize)
	for {
		n, err := r.Input.Read(buf)
		if n > 0 {
			chunk := append([]byte(nil), buf[:n]...)
			select {
			case out <- readResult{buf: chunk}:
			case <-ctx.Done():
				return
			}
		}
		if err != nil {
			select {
			case out <- readResult{err: err}:
			case <-ctx.Done():
			}
			return
		}
	}
}

// enterRaw switches a terminal input to raw mode and returns its restore func.
func (r *Runner) enterRaw() (func(), error) {
	noop := func() {}
	if r.Headless {
		return noop, nil
	}
	f, ok := r.Input.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return noop, nil
	}
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return noop, err
	}
	return func() {
		if err := term.Restore(fd, state); err != nil {
			r.Logger.Warn("terminal restore failed", "err", err)
		}
	}, nil
}

func normalize(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
