package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/tumble"
	"github.com/aretw0/tumble/internal/presentation/tui"
	"github.com/aretw0/tumble/pkg/domain"
	"github.com/aretw0/tumble/pkg/ports"
	"github.com/aretw0/tumble/pkg/timer"
)

// ErrRollIncomplete is returned when a roll does not reach the results screen.
var ErrRollIncomplete = errors.New("roll did not finish")

// maxInstantSteps bounds the virtual clock; a full inventory needs far fewer.
const maxInstantSteps = 100000

// RollOptions configures a one-shot roll.
type RollOptions struct {
	Groups    []domain.DieGroup
	Seed      int64
	HoldDelay time.Duration
	// Instant runs the animation on a virtual clock.
	Instant bool
	// Renderer receives frames of an animated roll. Nil discards them.
	Renderer ports.Renderer
	Logger   *slog.Logger
}

// Roll rolls the groups once and returns them with their results.
func Roll(ctx context.Context, opts RollOptions) ([]domain.DieGroup, error) {
	if len(opts.Groups) == 0 {
		return nil, domain.ErrNoGroups
	}
	logger := opts.Logger
	if logger == nil {
		logger = NewLogger(false, slog.LevelInfo)
	}

	base := []tumble.Option{
		tumble.WithLogger(logger),
		tumble.WithSeed(opts.Seed),
		tumble.WithHoldDelay(opts.HoldDelay),
		tumble.WithGroups(opts.Groups...),
	}
	if opts.Renderer != nil {
		base = append(base, tumble.WithRenderer(opts.Renderer))
	}

	if opts.Instant {
		return rollInstant(ctx, base)
	}
	return rollAnimated(ctx, base)
}

func rollInstant(ctx context.Context, base []tumble.Option) ([]domain.DieGroup, error) {
	clock := timer.NewManual()
	engine, err := tumble.New(append(base, tumble.WithTimer(clock))...)
	if err != nil {
		return nil, err
	}
	defer engine.Close()

	engine.Start(ctx)
	if err := engine.Roll(); err != nil {
		return nil, err
	}
	clock.RunUntilIdle(maxInstantSteps)
	return results(engine.Snapshot())
}

func rollAnimated(ctx context.Context, base []tumble.Option) ([]domain.DieGroup, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	var once sync.Once
	finished := domain.LifecycleHooks{
		OnStateEnter: func(_ context.Context, e *domain.StateEvent) {
			if e.State == domain.StateResults {
				once.Do(func() { close(done) })
			}
		},
	}
	engine, err := tumble.New(append(base, tumble.WithLifecycleHooks(finished))...)
	if err != nil {
		return nil, err
	}

	runErr := make(chan error, 1)
	go func() { runErr <- engine.Run(ctx) }()

	if err := engine.Roll(); err != nil {
		interrupted := ctx.Err()
		cancel()
		<-runErr
		if interrupted != nil {
			return nil, incomplete(interrupted)
		}
		return nil, err
	}

	select {
	case <-done:
		cancel()
		if err := <-runErr; err != nil && !isContextErr(err) {
			return nil, err
		}
		return results(engine.Snapshot())
	case <-ctx.Done():
		<-runErr
		return nil, incomplete(ctx.Err())
	case err := <-runErr:
		if ctx.Err() != nil {
			return nil, incomplete(ctx.Err())
		}
		if err != nil {
			return nil, err
		}
		// The loop stopped on its own before the results screen.
		return results(engine.Snapshot())
	}
}

func incomplete(cause error) error {
	return fmt.Errorf("%w: %v", ErrRollIncomplete, cause)
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func results(s domain.Snapshot) ([]domain.DieGroup, error) {
	if s.State != domain.StateResults {
		return nil, fmt.Errorf("%w: ended in %s", ErrRollIncomplete, s.State)
	}
	return s.Inventory.Groups, nil
}

// WriteResults renders groups as a markdown table. A nil render func prints
// the raw markdown.
func WriteResults(w io.Writer, groups []domain.DieGroup, render func(string) (string, error)) error {
	md := tui.ResultsMarkdown(groups)
	if render != nil {
		out, err := render(md)
		if err != nil {
			return fmt.Errorf("render results: %w", err)
		}
		md = out
	}
	_, err := io.WriteString(w, strings.TrimRight(md, "\n")+"\n")
	return err
}
