package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/tumble/internal/logging"
	"github.com/aretw0/tumble/pkg/domain"
	"github.com/muesli/termenv"
)

// NewLogger configures the application logger. Interactive sessions draw on
// stdout, so logs only go to stderr when explicitly enabled.
func NewLogger(enabled bool, level slog.Level) *slog.Logger {
	if enabled {
		return logging.New(level)
	}
	return logging.NewNop()
}

// ColorProfile picks the terminal profile for w, or plain ASCII when colour
// is disabled.
func ColorProfile(w io.Writer, color bool) termenv.Profile {
	if !color {
		return termenv.Ascii
	}
	return termenv.NewOutput(w).EnvColorProfile()
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStateLeave: func(_ context.Context, e *domain.StateEvent) {
			logger.Debug("leave state", "state", e.State)
		},
		OnSessionStart: func(_ context.Context, e *domain.SessionEvent) {
			logger.Debug("session start", "session_id", e.SessionID, "dice", e.Dice, "quick", e.Quick)
		},
		OnRollCommit: func(_ context.Context, e *domain.RollEvent) {
			logger.Debug("commit", "kind", e.Kind, "value", e.Value, "animated", e.Animated,
				"progress", fmt.Sprintf("%d/%d", e.Completed, e.Total))
		},
		OnSessionFinish: func(_ context.Context, e *domain.SessionEvent) {
			logger.Debug("session finish", "session_id", e.SessionID, "skipped", e.Skipped)
		},
	}
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, io.EOF)
}

// handleExecutionError maps interruptions to a clean exit.
func handleExecutionError(err error) error {
	if err == nil || isInterrupted(err) {
		return nil
	}
	return err
}

func logCompletion(w io.Writer, sig os.Signal, quiet bool) {
	if quiet {
		return
	}
	switch sig {
	case nil:
		printSystemMessage(w, "Bye.")
	case os.Interrupt:
		fmt.Fprintf(w, "[CTRL+C]\n")
		printSystemMessage(w, "Interrupted.")
	default:
		fmt.Fprintln(w)
		printSystemMessage(w, "Terminated.")
	}
}
