package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/tumble"
	"github.com/aretw0/tumble/internal/config"
	"github.com/aretw0/tumble/internal/metrics"
	"github.com/aretw0/tumble/internal/presentation/tui"
	httpadapter "github.com/aretw0/tumble/pkg/adapters/http"
	"github.com/aretw0/tumble/pkg/adapters/memory"
	"github.com/aretw0/tumble/pkg/domain"
	"github.com/aretw0/tumble/pkg/observability"
	"github.com/aretw0/tumble/pkg/ports"
	"github.com/aretw0/tumble/pkg/runner"
)

// SessionOptions configures an interactive session.
type SessionOptions struct {
	Config *config.Config
	Logger *slog.Logger
	// Groups preloads the inventory.
	Groups []domain.DieGroup
	In     io.Reader
	Out    io.Writer
	Quiet  bool
}

// RunSession runs the interactive dice roller until the user exits.
func RunSession(ctx context.Context, opts SessionOptions) error {
	cfg := opts.Config
	if cfg == nil {
		d := config.Default()
		cfg = &d
	}
	logger := opts.Logger
	if logger == nil {
		logger = NewLogger(false, slog.LevelInfo)
	}
	in, out := opts.In, opts.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	sc := NewSignalContext(ctx)
	defer sc.Cancel()

	profile := ColorProfile(out, cfg.Color)
	if !opts.Quiet && !cfg.Headless {
		tui.PrintBanner(out, profile)
	}

	frameOpts := []runner.FrameOption{runner.WithProfile(profile)}
	if cfg.Headless {
		frameOpts = append(frameOpts, runner.WithoutClear())
	}
	frames := runner.NewFrameRenderer(out, frameOpts...)
	collector := metrics.New()
	history := observability.NewHistory(observability.DefaultHistorySize)
	streams := httpadapter.NewStreamManager(logger)
	stash := memory.NewStash()

	engine, err := tumble.New(
		tumble.WithLogger(logger),
		tumble.WithLifecycleHooks(collector.Hooks()),
		tumble.WithLifecycleHooks(history.Hooks()),
		tumble.WithLifecycleHooks(createDebugHooks(logger)),
		tumble.WithRenderer(ports.MultiRenderer(frames, streams)),
		tumble.WithStash(stash),
		tumble.WithHoldDelay(cfg.HoldDelay),
		tumble.WithSeed(cfg.Seed),
		tumble.WithDefaultKind(cfg.Kind()),
		tumble.WithGroups(opts.Groups...),
	)
	if err != nil {
		return err
	}

	if cfg.DebugAddr != "" {
		handler := httpadapter.NewHandler(&httpadapter.Server{
			Source:  engine.Recorder(),
			History: history,
			Streams: streams,
			Metrics: collector.Handler(),
			Logger:  logger,
			Info: func() httpadapter.Info {
				return sessionInfo(sc, engine, history, stash, logger)
			},
		})
		go func() {
			if err := httpadapter.Serve(sc, cfg.DebugAddr, handler, logger); err != nil {
				logger.Error("debug server failed", "err", err, "addr", cfg.DebugAddr)
			}
		}()
	}

	logger.Info("session started", "seed", engine.Seed(), "groups", len(opts.Groups))
	r := runner.NewRunner(engine,
		runner.WithLogger(logger),
		runner.WithInput(in),
		runner.WithHeadless(cfg.Headless),
	)
	err = r.Run(sc)
	logCompletion(out, sc.Signal(), opts.Quiet)
	return handleExecutionError(err)
}

// sessionInfo describes the running session for GET /info.
func sessionInfo(ctx context.Context, engine *tumble.Engine, history *observability.History, stash *memory.Stash, logger *slog.Logger) httpadapter.Info {
	info := httpadapter.Info{App: "tumble", Version: tumble.Version, Seed: engine.Seed()}
	if active, ok := history.Active(); ok {
		info.SessionID = active.ID
	}
	keys, err := stash.List(ctx)
	if err != nil {
		logger.Warn("stash listing failed", "err", err)
	}
	info.Stashed = keys
	return info
}
