package runner

import (
	"io"
	"strings"
	"sync"

	"github.com/aretw0/tumble/internal/presentation/tui"
	"github.com/aretw0/tumble/pkg/domain"
	"github.com/muesli/termenv"
)

// FrameRenderer is a ports.Renderer that repaints a terminal with one text
// frame per snapshot.
type FrameRenderer struct {
	mu    sync.Mutex
	out   *termenv.Output
	clear bool
}

// FrameOption configures a FrameRenderer.
type FrameOption func(*frameConfig)

type frameConfig struct {
	profile *termenv.Profile
	clear   bool
}

// WithProfile forces a colour profile instead of detecting one from w.
func WithProfile(p termenv.Profile) FrameOption {
	return func(c *frameConfig) {
		c.profile = &p
	}
}

// WithoutClear appends frames instead of clearing the screen between them.
func WithoutClear() FrameOption {
	return func(c *frameConfig) {
		c.clear = false
	}
}

// NewFrameRenderer creates a renderer writing to w.
func NewFrameRenderer(w io.Writer, opts ...FrameOption) *FrameRenderer {
	cfg := frameConfig{clear: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	var outOpts []termenv.OutputOption
	if cfg.profile != nil {
		outOpts = append(outOpts, termenv.WithProfile(*cfg.profile))
	}
	return &FrameRenderer{
		out:   termenv.NewOutput(w, outOpts...),
		clear: cfg.clear,
	}
}

// Render implements ports.Renderer.
func (f *FrameRenderer) Render(s domain.Snapshot) {
	frame := tui.Frame(s, f.out.Profile)
	// Raw mode disables the newline translation of the tty.
	frame = strings.ReplaceAll(frame, "\n", "\r\n")

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.clear {
		f.out.ClearScreen()
	}
	io.WriteString(f.out, frame)
}

// Profile returns the colour profile frames are drawn with.
func (f *FrameRenderer) Profile() termenv.Profile {
	return f.out.Profile
}
