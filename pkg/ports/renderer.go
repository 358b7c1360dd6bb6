package ports

import "github.com/aretw0/tumble/pkg/domain"

// Renderer is the rendering sink. Render is called once per state change and
// must not block.
type Renderer interface {
	Render(snapshot domain.Snapshot)
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(domain.Snapshot)

// Render implements Renderer.
func (f RenderFunc) Render(s domain.Snapshot) {
	f(s)
}

// MultiRenderer fans a snapshot out to several sinks in order.
func MultiRenderer(renderers ...Renderer) Renderer {
	return RenderFunc(func(s domain.Snapshot) {
		for _, r := range renderers {
			if r != nil {
				r.Render(s)
			}
		}
	})
}

// NopRenderer discards snapshots.
var NopRenderer Renderer = RenderFunc(func(domain.Snapshot) {})
