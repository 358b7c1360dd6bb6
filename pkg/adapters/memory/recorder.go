package memory

import (
	"sync"

	"github.com/aretw0/tumble/pkg/domain"
)

// Recorder is a ports.Renderer that keeps the latest snapshot so other
// goroutines (the debug server) can read it. Safe for concurrent use.
type Recorder struct {
	mu     sync.RWMutex
	last   domain.Snapshot
	frames uint64
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Render implements ports.Renderer.
func (r *Recorder) Render(s domain.Snapshot) {
	// Groups is the only reference field; copy it so readers never alias the engine.
	s.Inventory.Groups = append([]domain.DieGroup(nil), s.Inventory.Groups...)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = s
	r.frames++
}

// Last returns the latest snapshot and whether any frame was rendered.
func (r *Recorder) Last() (domain.Snapshot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.last, r.frames > 0
}

// Frames returns the number of rendered frames.
func (r *Recorder) Frames() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frames
}
