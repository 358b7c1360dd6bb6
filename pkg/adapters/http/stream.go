package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/aretw0/tumble/pkg/domain"
)

// StreamManager fans rendered snapshots out to SSE subscribers. It is a
// ports.Renderer; Render never blocks and drops frames for slow clients.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[chan string]struct{}
	logger      *slog.Logger
}

// NewStreamManager creates an empty manager.
func NewStreamManager(logger *slog.Logger) *StreamManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &StreamManager{
		subscribers: make(map[chan string]struct{}),
		logger:      logger,
	}
}

// Subscribe registers a buffered channel and returns it with its release func.
func (sm *StreamManager) Subscribe() (<-chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 16)
	sm.subscribers[ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if _, ok := sm.subscribers[ch]; ok {
			delete(sm.subscribers, ch)
			close(ch)
		}
	}
}

// Subscribers returns the number of connected clients.
func (sm *StreamManager) Subscribers() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.subscribers)
}

// Broadcast sends msg to every subscriber without waiting.
func (sm *StreamManager) Broadcast(msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for ch := range sm.subscribers {
		select {
		case ch <- msg:
		default:
			sm.logger.Warn("sse client buffer full, dropping frame")
		}
	}
}

// Render implements ports.Renderer.
func (sm *StreamManager) Render(s domain.Snapshot) {
	if sm.Subscribers() == 0 {
		return
	}
	data, err := json.Marshal(s)
	if err != nil {
		sm.logger.Error("snapshot encode failed", "err", err)
		return
	}
	sm.Broadcast(string(data))
}

// SubscribeEvents handles GET /events. The optional "states" query parameter
// is a comma separated list of state names; other frames are filtered out.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	filter := parseStates(r.URL.Query().Get("states"))

	ch, release := s.Streams.Subscribe()
	defer release()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.Logger.Debug("sse client disconnected")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if len(filter) > 0 && !filter[frameState(msg)] {
				continue
			}
			fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

func parseStates(raw string) map[string]bool {
	if raw == "" {
		return nil
	}
	out := make(map[string]bool)
	for _, name := range strings.Split(raw, ",") {
		name = strings.ToUpper(strings.TrimSpace(name))
		if name != "" {
			out[name] = true
		}
	}
	return out
}

func frameState(msg string) string {
	var head struct {
		State string `json:"state"`
	}
	if err := json.Unmarshal([]byte(msg), &head); err != nil {
		return ""
	}
	return head.State
}
