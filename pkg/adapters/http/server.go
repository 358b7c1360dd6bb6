// Package http exposes a read-only debug surface for a running engine:
// health, the latest snapshot, recent sessions, a snapshot event stream and
// Prometheus metrics.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/tumble/pkg/domain"
	"github.com/aretw0/tumble/pkg/observability"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SnapshotSource returns the most recent snapshot, if any frame was rendered.
type SnapshotSource interface {
	Last() (domain.Snapshot, bool)
}

// HistorySource lists finished roll sessions, newest first.
type HistorySource interface {
	Sessions() []observability.Session
}

// Info is served from GET /info.
type Info struct {
	App       string `json:"app"`
	Version   string `json:"version"`
	SessionID string `json:"session_id,omitempty"`
	Seed      int64  `json:"seed"`
	// Stashed lists the parked inventories, e.g. "quick-roll" during a quick roll.
	Stashed []string `json:"stashed,omitempty"`
}

// Server holds the dependencies of the debug routes.
type Server struct {
	Source  SnapshotSource
	History HistorySource
	Streams *StreamManager
	Metrics http.Handler
	Info    func() Info
	Logger  *slog.Logger
}

// NewHandler builds the chi router for s. Nil fields disable their routes.
func NewHandler(s *Server) http.Handler {
	if s.Logger == nil {
		s.Logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/snapshot", s.GetSnapshot)
	if s.History != nil {
		r.Get("/history", s.GetHistory)
	}
	if s.Streams != nil {
		r.Get("/events", s.SubscribeEvents)
	}
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}
	return r
}

// GetHealth handles GET /healthz.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	info := Info{App: "tumble"}
	if s.Info != nil {
		info = s.Info()
	}
	s.writeJSON(w, http.StatusOK, info)
}

// GetSnapshot handles GET /snapshot. It answers 503 until the engine has
// rendered its first frame.
func (s *Server) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	if s.Source == nil {
		http.Error(w, "no snapshot source", http.StatusServiceUnavailable)
		return
	}
	snap, ok := s.Source.Last()
	if !ok {
		http.Error(w, "no frame rendered yet", http.StatusServiceUnavailable)
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

// GetHistory handles GET /history.
func (s *Server) GetHistory(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.History.Sessions())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("debug response encode failed", "err", err)
	}
}

// Serve runs handler on addr until ctx is cancelled, then shuts down with a
// short grace period.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("debug server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		logger.Debug("debug server shutting down", "addr", addr)
		return srv.Shutdown(shutdownCtx)
	}
}
