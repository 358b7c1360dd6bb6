// Package metrics exposes engine activity as Prometheus collectors. The
// collectors are fed from lifecycle hooks and live on a private registry.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/aretw0/tumble/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tumble"

// Collector records state changes, roll sessions and committed dice.
type Collector struct {
	registry *prometheus.Registry

	stateEnters     *prometheus.CounterVec
	sessions        *prometheus.CounterVec
	commits         *prometheus.CounterVec
	values          *prometheus.HistogramVec
	sessionDuration prometheus.Histogram
	restores        prometheus.Counter

	mu      sync.Mutex
	started map[string]time.Time
}

// New creates a collector with its own registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		stateEnters: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "state_enters_total",
			Help:      "Number of times each application state was entered.",
		}, []string{"state"}),
		sessions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "roll_sessions_total",
			Help:      "Finished roll sessions.",
		}, []string{"quick", "skipped"}),
		commits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dice_committed_total",
			Help:      "Committed die results by kind.",
		}, []string{"kind", "animated"}),
		values: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "die_value",
			Help:      "Distribution of committed die values.",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		}, []string{"kind"}),
		sessionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "roll_session_seconds",
			Help:      "Wall time from roll start to results.",
			Buckets:   prometheus.ExponentialBuckets(0.25, 2, 8),
		}),
		restores: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quick_roll_restores_total",
			Help:      "Inventories restored after a quick roll.",
		}),
		started: make(map[string]time.Time),
	}
	c.registry.MustRegister(
		c.stateEnters, c.sessions, c.commits, c.values, c.sessionDuration, c.restores,
		collectors.NewGoCollector(),
	)
	return c
}

// Registry returns the private registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Hooks returns lifecycle hooks that feed the collectors.
func (c *Collector) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStateEnter: func(_ context.Context, e *domain.StateEvent) {
			c.stateEnters.WithLabelValues(e.State.String()).Inc()
		},
		OnSessionStart: func(_ context.Context, e *domain.SessionEvent) {
			c.mu.Lock()
			c.started[e.SessionID] = e.Timestamp
			c.mu.Unlock()
		},
		OnSessionFinish: func(_ context.Context, e *domain.SessionEvent) {
			c.sessions.WithLabelValues(strconv.FormatBool(e.Quick), strconv.FormatBool(e.Skipped)).Inc()
			c.mu.Lock()
			start, ok := c.started[e.SessionID]
			delete(c.started, e.SessionID)
			c.mu.Unlock()
			if ok {
				c.sessionDuration.Observe(e.Timestamp.Sub(start).Seconds())
			}
		},
		OnRollCommit: func(_ context.Context, e *domain.RollEvent) {
			kind := e.Kind.String()
			c.commits.WithLabelValues(kind, strconv.FormatBool(e.Animated)).Inc()
			c.values.WithLabelValues(kind).Observe(float64(e.Value))
		},
		OnQuickRollRestore: func(context.Context, *domain.EventBase) {
			c.restores.Inc()
		},
	}
}
