package metrics

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aretw0/tumble/pkg/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Hooks(t *testing.T) {
	c := New()
	hooks := c.Hooks()
	ctx := context.Background()
	start := time.Now()

	hooks.OnStateEnter(ctx, &domain.StateEvent{State: domain.StateRolling})
	hooks.OnSessionStart(ctx, &domain.SessionEvent{EventBase: domain.EventBase{SessionID: "s1", Timestamp: start}})
	hooks.OnRollCommit(ctx, &domain.RollEvent{Kind: domain.D20, Value: 17, Animated: true})
	hooks.OnRollCommit(ctx, &domain.RollEvent{Kind: domain.D20, Value: 3})
	hooks.OnSessionFinish(ctx, &domain.SessionEvent{
		EventBase: domain.EventBase{SessionID: "s1", Timestamp: start.Add(2 * time.Second)},
		Skipped:   true,
	})
	hooks.OnQuickRollRestore(ctx, &domain.EventBase{})

	assert.Equal(t, 1.0, testutil.ToFloat64(c.stateEnters.WithLabelValues("ROLLING")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.commits.WithLabelValues("d20", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.commits.WithLabelValues("d20", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.sessions.WithLabelValues("false", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.restores))
	assert.Equal(t, 1, testutil.CollectAndCount(c.sessionDuration))
	assert.Empty(t, c.started)
}

func TestCollector_Handler(t *testing.T) {
	c := New()
	c.Hooks().OnStateEnter(context.Background(), &domain.StateEvent{State: domain.StatePickDie})

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `tumble_state_enters_total{state="PICK_DIE"} 1`)
}
