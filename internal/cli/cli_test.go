package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/tumble"
	"github.com/aretw0/tumble/internal/config"
	"github.com/aretw0/tumble/internal/testutils"
	"github.com/aretw0/tumble/pkg/adapters/memory"
	"github.com/aretw0/tumble/pkg/domain"
	"github.com/aretw0/tumble/pkg/observability"
	"github.com/aretw0/tumble/pkg/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoll_Instant(t *testing.T) {
	groups := testutils.Groups(t, "3d6 d%")

	got, err := Roll(context.Background(), RollOptions{Groups: groups, Seed: 7, Instant: true})
	require.NoError(t, err)
	require.Len(t, got, 2)
	testutils.RequireRolled(t, got)
}

func TestRoll_InstantIsSeeded(t *testing.T) {
	groups := []domain.DieGroup{domain.NewDieGroup(domain.D20, 5)}

	a, err := Roll(context.Background(), RollOptions{Groups: groups, Seed: 99, Instant: true})
	require.NoError(t, err)
	b, err := Roll(context.Background(), RollOptions{Groups: groups, Seed: 99, Instant: true})
	require.NoError(t, err)

	assert.Equal(t, a[0].Results, b[0].Results)
}

func TestRoll_NoGroups(t *testing.T) {
	_, err := Roll(context.Background(), RollOptions{Instant: true})
	assert.ErrorIs(t, err, domain.ErrNoGroups)
}

func TestRoll_Animated(t *testing.T) {
	if testing.Short() {
		t.Skip("real-time animation")
	}
	groups := testutils.Groups(t, "d4")

	got, err := Roll(context.Background(), RollOptions{Groups: groups, Seed: 3, HoldDelay: 10 * time.Millisecond})
	require.NoError(t, err)
	testutils.RequireRolled(t, got)
}

func TestRoll_AnimatedCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := Roll(ctx, RollOptions{Groups: []domain.DieGroup{domain.NewDieGroup(domain.D6, 2)}})
	require.ErrorIs(t, err, ErrRollIncomplete)
	assert.Contains(t, err.Error(), context.DeadlineExceeded.Error())
}

func TestRoll_AnimatedInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(30*time.Millisecond, cancel)

	_, err := Roll(ctx, RollOptions{Groups: []domain.DieGroup{domain.NewDieGroup(domain.D20, 1)}})
	require.ErrorIs(t, err, ErrRollIncomplete)
	assert.Contains(t, err.Error(), context.Canceled.Error())
}

func TestWriteResults(t *testing.T) {
	g := domain.NewDieGroup(domain.D6, 2)
	g.Results[0], g.Results[1] = 4, 5

	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, []domain.DieGroup{g}, nil))
	assert.Contains(t, buf.String(), "| 2d6 | 4 5 | 5 | 9 |")
	assert.Contains(t, buf.String(), "**Total: 9**")

	failing := func(string) (string, error) { return "", errors.New("nope") }
	assert.Error(t, WriteResults(&buf, []domain.DieGroup{g}, failing))
}

func TestRunSession_HeadlessExit(t *testing.T) {
	cfg := config.Default()
	cfg.Headless = true
	cfg.Color = false

	var out bytes.Buffer
	err := RunSession(context.Background(), SessionOptions{
		Config: &cfg,
		In:     strings.NewReader("b"),
		Out:    &out,
	})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Pick Die")
	assert.Contains(t, out.String(), ">>> Bye.")
}

func TestHandleExecutionError(t *testing.T) {
	assert.NoError(t, handleExecutionError(nil))
	assert.NoError(t, handleExecutionError(context.Canceled))
	assert.NoError(t, handleExecutionError(io.EOF))

	boom := errors.New("boom")
	assert.Equal(t, boom, handleExecutionError(boom))
}

func TestSignalContext_Cancel(t *testing.T) {
	sc := NewSignalContext(context.Background())
	sc.Cancel()

	select {
	case <-sc.Done():
	case <-time.After(time.Second):
		t.Fatal("context not cancelled")
	}
	assert.Nil(t, sc.Signal())
}

func TestSessionInfo_ReportsQuickRollStash(t *testing.T) {
	ctx := context.Background()
	clock := timer.NewManual()
	stash := memory.NewStash()
	history := observability.NewHistory(4)
	engine, err := tumble.New(
		tumble.WithTimer(clock),
		tumble.WithSeed(11),
		tumble.WithStash(stash),
		tumble.WithLifecycleHooks(history.Hooks()),
	)
	require.NoError(t, err)
	engine.Start(ctx)

	idle := sessionInfo(ctx, engine, history, stash, NewLogger(false, 0))
	assert.Equal(t, int64(11), idle.Seed)
	assert.Empty(t, idle.SessionID)
	assert.Empty(t, idle.Stashed)

	engine.Dispatch(domain.InputSelectHeld)
	rolling := sessionInfo(ctx, engine, history, stash, NewLogger(false, 0))
	assert.Equal(t, []string{"quick-roll"}, rolling.Stashed)
	assert.NotEmpty(t, rolling.SessionID)

	clock.RunUntilIdle(10000)
	engine.Dispatch(domain.InputSelect)
	assert.Empty(t, sessionInfo(ctx, engine, history, stash, NewLogger(false, 0)).Stashed)
}
