package main

import (
	"bytes"
	"testing"

	"github.com/aretw0/tumble/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRollCommand_InstantPlain(t *testing.T) {
	out, err := execute(t, "roll", "2d6", "d20", "--instant", "--plain", "--seed", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "| Dice | Results | High | Total |")
	assert.Contains(t, out, "| 2d6 |")
	assert.Contains(t, out, "| 1d20 |")
	assert.Contains(t, out, "**Total:")
}

func TestRollCommand_BadNotation(t *testing.T) {
	_, err := execute(t, "roll", "2x6", "--instant")
	assert.Error(t, err)
}

func TestKindsCommand(t *testing.T) {
	out, err := execute(t, "kinds", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "| d100 | 100 | 1-10 | 00-90 |")
	assert.Contains(t, out, "| d% | 100 | 1-100 | 00-99 |")
}

func TestGraphCommand(t *testing.T) {
	out, err := execute(t, "graph", "--current", "results")
	require.NoError(t, err)
	assert.Contains(t, out, "graph TD")
	assert.Contains(t, out, "class RESULTS current;")
}

func TestParseState(t *testing.T) {
	s, err := parseState("add-group-prompt")
	require.NoError(t, err)
	assert.Equal(t, domain.StateAddGroupPrompt, s)

	_, err = parseState("nowhere")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tumble version")
}
