// Package testutils holds shared test helpers.
package testutils

import (
	"testing"

	"github.com/aretw0/tumble/pkg/domain"
	"github.com/aretw0/tumble/pkg/notation"
	"github.com/stretchr/testify/require"
)

// Groups parses dice notation such as "2d6 d20" and fails the test on error.
func Groups(t testing.TB, dice string) []domain.DieGroup {
	t.Helper()
	groups, err := notation.Parse(dice)
	require.NoError(t, err, "Failed to parse dice %q", dice)
	return groups
}

// RequireRolled fails unless every die of every group holds a committed value
// inside the normalized range of its kind.
func RequireRolled(t testing.TB, groups []domain.DieGroup) {
	t.Helper()
	for gi, g := range groups {
		def := g.Kind.Definition()
		lo, hi := def.Normalize(1), def.Normalize(def.RollRange)
		for d := 0; d < g.Count; d++ {
			v := g.Results[d]
			require.NotEqual(t, domain.Unset, v, "group %d die %d was not rolled", gi, d)
			require.GreaterOrEqual(t, v, lo, "group %d die %d below range", gi, d)
			require.LessOrEqual(t, v, hi, "group %d die %d above range", gi, d)
		}
	}
}
