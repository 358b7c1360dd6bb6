package random_test

import (
	"testing"

	"github.com/aretw0/tumble/pkg/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_Bounds(t *testing.T) {
	src := random.New(42)
	for _, n := range []int{1, 4, 6, 10, 20, 100} {
		for i := 0; i < 500; i++ {
			v := src.Roll(n)
			require.GreaterOrEqual(t, v, 1)
			require.LessOrEqual(t, v, n)
		}
	}
}

func TestSource_NonPositiveRange(t *testing.T) {
	src := random.New(1)
	assert.Equal(t, 0, src.Roll(0))
	assert.Equal(t, 0, src.Roll(-5))
}

func TestSource_Deterministic(t *testing.T) {
	a := random.New(7)
	b := random.New(7)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Roll(20), b.Roll(20))
	}
	assert.Equal(t, int64(7), a.Seed())
}

func TestSource_ZeroSeedIsReplaced(t *testing.T) {
	assert.NotZero(t, random.New(0).Seed())
}

func TestNewSeed(t *testing.T) {
	_, err := random.NewSeed()
	assert.NoError(t, err)
}

func TestScripted(t *testing.T) {
	s := random.NewScripted(3, 50, 0)
	assert.Equal(t, 3, s.Roll(6))
	assert.Equal(t, 6, s.Roll(6), "clamped to n")
	assert.Equal(t, 1, s.Roll(6), "clamped to 1")
	assert.Equal(t, 3, s.Roll(6), "cycles")
	assert.Equal(t, 0, s.Roll(0))
	assert.Equal(t, 5, s.Calls())
}
