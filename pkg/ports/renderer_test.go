package ports_test

import (
	"testing"

	"github.com/aretw0/tumble/pkg/domain"
	"github.com/aretw0/tumble/pkg/ports"
	"github.com/stretchr/testify/assert"
)

func TestMultiRenderer_FansOutInOrder(t *testing.T) {
	var got []string
	a := ports.RenderFunc(func(s domain.Snapshot) { got = append(got, "a:"+s.State.String()) })
	b := ports.RenderFunc(func(s domain.Snapshot) { got = append(got, "b:"+s.State.String()) })

	r := ports.MultiRenderer(a, nil, b)
	r.Render(domain.Snapshot{State: domain.StateRolling})

	assert.Equal(t, []string{"a:ROLLING", "b:ROLLING"}, got)
}

func TestRandomFunc(t *testing.T) {
	r := ports.RandomFunc(func(n int) int { return n })
	assert.Equal(t, 6, r.Roll(6))
}
