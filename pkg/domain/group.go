package domain

// Capacity limits of the inventory.
const (
	MaxGroups       = 8
	MaxDicePerGroup = 10
)

// Unset marks a result slot that has not been rolled in the current session.
const Unset = -1

// DieGroup is a configured group of dice of the same kind.
type DieGroup struct {
	Kind    Kind
	Count   int
	Results [MaxDicePerGroup]int
}

// NewDieGroup creates a group with every result slot unset.
// Count is clamped to [1, MaxDicePerGroup].
func NewDieGroup(kind Kind, count int) DieGroup {
	g := DieGroup{Kind: kind, Count: ClampCount(count)}
	g.ResetResults()
	return g
}

// ResetResults marks every slot as unrolled.
func (g *DieGroup) ResetResults() {
	for i := range g.Results {
		g.Results[i] = Unset
	}
}

// Label returns the kind label of the group.
func (g DieGroup) Label() string {
	return g.Kind.String()
}

// Rolled returns the committed results for the dice of this group,
// skipping slots that are still unset.
func (g DieGroup) Rolled() []int {
	out := make([]int, 0, g.Count)
	for i := 0; i < g.Count && i < MaxDicePerGroup; i++ {
		if g.Results[i] != Unset {
			out = append(out, g.Results[i])
		}
	}
	return out
}

// High returns the highest committed result, or 0 when nothing is rolled.
func (g DieGroup) High() int {
	high := 0
	for _, v := range g.Rolled() {
		if v > high {
			high = v
		}
	}
	return high
}

// Total returns the sum of committed results.
func (g DieGroup) Total() int {
	total := 0
	for _, v := range g.Rolled() {
		total += v
	}
	return total
}

// ClampCount bounds a dice count to [1, MaxDicePerGroup].
func ClampCount(count int) int {
	if count < 1 {
		return 1
	}
	if count > MaxDicePerGroup {
		return MaxDicePerGroup
	}
	return count
}
