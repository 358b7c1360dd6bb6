// Package inventory holds the configured dice groups, the group currently
// being configured, and the roll cursor used while a roll session walks the
// groups. It has no timing logic.
package inventory

import (
	"github.com/aretw0/tumble/pkg/domain"
)

// Inventory is the dice model. The zero value is not ready; use New.
type Inventory struct {
	groups []domain.DieGroup

	selectedKind  domain.Kind
	selectedCount int

	rollGroup int
	rollDie   int
}

// New returns an empty inventory with a 1d6 selection.
func New() *Inventory {
	return &Inventory{
		groups:        make([]domain.DieGroup, 0, domain.MaxGroups),
		selectedKind:  domain.D6,
		selectedCount: 1,
	}
}

// Clone returns a deep copy.
func (inv *Inventory) Clone() *Inventory {
	c := *inv
	c.groups = make([]domain.DieGroup, len(inv.groups), domain.MaxGroups)
	copy(c.groups, inv.groups)
	return &c
}

// Equal reports whether two inventories hold the same groups, selection and cursor.
func (inv *Inventory) Equal(other *Inventory) bool {
	if other == nil || len(inv.groups) != len(other.groups) {
		return false
	}
	for i := range inv.groups {
		if inv.groups[i] != other.groups[i] {
			return false
		}
	}
	return inv.selectedKind == other.selectedKind &&
		inv.selectedCount == other.selectedCount &&
		inv.rollGroup == other.rollGroup &&
		inv.rollDie == other.rollDie
}

// ----- Selection -----

// StepKind moves the selected kind by delta, wrapping around the table.
func (inv *Inventory) StepKind(delta int) domain.Kind {
	n := int(domain.KindCount)
	idx := ((int(inv.selectedKind)+delta)%n + n) % n
	inv.selectedKind = domain.Kind(idx)
	return inv.selectedKind
}

// StepCount moves the selected count by delta, clamped to [1, MaxDicePerGroup].
func (inv *Inventory) StepCount(delta int) int {
	inv.selectedCount = domain.ClampCount(inv.selectedCount + delta)
	return inv.selectedCount
}

// Select sets kind and count directly. Invalid kinds are rejected.
func (inv *Inventory) Select(kind domain.Kind, count int) error {
	if !kind.Valid() {
		return domain.ErrInvalidKind
	}
	if count < 1 || count > domain.MaxDicePerGroup {
		return domain.ErrInvalidCount
	}
	inv.selectedKind = kind
	inv.selectedCount = count
	return nil
}

// ResetCount sets the selected count back to 1.
func (inv *Inventory) ResetCount() {
	inv.selectedCount = 1
}

// SelectedKind returns the kind being configured.
func (inv *Inventory) SelectedKind() domain.Kind { return inv.selectedKind }

// SelectedCount returns the count being configured.
func (inv *Inventory) SelectedCount() int { return inv.selectedCount }

// ----- Configuration -----

// CommitGroup appends the current selection as a new group.
func (inv *Inventory) CommitGroup() error {
	if len(inv.groups) >= domain.MaxGroups {
		return domain.ErrInventoryFull
	}
	inv.groups = append(inv.groups, domain.NewDieGroup(inv.selectedKind, inv.selectedCount))
	return nil
}

// RewindLastGroup removes the last group and loads its kind and count back
// into the selection. It returns false when there is nothing to rewind.
func (inv *Inventory) RewindLastGroup() bool {
	if len(inv.groups) == 0 {
		return false
	}
	last := inv.groups[len(inv.groups)-1]
	inv.groups = inv.groups[:len(inv.groups)-1]
	inv.selectedKind = last.Kind
	inv.selectedCount = last.Count
	inv.clampCursor()
	return true
}

// Clear drops every group and resets the cursor.
func (inv *Inventory) Clear() {
	inv.groups = inv.groups[:0]
	inv.rollGroup = 0
	inv.rollDie = 0
}

// HasGroups reports whether any group is configured.
func (inv *Inventory) HasGroups() bool {
	return len(inv.groups) > 0
}

// GroupCount returns the number of configured groups.
func (inv *Inventory) GroupCount() int {
	return len(inv.groups)
}

// Group returns group i and whether it exists.
func (inv *Inventory) Group(i int) (domain.DieGroup, bool) {
	if i < 0 || i >= len(inv.groups) {
		return domain.DieGroup{}, false
	}
	return inv.groups[i], true
}

// Groups returns a copy of the configured groups.
func (inv *Inventory) Groups() []domain.DieGroup {
	out := make([]domain.DieGroup, len(inv.groups))
	copy(out, inv.groups)
	return out
}

// ----- Rolling -----

// BeginRoll unsets every result slot and resets the cursor to (0,0).
func (inv *Inventory) BeginRoll() {
	for i := range inv.groups {
		inv.groups[i].ResetResults()
	}
	inv.rollGroup = 0
	inv.rollDie = 0
}

// HasRollRemaining reports whether the cursor still points at an unrolled die.
func (inv *Inventory) HasRollRemaining() bool {
	return inv.rollGroup < len(inv.groups)
}

// CurrentKind returns the kind of the die under the cursor.
// It returns false once the cursor is past the last die.
func (inv *Inventory) CurrentKind() (domain.Kind, bool) {
	if !inv.HasRollRemaining() {
		return 0, false
	}
	return inv.groups[inv.rollGroup].Kind, true
}

// CommitResult writes value into the slot under the cursor and advances the
// cursor by exactly one die. It is a no-op once the cursor is past the end.
func (inv *Inventory) CommitResult(value int) bool {
	if !inv.HasRollRemaining() {
		return false
	}
	g := &inv.groups[inv.rollGroup]
	if inv.rollDie < g.Count {
		g.Results[inv.rollDie] = value
	}
	inv.rollDie++
	if inv.rollDie >= g.Count {
		inv.rollGroup++
		inv.rollDie = 0
	}
	return true
}

// Cursor returns the (group, die) roll cursor.
func (inv *Inventory) Cursor() (group, die int) {
	return inv.rollGroup, inv.rollDie
}

// Completed returns the number of dice committed in the current session.
func (inv *Inventory) Completed() int {
	completed := 0
	for g := 0; g < inv.rollGroup && g < len(inv.groups); g++ {
		completed += inv.groups[g].Count
	}
	return completed + inv.rollDie
}

// TotalDice returns the number of dice across every group.
func (inv *Inventory) TotalDice() int {
	total := 0
	for _, g := range inv.groups {
		total += g.Count
	}
	return total
}

// View returns a render copy of the inventory.
func (inv *Inventory) View() domain.InventoryView {
	return domain.InventoryView{
		Groups:        inv.Groups(),
		SelectedKind:  inv.selectedKind,
		SelectedCount: inv.selectedCount,
		CursorGroup:   inv.rollGroup,
		CursorDie:     inv.rollDie,
		Completed:     inv.Completed(),
		Total:         inv.TotalDice(),
	}
}

func (inv *Inventory) clampCursor() {
	if inv.rollGroup > len(inv.groups) {
		inv.rollGroup = len(inv.groups)
		inv.rollDie = 0
	}
}
