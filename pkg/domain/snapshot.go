package domain

// Hint slot indexes, top to bottom along the button column.
const (
	HintTop = iota
	HintMiddle
	HintBottom
)

// Snapshot is the renderable view of the engine, recomputed on every change.
// It is a value: sinks may keep it without aliasing engine state.
type Snapshot struct {
	State AppState `json:"state"`

	// RollingValue is the normalized live preview, or Unset.
	RollingValue int `json:"rolling_value"`

	// Progress is the animation progress in [0, 1000].
	Progress int `json:"progress"`

	ConfirmClear bool      `json:"confirm_clear"`
	Hints        [3]string `json:"hints"`

	Animating bool `json:"animating"`
	Skipping  bool `json:"skipping"`
	QuickRoll bool `json:"quick_roll"`

	// Scroll is the first visible results row.
	Scroll int `json:"scroll"`

	Inventory InventoryView `json:"inventory"`
}

// InventoryView is a copy of the inventory for rendering.
type InventoryView struct {
	Groups        []DieGroup `json:"groups"`
	SelectedKind  Kind       `json:"selected_kind"`
	SelectedCount int        `json:"selected_count"`
	CursorGroup   int        `json:"cursor_group"`
	CursorDie     int        `json:"cursor_die"`
	Completed     int        `json:"completed"`
	Total         int        `json:"total"`
}

// IsDone reports whether die d of group g has been committed in the current session.
func (v InventoryView) IsDone(g, d int) bool {
	return g < v.CursorGroup || (g == v.CursorGroup && d < v.CursorDie)
}

// IsCurrent reports whether die d of group g is the one being rolled.
func (v InventoryView) IsCurrent(g, d int) bool {
	return g == v.CursorGroup && d == v.CursorDie && g < len(v.Groups)
}
