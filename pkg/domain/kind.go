package domain

import "strings"

// Kind identifies a die type. The set is closed: every valid Kind maps to
// exactly one Definition in the static table.
type Kind int

const (
	D4 Kind = iota
	D6
	D8
	D10
	D12
	D20
	D100
	Percentile

	// KindCount is the number of valid kinds.
	KindCount
)

// Definition is the static metadata attached to a die kind.
type Definition struct {
	// DisplaySides is the face count shown to the user (e.g. 100 for d100).
	DisplaySides int
	// RollRange is the upper bound of the underlying uniform draw in [1, RollRange].
	RollRange int
	// ZeroBased kinds display one less than the raw draw.
	ZeroBased bool
	// TensMode kinds multiply the (zero-based adjusted) value by 10.
	TensMode bool
	// Label is the short name, e.g. "d20".
	Label string
}

// PlaceholderLabel is returned for kinds outside the table.
const PlaceholderLabel = "d?"

var definitions = [KindCount]Definition{
	D4:         {DisplaySides: 4, RollRange: 4, Label: "d4"},
	D6:         {DisplaySides: 6, RollRange: 6, Label: "d6"},
	D8:         {DisplaySides: 8, RollRange: 8, Label: "d8"},
	D10:        {DisplaySides: 10, RollRange: 10, Label: "d10"},
	D12:        {DisplaySides: 12, RollRange: 12, Label: "d12"},
	D20:        {DisplaySides: 20, RollRange: 20, Label: "d20"},
	D100:       {DisplaySides: 100, RollRange: 10, ZeroBased: true, TensMode: true, Label: "d100"},
	Percentile: {DisplaySides: 100, RollRange: 100, ZeroBased: true, Label: "d%"},
}

// neutral is handed out for out-of-range lookups. Its range of 1 keeps any
// downstream random draw bounded.
var neutral = Definition{DisplaySides: 0, RollRange: 1, Label: PlaceholderLabel}

// Valid reports whether k is inside the static table.
func (k Kind) Valid() bool {
	return k >= 0 && k < KindCount
}

// Definition returns the static definition for k.
func (k Kind) Definition() Definition {
	return Lookup(k)
}

// String returns the kind label, or the placeholder for unknown kinds.
func (k Kind) String() string {
	return Lookup(k).Label
}

// Lookup returns the definition for kind. Out-of-range kinds return a neutral
// placeholder definition instead of failing.
func Lookup(kind Kind) Definition {
	if !kind.Valid() {
		return neutral
	}
	return definitions[kind]
}

// Kinds returns every valid kind in table order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, KindCount)
	for k := Kind(0); k < KindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind resolves a label such as "d20", "D6" or "d%" to its Kind.
func ParseKind(label string) (Kind, error) {
	label = strings.ToLower(strings.TrimSpace(label))
	for k := Kind(0); k < KindCount; k++ {
		if definitions[k].Label == label {
			return k, nil
		}
	}
	return 0, ErrInvalidKind
}

// Normalize converts a raw uniform draw into the value shown and stored for
// this kind. Preview values and committed results both go through here.
func (d Definition) Normalize(raw int) int {
	value := raw
	if d.ZeroBased {
		value--
		if value < 0 {
			value = 0
		}
	}
	if d.TensMode {
		value *= 10
	}
	return value
}

// Valid reports whether d is a real table entry rather than the placeholder.
func (d Definition) Valid() bool {
	return d.Label != PlaceholderLabel
}
