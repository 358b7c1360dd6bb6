// Package tui turns engine snapshots into terminal text.
package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/tumble/pkg/domain"
	"github.com/muesli/termenv"
)

// Progress colour bands for the live rolling value.
const (
	ColorEarly  = "#ef4444"
	ColorMiddle = "#f59e0b"
	ColorLate   = "#fde68a"
	ColorDone   = "#fde68a"
)

// FormatSlot renders one die result. Unset values show "?", zero-based kinds
// are padded to two digits and non-positive values of one-based kinds show "-".
func FormatSlot(kind domain.Kind, value int) string {
	if value < 0 {
		return "?"
	}
	if kind.Definition().ZeroBased {
		return fmt.Sprintf("%02d", value)
	}
	if value <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d", value)
}

// ProgressColor picks the band colour for an animation progress in [0, 1000].
func ProgressColor(progress int) string {
	switch {
	case progress < 350:
		return ColorEarly
	case progress < 700:
		return ColorMiddle
	}
	return ColorLate
}

// GroupLabel is the header of a results group. Groups of more than three
// dice also show their high roll and total.
func GroupLabel(g domain.DieGroup) string {
	if g.Count > 3 {
		return fmt.Sprintf("%d%s | H:%d | T:%d", g.Count, g.Label(), g.High(), g.Total())
	}
	return fmt.Sprintf("%d%s", g.Count, g.Label())
}

// Summary is the one-line dice description: the pending selection when the
// inventory is empty, the configured groups otherwise.
func Summary(v domain.InventoryView) string {
	if len(v.Groups) == 0 {
		return fmt.Sprintf("Next: %d%s", v.SelectedCount, v.SelectedKind)
	}
	parts := make([]string, 0, len(v.Groups))
	for _, g := range v.Groups {
		parts = append(parts, fmt.Sprintf("%dd%d", g.Count, g.Kind.Definition().DisplaySides))
	}
	return "Dice: " + strings.Join(parts, ", ")
}

// Title is the screen heading for a snapshot.
func Title(s domain.Snapshot) string {
	switch s.State {
	case domain.StatePickDie:
		return "Pick Die"
	case domain.StatePickCount:
		return "How Many"
	case domain.StateAddGroupPrompt:
		if s.ConfirmClear {
			return "Clear dice?"
		}
		return "Add another group?"
	case domain.StateRolling:
		return "Rolling"
	case domain.StateResults:
		return "Results"
	}
	return ""
}

// Frame renders a full text frame for s. Colours follow p; termenv.Ascii
// yields plain text.
func Frame(s domain.Snapshot, p termenv.Profile) string {
	var b strings.Builder

	b.WriteString(p.String(Title(s)).Bold().String())
	b.WriteString("\n")
	b.WriteString(Summary(s.Inventory))
	b.WriteString("\n\n")

	switch s.State {
	case domain.StatePickDie:
		fmt.Fprintf(&b, "  < %s >\n", s.Inventory.SelectedKind)
	case domain.StatePickCount:
		fmt.Fprintf(&b, "  x%d\n", s.Inventory.SelectedCount)
	case domain.StateRolling, domain.StateResults:
		writeSlots(&b, s, p)
		if s.State == domain.StateRolling {
			fmt.Fprintf(&b, "\n%s %d/%d\n", progressBar(s.Progress, 20), s.Inventory.Completed, s.Inventory.Total)
		}
	}

	b.WriteString("\n")
	b.WriteString(hintLine(s.Hints))
	b.WriteString("\n")
	return b.String()
}

func writeSlots(b *strings.Builder, s domain.Snapshot, p termenv.Profile) {
	v := s.Inventory
	for gi, g := range v.Groups {
		if gi < s.Scroll {
			continue
		}
		b.WriteString(GroupLabel(g))
		b.WriteString("\n ")
		for d := 0; d < g.Count && d < domain.MaxDicePerGroup; d++ {
			text := "?"
			color := ""
			switch {
			case v.IsDone(gi, d):
				text = FormatSlot(g.Kind, g.Results[d])
				color = ColorDone
			case s.State == domain.StateRolling && v.IsCurrent(gi, d):
				text = FormatSlot(g.Kind, s.RollingValue)
				color = ProgressColor(s.Progress)
			}
			cell := p.String(fmt.Sprintf("[%3s]", text))
			if color != "" {
				cell = cell.Foreground(p.Color(color))
			}
			b.WriteString(" ")
			b.WriteString(cell.String())
		}
		b.WriteString("\n")
	}
}

func progressBar(progress, width int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1000 {
		progress = 1000
	}
	filled := progress * width / 1000
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

func hintLine(h [3]string) string {
	names := [3]string{"up", "select", "down"}
	parts := make([]string, 0, len(h))
	for i, text := range h {
		if text == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", names[i], text))
	}
	return strings.Join(parts, "  ")
}
