package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/tumble/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer(opts ...glamour.TermRendererOption) (func(string) (string, error), error) {
	if len(opts) == 0 {
		opts = []glamour.TermRendererOption{glamour.WithAutoStyle()}
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}
	return r.Render, nil
}

// ResultsMarkdown formats committed groups as a markdown table with a grand
// total line.
func ResultsMarkdown(groups []domain.DieGroup) string {
	var b strings.Builder
	b.WriteString("| Dice | Results | High | Total |\n")
	b.WriteString("|---|---|---|---|\n")

	grand := 0
	for _, g := range groups {
		values := make([]string, 0, g.Count)
		for d := 0; d < g.Count && d < domain.MaxDicePerGroup; d++ {
			values = append(values, FormatSlot(g.Kind, g.Results[d]))
		}
		fmt.Fprintf(&b, "| %d%s | %s | %d | %d |\n", g.Count, g.Label(), strings.Join(values, " "), g.High(), g.Total())
		grand += g.Total()
	}
	fmt.Fprintf(&b, "\n**Total: %d**\n", grand)
	return b.String()
}
