// Package graph draws the application state machine as a Mermaid flowchart.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/tumble/internal/runtime"
	"github.com/aretw0/tumble/pkg/domain"
)

const exitNode = "EXIT"

// Overlay highlights states on the chart.
type Overlay struct {
	Visited []domain.AppState
	Current *domain.AppState
}

// GenerateMermaid renders transitions as a top-down flowchart. The entry
// state is drawn as a circle, Rolling as a subroutine and the exit as a stadium.
func GenerateMermaid(transitions []runtime.Transition, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	seen := make(map[string]bool)
	node := func(id string) {
		if seen[id] {
			return
		}
		seen[id] = true

		opener, closer := "[", "]"
		switch id {
		case domain.StatePickDie.String():
			opener, closer = "((", "))"
		case domain.StateRolling.String():
			opener, closer = "[[", "]]"
		case exitNode:
			opener, closer = "([", "])"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, labelFor(id), closer))
	}

	for _, t := range transitions {
		from := t.From.String()
		to := t.To.String()
		if t.Exit {
			to = exitNode
		}
		node(from)
		node(to)

		label := t.Trigger
		if t.Guard != "" {
			label = fmt.Sprintf("%s [%s]", t.Trigger, t.Guard)
		}
		arrow := fmt.Sprintf("-- \"%s\" -->", strings.ReplaceAll(label, "\"", "'"))
		if t.Trigger == runtime.TriggerFinish {
			arrow = fmt.Sprintf("-. \"%s\" .->", label)
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", from, arrow, to))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visited := make(map[domain.AppState]bool)
		for _, s := range overlay.Visited {
			if !visited[s] {
				visited[s] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", s))
			}
		}
		if overlay.Current != nil {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", *overlay.Current))
		}
	}

	return sb.String()
}

func labelFor(id string) string {
	switch id {
	case domain.StatePickDie.String():
		return "Pick Die"
	case domain.StatePickCount.String():
		return "How Many"
	case domain.StateAddGroupPrompt.String():
		return "Add Group?"
	case domain.StateRolling.String():
		return "Rolling"
	case domain.StateResults.String():
		return "Results"
	}
	return strings.ToLower(id)
}
