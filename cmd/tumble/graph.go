package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/tumble/internal/presentation/graph"
	"github.com/aretw0/tumble/internal/runtime"
	"github.com/aretw0/tumble/pkg/domain"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Print the screen flow as a Mermaid diagram",
	RunE: func(cmd *cobra.Command, args []string) error {
		var overlay *graph.Overlay
		if name, _ := cmd.Flags().GetString("current"); name != "" {
			state, err := parseState(name)
			if err != nil {
				return err
			}
			overlay = &graph.Overlay{Current: &state}
		}
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(runtime.Transitions(), overlay))
		return nil
	},
}

func parseState(name string) (domain.AppState, error) {
	name = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	for s := domain.StatePickDie; s <= domain.StateResults; s++ {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown state %q", name)
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("current", "", "Highlight a state, e.g. rolling")
}
