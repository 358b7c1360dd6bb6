package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/tumble/internal/presentation/tui"
	"github.com/aretw0/tumble/pkg/domain"
	"github.com/spf13/cobra"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the supported die kinds",
	RunE: func(cmd *cobra.Command, args []string) error {
		var b strings.Builder
		b.WriteString("| Kind | Faces | Draw | Shown |\n|---|---|---|---|\n")
		for _, k := range domain.Kinds() {
			def := k.Definition()
			fmt.Fprintf(&b, "| %s | %d | 1-%d | %s-%s |\n", def.Label, def.DisplaySides, def.RollRange,
				tui.FormatSlot(k, def.Normalize(1)), tui.FormatSlot(k, def.Normalize(def.RollRange)))
		}

		plain, _ := cmd.Flags().GetBool("plain")
		out := b.String()
		if !plain {
			render, err := tui.NewRenderer()
			if err != nil {
				return err
			}
			if out, err = render(out); err != nil {
				return err
			}
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
	kindsCmd.Flags().Bool("plain", false, "Print raw markdown")
}
