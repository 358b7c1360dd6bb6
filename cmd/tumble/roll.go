package main

import (
	"github.com/aretw0/tumble/internal/cli"
	"github.com/aretw0/tumble/internal/presentation/tui"
	"github.com/aretw0/tumble/pkg/notation"
	"github.com/aretw0/tumble/pkg/ports"
	"github.com/aretw0/tumble/pkg/runner"
	"github.com/spf13/cobra"
)

var rollCmd = &cobra.Command{
	Use:   "roll <dice...>",
	Short: "Roll dice once and print the results",
	Example: `  tumble roll 2d6 d20
  tumble roll 4d% --instant --seed 42`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		groups, err := notation.Parse(args...)
		if err != nil {
			return err
		}
		instant, _ := cmd.Flags().GetBool("instant")
		plain, _ := cmd.Flags().GetBool("plain")

		out := cmd.OutOrStdout()
		var frames ports.Renderer
		if !instant {
			frames = runner.NewFrameRenderer(out, runner.WithProfile(cli.ColorProfile(out, cfg.Color)))
		}

		results, err := cli.Roll(cmd.Context(), cli.RollOptions{
			Groups:    groups,
			Seed:      cfg.Seed,
			HoldDelay: cfg.HoldDelay,
			Instant:   instant,
			Renderer:  frames,
			Logger:    logger,
		})
		if err != nil {
			return err
		}

		var render func(string) (string, error)
		if !plain {
			if render, err = tui.NewRenderer(); err != nil {
				return err
			}
		}
		return cli.WriteResults(out, results, render)
	},
}

func init() {
	rootCmd.AddCommand(rollCmd)

	rollCmd.Flags().Bool("instant", false, "Run the animation on a virtual clock and print only the results")
	rollCmd.Flags().Bool("plain", false, "Print raw markdown instead of styled output")
}
