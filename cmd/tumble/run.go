package main

import (
	"github.com/aretw0/tumble/internal/cli"
	"github.com/aretw0/tumble/pkg/domain"
	"github.com/aretw0/tumble/pkg/notation"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [dice...]",
	Short: "Start the interactive roller",
	Long: `Starts the interactive roller. Dice given as notation (e.g. "2d6 d20")
are preloaded as groups.

Keys: arrows or j/k move, Enter selects, Tab holds select (roll),
Esc goes back, PgDn or J holds down, q quits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var groups []domain.DieGroup
		if len(args) > 0 {
			parsed, err := notation.Parse(args...)
			if err != nil {
				return err
			}
			groups = parsed
		}
		if cmd.Flags().Changed("headless") {
			cfg.Headless, _ = cmd.Flags().GetBool("headless")
		}
		if cmd.Flags().Changed("debug-addr") {
			cfg.DebugAddr, _ = cmd.Flags().GetString("debug-addr")
			if err := cfg.Validate(); err != nil {
				return err
			}
		}
		quiet, _ := cmd.Flags().GetBool("quiet")

		return cli.RunSession(cmd.Context(), cli.SessionOptions{
			Config: cfg,
			Logger: logger,
			Groups: groups,
			In:     cmd.InOrStdin(),
			Out:    cmd.OutOrStdout(),
			Quiet:  quiet,
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("headless", false, "No raw mode or screen clearing; keep running after input closes")
	runCmd.Flags().String("debug-addr", "", "Serve /healthz, /snapshot, /events and /metrics on this address")
	runCmd.Flags().BoolP("quiet", "q", false, "Skip the banner and exit message")

	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
