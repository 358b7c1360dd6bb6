package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/tumble/internal/cli"
	"github.com/aretw0/tumble/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tumble",
	Short: "Tumble is an animated dice roller for the terminal",
	Long: `Tumble builds a set of dice groups and rolls them one die at a time,
with a slowing tumble animation for every die. Hold select to skip.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		envFile, _ := cmd.Flags().GetString("env-file")

		loaded, err := config.Load(config.Options{Path: path, EnvFile: envFile})
		if err != nil {
			return err
		}
		if err := applyFlags(cmd, loaded); err != nil {
			return err
		}
		cfg = loaded

		debug, _ := cmd.Flags().GetBool("debug")
		level := cfg.Level()
		if debug {
			level = slog.LevelDebug
		}
		logger = cli.NewLogger(debug || cmd.Flags().Changed("log-level"), level)
		return nil
	},
}

// applyFlags lets explicit flags win over file and environment values.
func applyFlags(cmd *cobra.Command, c *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		c.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("hold") {
		c.HoldDelay, _ = flags.GetDuration("hold")
	}
	if flags.Changed("seed") {
		c.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("kind") {
		c.DefaultKind, _ = flags.GetString("kind")
	}
	if flags.Changed("no-color") {
		noColor, _ := flags.GetBool("no-color")
		c.Color = !noColor
	}
	return c.Validate()
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a YAML config file")
	pf.String("env-file", "", "Path to a dotenv file (default ./.env when present)")
	pf.String("log-level", "info", "Log level written to stderr (debug, info, warn, error)")
	pf.Bool("debug", false, "Write debug logs to stderr")
	pf.Duration("hold", 0, "Pause between dice (default 1s)")
	pf.Int64("seed", 0, "Random seed (0 picks one)")
	pf.String("kind", "", "Initially selected die kind, e.g. d20")
	pf.Bool("no-color", false, "Disable colours")
}
