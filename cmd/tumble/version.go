package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/tumble"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tumble",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tumble version %s\n", strings.TrimSpace(tumble.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
