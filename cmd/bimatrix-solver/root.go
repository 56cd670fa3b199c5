package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bimatrix-solver",
	Short: "Find Nash equilibria of 2x2 bimatrix games",
	Long: `bimatrix-solver reports every pure-strategy Nash equilibrium of a 2x2
bimatrix game and, when one exists in [0, 1], its mixed-strategy equilibrium.
Games are read from a YAML file (solve) or submitted through a web form (serve).`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")
}
