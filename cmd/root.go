/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cccg",
	Short: "A desktop prototype for a collectible card game table",
	Long: `CCCG renders a virtual card table: drag cards and a deck around an
unbounded world, pan and zoom the camera, draw cards into a hand zone and
stack overlapping cards into amarres.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
