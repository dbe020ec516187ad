/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/ccgkit/go-card-table/cardart"
	"github.com/ccgkit/go-card-table/config"
	"github.com/ccgkit/go-card-table/table"
)

var (
	playConfigFile string
	playWidth      int
	playHeight     int
	playFPS        int
	playFullscreen bool
	playWindowed   bool
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the card table window",
	Long: `Open the interactive table. Drag cards with the left button, drag the
empty table to pan, scroll to zoom at the cursor. Ctrl+click pulls a single
card out of a stack, a repeated Ctrl+click on the deck draws a card, and
dropping a card near the bottom edge docks it in the hand. Press Escape twice
to recenter on the deck.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(playConfigFile)
		if err != nil {
			log.Fatal(err)
		}
		if playWidth > 0 {
			cfg.Display.Width = playWidth
		}
		if playHeight > 0 {
			cfg.Display.Height = playHeight
		}
		if playFPS > 0 {
			cfg.Display.FrameRate = playFPS
		}
		if cmd.Flags().Changed("fullscreen") {
			cfg.Display.Fullscreen = playFullscreen
		}
		if playWindowed {
			cfg.Display.Fullscreen = false
		}
		if err := cfg.Assets.EnsureDirectories(); err != nil {
			log.Fatal(err)
		}

		art, err := cardart.NewRenderer()
		if err != nil {
			log.Fatal(err)
		}

		ebiten.SetWindowSize(cfg.Display.Width, cfg.Display.Height)
		ebiten.SetWindowTitle(cfg.Display.Caption)
		ebiten.SetTPS(cfg.Display.FrameRate)
		ebiten.SetFullscreen(cfg.Display.Fullscreen)

		if err := ebiten.RunGame(table.NewGame(cfg, art)); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringVar(&playConfigFile, "config", "cccg.toml", "Path to the TOML config file")
	playCmd.Flags().IntVar(&playWidth, "width", 0, "Override the display width")
	playCmd.Flags().IntVar(&playHeight, "height", 0, "Override the display height")
	playCmd.Flags().IntVar(&playFPS, "fps", 0, "Override the target frame rate")
	playCmd.Flags().BoolVar(&playFullscreen, "fullscreen", false, "Start in full-screen mode")
	playCmd.Flags().BoolVar(&playWindowed, "windowed", false, "Force windowed mode")
}
