package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkotenko/starcatch/internal/config"
	"github.com/dkotenko/starcatch/internal/core"
	"github.com/dkotenko/starcatch/internal/game"
	"github.com/dkotenko/starcatch/internal/platform/audio"
	"github.com/dkotenko/starcatch/internal/platform/tui"
	"github.com/dkotenko/starcatch/internal/storage"
)

var (
	flagConfig string
	flagPlayer string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a session in the current terminal.

Controls:
  Left/Right, A/D  - Move the paddle
  Mouse            - Steer the paddle toward the pointer
  Enter/Space      - Start from the menu
  P/Esc            - Pause and resume
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Examples:
  starcatch play
  starcatch play --seed 42
  starcatch play --mute
  starcatch play --config ./my-starcatch.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name recorded with scores")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the initial playfield
	rt := core.DefaultRuntimeConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.Cols = w
		rt.Rows = h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var notifier game.Notifier
	if !flagMute {
		notifier = audio.New()
	}

	player := flagPlayer
	if player == "" {
		player = os.Getenv("USER")
	}

	runErr := tui.Run(cfg, rt, store, notifier, player)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
