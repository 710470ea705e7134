package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ormakov/roidfield/internal/core"
	"github.com/ormakov/roidfield/internal/game"
	"github.com/ormakov/roidfield/internal/platform/tui"
	"github.com/ormakov/roidfield/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly",
	Long: `Start a run.

Controls:
  W/Up       - Thrust
  A/Left     - Turn left
  D/Right    - Turn right
  Space      - Fire
  P/Esc      - Pause
  Tab        - Run history
  R          - Restart
  Q/Ctrl+C   - Quit (saves the run)

Difficulty options:
  easy   - Start at lowest spawn pressure, progresses up
  normal - Start at moderate spawn pressure, progresses up
  hard   - Start at high spawn pressure, progresses up
  fixed  - No progression, stays at the config's level

Examples:
  roidfield play
  roidfield play --difficulty hard
  roidfield play --config ./my-tuning.yaml
  roidfield play --seed 42 --fps 30`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game.New(), store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
