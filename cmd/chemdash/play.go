package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chemdash/internal/platform/tui"
	"github.com/vovakirdan/chemdash/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a Chemistry Dash run.

Controls:
  Space/W/Up - Jump (press again in the air to double jump)
  P/Esc      - Pause
  R          - Restart (after game over)
  B/Esc      - Leave (when paused or after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Examples:
  chemdash play
  chemdash play --difficulty easy
  chemdash play --config ./my-chemdash.yaml --name ada`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name recorded with high scores")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closer.Close()

	d, err := prepareGame(logger)
	if err != nil {
		return err
	}

	game, err := registry.Create("chemdash")
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	board, closeBoard := openBoard(logger)
	defer closeBoard()

	logger.Info("starting run", "difficulty", d)
	return tui.Run(game, runtimeConfig(), tui.RunOptions{
		Difficulty: d,
		Board:      board,
		Logger:     logger,
	})
}
