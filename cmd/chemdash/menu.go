package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chemdash/internal/platform/tui"
	"github.com/vovakirdan/chemdash/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty and play",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a difficulty, Enter to play, Tab for the
scoreboard. After a run you return to the menu.

Examples:
  chemdash menu
  chemdash menu --fps 30
  chemdash menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagName, "name", "", "Player name recorded with high scores")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closer.Close()

	difficulty, err := prepareGame(logger)
	if err != nil {
		return err
	}

	board, closeBoard := openBoard(logger)
	defer closeBoard()

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(board, cfg, difficulty)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(board, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		difficulty = menuResult.Difficulty
		game, err := registry.Create("chemdash")
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}

		// Fresh seed for each run unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, cfg, tui.RunOptions{
			Difficulty: difficulty,
			Board:      board,
			Logger:     logger,
		}); err != nil {
			logger.Error("run failed", "err", err)
		}
	}
}
