package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/clipper-arcade/internal/config"
	"github.com/vovakirdan/clipper-arcade/internal/platform/tui"
	"github.com/vovakirdan/clipper-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Esc during a pause or after game over returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Scoreboard
  Q            - Quit

Examples:
  clipper menu
  clipper menu --fps 30
  clipper menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) {
	logger, closeLog := fileLogger()
	defer closeLog()

	best := openBest(logger)
	configureGames(best)
	loadTextSprites(cmd.Context(), config.VariantRunner, logger)

	store := openHistory(logger)
	defer closeHistory(store, logger)

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(best, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		cfg = menuResult.Config
		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(scoreSourceOf(store), cfg)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "error", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		logger.Info("game started", "game", menuResult.GameID)
		backToMenu, err := tui.Run(game, recorderOf(store), logger, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !backToMenu {
			break
		}
	}
}
