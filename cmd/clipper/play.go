package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/clipper-arcade/internal/platform/tui"
	"github.com/vovakirdan/clipper-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant in the terminal",
	Long: `Start playing the given variant in the terminal.

Controls:
  Left/Right, A/D      - Move
  Shift+Arrow, X       - Run
  Space/Up/W           - Jump (again in the air to double jump)
  P                    - Pause
  R                    - Restart (after game over)
  Ctrl+S               - Save a screenshot
  Q/Ctrl+C             - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  clipper play runner
  clipper play platformer --difficulty easy
  clipper play runner --config ./my-runner.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID, variant, err := resolveGame(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'clipper list' to see available variants.")
		os.Exit(1)
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	configureGames(openBest(logger))
	loadTextSprites(cmd.Context(), variant, logger)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// The game still works without history
	store := openHistory(logger)

	_, runErr := tui.Run(game, recorderOf(store), logger, terminalConfig())
	closeHistory(store, logger)

	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
