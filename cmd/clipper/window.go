package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/clipper-arcade/internal/games/clipper"
	"github.com/vovakirdan/clipper-arcade/internal/platform/window"
	"github.com/vovakirdan/clipper-arcade/internal/sprite"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window <variant>",
	Short: "Play a variant in a desktop window",
	Long: `Open a desktop window and play the given variant at its native canvas size.

Sprites are read from <dir>/<name>.png as set in the game config; a drawn
fallback is used until they load, or if they never do.

Controls:
  Left/Right, A/D      - Move
  Shift, X             - Run while held
  Space/Up/W           - Jump (again in the air to double jump)
  P                    - Pause
  R                    - Restart (after game over)
  Esc/Q                - Quit

Examples:
  clipper window runner
  clipper window platformer --scale 0.75`,
	Args: cobra.ExactArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the game canvas")
}

func runWindow(cmd *cobra.Command, args []string) {
	gameID, variant, err := resolveGame(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'clipper list' to see available variants.")
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, appName)
	configureGames(openBest(logger))

	sc := spriteConfig(variant, logger)
	sprites := sprite.Load(cmd.Context(), window.PNGLoaders(sc.Dir, sc.Player, sc.Enemy), loadTimeout(sc), logger)

	game := clipper.NewRunner()
	if gameID == clipper.IDPlatformer {
		game = clipper.NewPlatformer()
	}

	store := openHistory(logger)
	runErr := window.Run(game, window.Options{
		Scale:    flagScale,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Recorder: recorderOf(store),
		Sprites:  sprites,
		Logger:   logger,
	})
	closeHistory(store, logger)

	if runErr != nil {
		logger.Error("window failed", "error", runErr)
		os.Exit(1)
	}
}
