// clipper is a side-scrolling platformer: a nail clipper against a crowd of
// walking lighters. It plays in the terminal, in a desktop window, or over SSH.
//
// Usage:
//
//	clipper list                 - List game variants
//	clipper play <variant>       - Play a variant in the terminal
//	clipper window <variant>     - Play a variant in a desktop window
//	clipper menu                 - Pick variants interactively
//	clipper serve                - Start SSH server for remote play
//	clipper scores [variant]     - Show recorded runs
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set run history path (default: ~/.clipper/scores.db)
//	--config <path>        - Custom game config YAML
//	--difficulty <preset>  - easy, normal, hard, fixed
//	--log-level <level>    - debug, info, warn, error
//	--log-file <path>      - Log destination for terminal modes
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appName = "clipper"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clipper",
	Short: "Clipper vs Lighter - a side-scrolling platformer",
	Long: `Clipper vs Lighter is a small platformer. You are a nail clipper;
lighters walk at you. Stomp them, jump over them, collect coins.

Available commands:
  list     - Show game variants
  play     - Play in the terminal
  window   - Play in a desktop window
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View recorded runs

Examples:
  clipper list
  clipper play runner
  clipper window platformer --scale 0.75
  clipper menu --difficulty hard
  clipper serve --ssh :2222
  clipper scores runner`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.clipper/scores.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.clipper/clipper.log", "Log file for terminal modes (empty = discard)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
