package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/clipper-arcade/internal/platform/tui"
	"github.com/vovakirdan/clipper-arcade/internal/registry"
	"github.com/vovakirdan/clipper-arcade/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show recorded runs",
	Long: `Without arguments, open the interactive scoreboard.
With a variant, print its best runs and lifetime totals.

Examples:
  clipper scores
  clipper scores runner
  clipper scores platformer --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to print")
}

func runScores(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		runScoreboard()
		return
	}

	gameID, _, err := resolveGame(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'clipper list' to see available variants.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("Best runs - %s\n", registry.Title(gameID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'clipper play %s' to set the first score!\n", args[0])
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-5s  %-6s  %s\n", "Rank", "Score", "Stomps", "Coins", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-5s  %-6s  %s\n", "----", "-----", "------", "-----", "----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-8d  %-6d  %-5d  %-6s  %s\n",
			i+1, e.Score, e.Stomps, e.Coins, tui.FormatTicks(e.Ticks, flagFPS), e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Average: %.0f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	fmt.Printf("Lighters stomped: %d  Coins: %d  Time played: %s\n",
		stats.TotalStomps, stats.TotalCoins, tui.FormatTicks(int(stats.TotalTicks), flagFPS))
}

func runScoreboard() {
	logger, closeLog := fileLogger()
	defer closeLog()

	store := openHistory(logger)
	defer closeHistory(store, logger)

	cfg := terminalConfig()
	if _, err := tui.RunScoreboard(scoreSourceOf(store), cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
