package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/clipper-arcade/internal/games/clipper"
	"github.com/vovakirdan/clipper-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game variants",
	Long:  `Shows every registered variant with its ID.`,
	Run:   runList,
}

var variantNames = map[string]string{
	clipper.IDRunner:     "runner",
	clipper.IDPlatformer: "platformer",
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-10s  %-*s  %s\n", "Variant", maxIDLen, "ID", "Title")
	fmt.Printf("  %-10s  %-*s  %s\n", "-------", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-10s  %-*s  %s\n", variantNames[g.ID], maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'clipper play <variant>' or 'clipper window <variant>' to play.")
}
