package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/games/sweeper"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all board layouts",
	Long:  `Shows the built-in layouts and any defined in the config file.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No layouts available.")
		return
	}

	fmt.Println("Available layouts:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-9s  %5s  %-8s  %s\n", maxIDLen, "ID", "Size", "Mines", "Source", "Title")
	fmt.Printf("  %-*s  %-9s  %5s  %-8s  %s\n", maxIDLen, "--", "----", "-----", "------", "-----")

	for _, g := range games {
		size := fmt.Sprintf("%dx%d", g.Board.Width, g.Board.Height)
		fmt.Printf("  %-*s  %-9s  %5d  %-8s  %s\n", maxIDLen, g.ID, size, g.Board.Mines, layoutSource(g), g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'sweeper play <id>' to play a layout.")
}

// layoutSource tells whether a registered layout is built in or comes from
// the config file, including config entries that redefine a built-in ID.
func layoutSource(g registry.GameInfo) string {
	l, ok := sweeper.FindLayout(g.ID)
	if ok && l.Board == g.Board && l.Title == g.Title {
		return "built-in"
	}
	return "config"
}
