package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a layout.
Press Esc or B during a game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select layout
  Q/Esc        - Quit

Examples:
  sweeper menu
  sweeper menu --seed 42`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, err := newLogger(io.Discard)
	if err != nil {
		fail("%v", err)
	}

	if err := tui.RunMenu(runtimeConfig(), logger); err != nil {
		fail("running menu: %v", err)
	}
}
