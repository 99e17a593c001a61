package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/sweeper"
	"github.com/vovakirdan/tui-sweeper/internal/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

var (
	flagWidth  int
	flagHeight int
	flagMines  int
)

var playCmd = &cobra.Command{
	Use:   "play [layout]",
	Short: "Play a board",
	Long: `Start playing a board layout. Without a layout, the board from the
config file is used (10x13 with 15 mines by default).

The first cell you reveal is never a mine, nor are its neighbors when the
board has room for that.

Controls:
  Arrows/HJKL/WASD  - Move the cursor
  Space/Enter       - Reveal the cell
  P                 - Peek at the whole board (toggle)
  R                 - New game
  ?                 - More help
  Q/Ctrl+C          - Quit

Examples:
  sweeper play
  sweeper play large
  sweeper play --width 30 --height 16 --mines 99
  sweeper play tiny --mines 12 --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width (overrides layout)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height (overrides layout)")
	playCmd.Flags().IntVar(&flagMines, "mines", 0, "Mine count (overrides layout)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := sweeper.DefaultLayoutID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown layout %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'sweeper list' to see available layouts.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	// Without a layout argument the configured board applies.
	base := game.Layout()
	if len(args) == 0 {
		base = boardSpec(appConfig.Board.Width, appConfig.Board.Height, appConfig.Board.Mines)
	}
	board := overrideBoard(base, boardOverrides{
		width:  flagOverride(cmd, "width", flagWidth),
		height: flagOverride(cmd, "height", flagHeight),
		mines:  flagOverride(cmd, "mines", flagMines),
	})
	if err := minesweeper.ValidateConfig(board.Width, board.Height, board.Mines); err != nil {
		fail("%v", err)
	}

	// The TUI owns the terminal, so logs only go to --log-file.
	logger, err := newLogger(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	if g, ok := game.(*sweeper.Game); ok {
		g.SetLogger(logger)
	}

	cfg := runtimeConfig()
	cfg.Board = board

	if err := tui.Run(game, cfg); err != nil {
		fail("running game: %v", err)
	}
}

// boardOverrides holds flag values; nil means not set.
type boardOverrides struct {
	width, height, mines *int
}

func flagOverride(cmd *cobra.Command, name string, value int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

// overrideBoard applies the set overrides to base.
func overrideBoard(base core.BoardSpec, o boardOverrides) core.BoardSpec {
	if o.width != nil {
		base.Width = *o.width
	}
	if o.height != nil {
		base.Height = *o.height
	}
	if o.mines != nil {
		base.Mines = *o.mines
	}
	return base
}

func boardSpec(width, height, mines int) core.BoardSpec {
	return core.BoardSpec{Width: width, Height: height, Mines: mines}
}

// runtimeConfig returns the runtime config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = appConfig.Seed
	cfg.Board = core.BoardSpec{}
	return cfg
}
