// sweeper is a terminal Minesweeper that can also be served over SSH.
//
// Usage:
//
//	sweeper list              - List available board layouts
//	sweeper play [layout]     - Play a board
//	sweeper menu              - Pick boards interactively
//	sweeper serve             - Start SSH server for remote play
//	sweeper config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Config file (default search: ~/.sweeper/config.yaml, ./configs/sweeper.yaml)
//	--seed <value>       - Set RNG seed for reproducible boards
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/games/sweeper"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string

	// Set up by loadConfig before any subcommand runs.
	appConfig config.SweeperConfig
	logFile   *os.File
)

func main() {
	defer closeLogFile()

	if err := rootCmd.Execute(); err != nil {
		fail("%v", err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sweeper",
	Short: "Minesweeper in your terminal",
	Long: `sweeper is a terminal Minesweeper. Uncover every safe cell without
touching a mine; numbers tell how many mines touch a cell.

Available commands:
  list     - Show all board layouts
  play     - Play a layout directly
  menu     - Interactive layout picker
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  sweeper list
  sweeper play
  sweeper play large
  sweeper play --width 30 --height 16 --mines 99
  sweeper menu
  sweeper serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = use config, then time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the configuration and registers its layouts.
func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}

	for _, l := range cfg.Layouts {
		layout := sweeper.Layout{
			ID:    l.ID,
			Title: l.Title,
			Board: boardSpec(l.Width, l.Height, l.Mines),
		}
		if err := sweeper.RegisterLayout(layout); err != nil {
			return fmt.Errorf("config %s: %w", cfg.Source, err)
		}
	}

	appConfig = cfg
	return nil
}

// newLogger builds the application logger. Logs go to --log-file when
// given and to fallback otherwise.
func newLogger(fallback io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "sweeper",
	})
	log.SetDefault(logger)
	return logger, nil
}

func closeLogFile() {
	if logFile != nil {
		logFile.Close()
	}
}

// fail prints an error and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	closeLogFile()
	os.Exit(1)
}
