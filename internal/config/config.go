// Package config provides YAML-based configuration loading for the
// sweeper: the default board, extra layouts and SSH server settings.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-sweeper/internal/minesweeper"
)

// SweeperConfig contains all configuration for the game and server.
type SweeperConfig struct {
	Board   BoardConfig    `yaml:"board"`
	Seed    int64          `yaml:"seed"` // 0 means time-seeded
	Layouts []LayoutConfig `yaml:"layouts"`
	Server  ServerConfig   `yaml:"server"`

	// Source records where the configuration was read from.
	Source string `yaml:"-"`
}

// BoardConfig is the board used when no layout is named.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Mines  int `yaml:"mines"`
}

// LayoutConfig defines an extra named board. A layout with the ID of a
// built-in one replaces it.
type LayoutConfig struct {
	ID     string `yaml:"id"`
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Mines  int    `yaml:"mines"`
}

// ServerConfig defines SSH server parameters.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"` // empty means ~/.sweeper/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
	MaxSessions int           `yaml:"max_sessions"` // 0 means unlimited
}

// Validate checks every board against the engine rules and the server
// settings for obviously wrong values.
func (c SweeperConfig) Validate() error {
	var errs []error

	if err := minesweeper.ValidateConfig(c.Board.Width, c.Board.Height, c.Board.Mines); err != nil {
		errs = append(errs, fmt.Errorf("board: %w", err))
	}

	seen := make(map[string]bool, len(c.Layouts))
	for i, l := range c.Layouts {
		if l.ID == "" {
			errs = append(errs, fmt.Errorf("layouts[%d]: missing id", i))
			continue
		}
		if seen[l.ID] {
			errs = append(errs, fmt.Errorf("layouts[%d]: duplicate id %q", i, l.ID))
		}
		seen[l.ID] = true
		if err := minesweeper.ValidateConfig(l.Width, l.Height, l.Mines); err != nil {
			errs = append(errs, fmt.Errorf("layouts[%d] %q: %w", i, l.ID, err))
		}
	}

	if c.Server.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("server: negative idle_timeout %s", c.Server.IdleTimeout))
	}
	if c.Server.MaxSessions < 0 {
		errs = append(errs, fmt.Errorf("server: negative max_sessions %d", c.Server.MaxSessions))
	}

	return errors.Join(errs...)
}
