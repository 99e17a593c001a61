package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/sweeper.yaml
var defaultSweeperYAML []byte

// DefaultSweeperConfig returns the hardcoded default configuration.
// It matches defaults/sweeper.yaml.
func DefaultSweeperConfig() SweeperConfig {
	return SweeperConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 13,
			Mines:  15,
		},
		Seed: 0,
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
			MaxSessions: 64,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSweeperYAML
}
