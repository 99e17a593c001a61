package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Sources reported in SweeperConfig.Source when no file was read.
const (
	SourceEmbedded  = "embedded"
	SourceHardcoded = "hardcoded"
)

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/sweeper.yaml"

// Load loads the sweeper configuration.
// Search order: customPath -> ~/.sweeper/config.yaml -> ./configs/sweeper.yaml -> embedded default.
// Fields missing from a file keep their default values. A customPath that
// cannot be read, parsed or validated is an error; the other locations are
// skipped when unusable.
func Load(customPath string) (SweeperConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SweeperConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data, customPath)
		if err != nil {
			return SweeperConfig{}, err
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("config.yaml"), localConfigPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data, path); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := parse(defaultSweeperYAML, SourceEmbedded); err == nil {
		return cfg, nil
	}
	cfg := DefaultSweeperConfig()
	cfg.Source = SourceHardcoded
	return cfg, nil
}

// parse decodes data over the defaults and validates the result.
func parse(data []byte, source string) (SweeperConfig, error) {
	cfg := DefaultSweeperConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SweeperConfig{}, fmt.Errorf("failed to parse config %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return SweeperConfig{}, fmt.Errorf("invalid config %s: %w", source, err)
	}
	cfg.Source = source
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg SweeperConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sweeper", filename)
}

// HostKeyPath returns the configured host key path, defaulting to
// ~/.sweeper/host_key.
func (c SweeperConfig) HostKeyPath() (string, error) {
	if c.Server.HostKey != "" {
		return c.Server.HostKey, nil
	}
	path := userConfigPath("host_key")
	if path == "" {
		return "", fmt.Errorf("cannot resolve home directory for host key")
	}
	return path, nil
}
