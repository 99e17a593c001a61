package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-sweeper/internal/minesweeper"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML(), SourceEmbedded)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	def := DefaultSweeperConfig()
	if cfg.Board != def.Board {
		t.Errorf("Board = %+v, expected %+v", cfg.Board, def.Board)
	}
	if cfg.Server != def.Server {
		t.Errorf("Server = %+v, expected %+v", cfg.Server, def.Server)
	}
	if cfg.Seed != def.Seed || len(cfg.Layouts) != 0 {
		t.Errorf("Seed = %d, Layouts = %v", cfg.Seed, cfg.Layouts)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, `
board:
  width: 8
  height: 8
  mines: 10
seed: 99
layouts:
  - id: expert
    title: Expert
    width: 30
    height: 16
    mines: 99
server:
  idle_timeout: 5m
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Board != (BoardConfig{Width: 8, Height: 8, Mines: 10}) {
		t.Errorf("Board = %+v", cfg.Board)
	}
	if cfg.Seed != 99 {
		t.Errorf("Seed = %d, expected 99", cfg.Seed)
	}
	if len(cfg.Layouts) != 1 || cfg.Layouts[0].ID != "expert" || cfg.Layouts[0].Mines != 99 {
		t.Errorf("Layouts = %+v", cfg.Layouts)
	}
	if cfg.Server.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %s, expected 5m", cfg.Server.IdleTimeout)
	}
	// Unset fields keep their defaults.
	if cfg.Server.Address != ":23234" || cfg.Server.MaxSessions != 64 {
		t.Errorf("Server defaults lost: %+v", cfg.Server)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, expected %q", cfg.Source, path)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"bad yaml", "board: [", false},
		{"no safe cell", "board: {width: 2, height: 2, mines: 4}", true},
		{"zero width", "board: {width: 0, height: 5, mines: 1}", true},
		{"bad layout", "layouts: [{id: x, width: 3, height: 3, mines: 9}]", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			writeFile(t, path, tc.content)

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if got := errors.Is(err, minesweeper.ErrInvalidConfiguration); got != tc.invalid {
				t.Errorf("errors.Is(ErrInvalidConfiguration) = %v, expected %v (err = %v)", got, tc.invalid, err)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Source != SourceEmbedded {
		t.Errorf("Source = %q, expected embedded default", cfg.Source)
	}

	local := filepath.Join(work, localConfigPath)
	writeFile(t, local, "board: {width: 6, height: 6, mines: 5}")
	cfg, _ = Load("")
	if cfg.Source != localConfigPath || cfg.Board.Width != 6 {
		t.Errorf("local config not used: source %q, board %+v", cfg.Source, cfg.Board)
	}

	user := filepath.Join(home, ".sweeper", "config.yaml")
	writeFile(t, user, "board: {width: 7, height: 7, mines: 5}")
	cfg, _ = Load("")
	if cfg.Source != user || cfg.Board.Width != 7 {
		t.Errorf("user config not preferred: source %q, board %+v", cfg.Source, cfg.Board)
	}

	// An invalid user file is skipped.
	writeFile(t, user, "board: {width: 1, height: 1, mines: 1}")
	cfg, _ = Load("")
	if cfg.Source != localConfigPath {
		t.Errorf("invalid user config should be skipped, source %q", cfg.Source)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*SweeperConfig)
		wantErr bool
	}{
		{"defaults", func(*SweeperConfig) {}, false},
		{"one cell no mines", func(c *SweeperConfig) { c.Board = BoardConfig{Width: 1, Height: 1} }, false},
		{"negative mines", func(c *SweeperConfig) { c.Board.Mines = -1 }, true},
		{"missing layout id", func(c *SweeperConfig) {
			c.Layouts = []LayoutConfig{{Width: 5, Height: 5, Mines: 1}}
		}, true},
		{"duplicate layout id", func(c *SweeperConfig) {
			l := LayoutConfig{ID: "a", Width: 5, Height: 5, Mines: 1}
			c.Layouts = []LayoutConfig{l, l}
		}, true},
		{"negative idle timeout", func(c *SweeperConfig) { c.Server.IdleTimeout = -time.Second }, true},
		{"negative max sessions", func(c *SweeperConfig) { c.Server.MaxSessions = -1 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSweeperConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(DefaultSweeperConfig())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	text := string(data)
	for _, want := range []string{"width: 10", "mines: 15", "idle_timeout: 30m0s", "max_sessions: 64"} {
		if !strings.Contains(text, want) {
			t.Errorf("Marshal() output missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "source") {
		t.Error("Source should not be serialized")
	}
}

func TestHostKeyPath(t *testing.T) {
	home, _ := isolate(t)

	cfg := DefaultSweeperConfig()
	path, err := cfg.HostKeyPath()
	if err != nil {
		t.Fatalf("HostKeyPath() error = %v", err)
	}
	if path != filepath.Join(home, ".sweeper", "host_key") {
		t.Errorf("HostKeyPath() = %q", path)
	}

	cfg.Server.HostKey = "/tmp/key"
	if path, _ := cfg.HostKeyPath(); path != "/tmp/key" {
		t.Errorf("HostKeyPath() = %q, expected configured path", path)
	}
}
