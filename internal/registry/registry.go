// Package registry provides a global registry of playable board layouts.
// Layouts register themselves in init() functions, and config-defined
// layouts are added at startup, so the platform can list and instantiate
// games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// Game is the interface the platform drives.
// Games contain pure logic with no Bubble Tea dependency.
// The platform handles input mapping and rendering.
type Game interface {
	// ID returns the layout identifier (e.g., "classic", "large").
	// Used for CLI commands and the menu.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Layout returns the board dimensions and mine count of this game.
	Layout() core.BoardSpec

	// Reset starts a new game. Called once at start and again on restart.
	// A non-zero cfg.Board overrides the layout's own board.
	Reset(cfg core.RuntimeConfig) error

	// Step applies one input frame and returns the resulting state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo contains metadata about a registered layout.
type GameInfo struct {
	ID    string
	Title string
	Board core.BoardSpec
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	store(id, f)
}

// Replace adds or overwrites a game factory. Config-defined layouts use it
// so they can redefine the built-in ones.
func Replace(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	store(id, f)
}

func store(id string, f Factory) {
	factories[id] = f

	// Metadata comes from a temporary instance.
	g := f()
	infos[id] = GameInfo{
		ID:    id,
		Title: g.Title(),
		Board: g.Layout(),
	}
}

// List returns information about all registered games, sorted by board
// area and then by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		ai, aj := result[i].Board.Area(), result[j].Board.Area()
		if ai != aj {
			return ai < aj
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
