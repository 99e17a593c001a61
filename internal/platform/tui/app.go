package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
	"github.com/vovakirdan/tui-sweeper/internal/session"
)

// sessionAttacher is implemented by games that can play inside an
// externally owned session.
type sessionAttacher interface {
	Attach(s *session.Session)
}

// loggerSetter is implemented by games that log through their own session.
type loggerSetter interface {
	SetLogger(logger *log.Logger)
}

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// AppModel manages the full flow: menu -> game -> menu.
// It is the top-level model of both the local menu and SSH sessions.
type AppModel struct {
	config    core.RuntimeConfig
	sess      *session.Session // nil for local play
	logger    *log.Logger
	menu      MenuModel
	gameModel *GameModel
	lastErr   error
	quitting  bool
}

// NewAppModel creates the top-level model. sess may be nil, in which case
// every game gets its own private session.
func NewAppModel(cfg core.RuntimeConfig, sess *session.Session, logger *log.Logger) AppModel {
	if logger == nil {
		logger = log.Default()
	}
	return AppModel{
		config: cfg,
		sess:   sess,
		logger: logger,
		menu:   NewMenuModel(cfg),
	}
}

// Init initializes the app.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the app.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	game, err := registry.Create(selected.ID)
	if err != nil {
		m.lastErr = err
		m.menu = NewMenuModel(m.config)
		return m, nil
	}
	if a, ok := game.(sessionAttacher); ok && m.sess != nil {
		a.Attach(m.sess)
	}
	if ls, ok := game.(loggerSetter); ok && m.sess == nil {
		ls.SetLogger(m.logger)
	}

	// The menu picks the board, so command line overrides do not apply.
	cfg := m.config
	cfg.Board = core.BoardSpec{}

	gameModel, err := NewGameModel(game, cfg, true)
	if err != nil {
		m.logger.Warn("could not start game", "layout", selected.ID, "error", err)
		m.lastErr = err
		m.menu = NewMenuModel(m.config)
		return m, nil
	}

	m.lastErr = nil
	m.gameModel = &gameModel
	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		m.menu = NewMenuModel(m.config)
		return m, m.menu.Init()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	if m.gameModel != nil {
		return m.gameModel.View()
	}

	view := m.menu.View()
	if m.lastErr != nil {
		view += errorStyle.Render(centerText(m.lastErr.Error(), m.config.ScreenW)) + "\n"
	}
	return view
}

// InGame returns true while a game is being played.
func (m AppModel) InGame() bool {
	return m.gameModel != nil
}

// RunMenu shows the layout picker and plays games until the user quits.
func RunMenu(cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewAppModel(cfg, nil, logger),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
