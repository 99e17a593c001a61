package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

// Menu layout constants
const (
	menuChrome    = 8 // title, subtitle, help and margins
	menuMinRows   = 3
	menuMaxRows   = 12
	columnLayout  = 16
	columnSize    = 9
	columnMines   = 7
	columnDensity = 9
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuTableStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// MenuModel is the Bubble Tea model for the layout picker.
type MenuModel struct {
	items     []registry.GameInfo
	table     table.Model
	help      help.Model
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *registry.GameInfo // Set when user selects a layout
}

// NewMenuModel creates a new menu model listing every registered layout.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		items:     registry.List(),
		help:      help.New(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	m.table = m.createTable()
	return m
}

// createTable creates the layout table sized to the screen.
func (m *MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Layout", Width: columnLayout},
		{Title: "Size", Width: columnSize},
		{Title: "Mines", Width: columnMines},
		{Title: "Density", Width: columnDensity},
	}

	rows := make([]table.Row, len(m.items))
	for i, g := range m.items {
		rows[i] = table.Row{
			g.Title,
			fmt.Sprintf("%dx%d", g.Board.Width, g.Board.Height),
			fmt.Sprintf("%d", g.Board.Mines),
			fmt.Sprintf("%.0f%%", density(g.Board)),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(core.Clamp(m.height-menuChrome, menuMinRows, menuMaxRows)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// density returns the share of mined cells in percent.
func density(b core.BoardSpec) float64 {
	if b.Area() == 0 {
		return 0
	}
	return float64(b.Mines) * 100 / float64(b.Area())
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit

		case MenuActionSelect:
			if len(m.items) > 0 {
				selected := m.items[m.table.Cursor()]
				m.selected = &selected
			}
			return m, nil

		case MenuActionUp:
			m.table.MoveUp(1)
			return m, nil

		case MenuActionDown:
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		cursor := m.table.Cursor()
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("M I N E S W E E P E R", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a board", m.width))
	b.WriteString("\n\n")

	tbl := menuTableStyle.Render(m.table.View())
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tbl))
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render(centerText(m.help.View(m.keyMapper.Menu), m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected layout, or nil if none selected.
func (m MenuModel) Selected() *registry.GameInfo {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
