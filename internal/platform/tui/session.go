package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-memory/internal/core"
)

type screenKind int

const (
	screenMenu screenKind = iota
	screenGame
	screenScores
)

// Start selects the first screen of a session.
type Start struct {
	Skip bool      // Go straight to a game instead of the menu
	Mode GameStart // New or loaded game when Skip is set
	Rows int
	Cols int
}

// SessionModel manages the full player session flow: menu -> game -> menu.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	env        Env
	config     core.RuntimeConfig
	username   string
	screen     screenKind
	menu       MenuModel
	gameModel  *GameModel
	scoreboard ScoreboardModel
	rows, cols int
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(env Env, cfg core.RuntimeConfig, username string, start Start) SessionModel {
	rows, cols := start.Rows, start.Cols
	if rows == 0 || cols == 0 {
		rows, cols = env.Settings.Rows, env.Settings.Cols
	}

	m := SessionModel{
		env:      env,
		config:   cfg,
		username: username,
		rows:     rows,
		cols:     cols,
		menu:     NewMenuModel(env, cfg, rows, cols),
	}
	if start.Skip {
		gm := NewGameModel(env, cfg, rows, cols, start.Mode)
		m.gameModel = &gm
		m.screen = screenGame
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.screen == screenGame {
		return m.gameModel.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}
	m.rows, m.cols = m.menu.Grid()

	switch m.menu.Choice() {
	case MenuChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuChoicePlay, MenuChoiceContinue:
		mode := StartNew
		if m.menu.Choice() == MenuChoiceContinue {
			mode = StartLoad
		}
		m.env.logger().Info("starting game", "user", m.username, "rows", m.rows, "cols", m.cols, "continue", mode == StartLoad)
		gm := NewGameModel(m.env, m.config, m.rows, m.cols, mode)
		m.gameModel = &gm
		m.screen = screenGame
		return m, m.gameModel.Init()

	case MenuChoiceScoreboard:
		m.scoreboard = NewScoreboardModel(m.env.Store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.scoreboard.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.config = m.gameModel.Config()
		m.gameModel = nil
		return m.toMenu()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	// The scoreboard's own tea.Quit is dropped when going back.
	if m.scoreboard.IsGoingBack() {
		return m.toMenu()
	}

	return m, cmd
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.env, m.config, m.rows, m.cols)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.gameModel.View()
	case screenScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// Run starts a local Bubble Tea program for one player session.
func Run(env Env, cfg core.RuntimeConfig, start Start) error {
	model := NewSessionModel(env, cfg, "local", start)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
