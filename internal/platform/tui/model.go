package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/memory"
)

// GameStart selects how a GameModel begins.
type GameStart int

const (
	StartNew  GameStart = iota // Deal a new game
	StartLoad                  // Continue the saved game
)

// GameModel is the Bubble Tea model for one game of memory.
type GameModel struct {
	game        *memory.Game
	screen      *core.Screen
	env         Env
	logger      *log.Logger
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	keyMapper   *KeyMapper
	confirmQuit bool // Save prompt is open
	quitting    bool // Ctrl+C: leave the program
	backToMenu  bool
}

// NewGameModel creates a game of rows x cols, or loads the saved game.
func NewGameModel(env Env, cfg core.RuntimeConfig, rows, cols int, start GameStart) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	settings := env.Settings
	settings.Rows, settings.Cols = rows, cols
	game := memory.NewGame(env.Catalog, settings, env.sessionOptions()...)
	logger := env.logger()

	game.Bus().Subscribe(func(e memory.Event) {
		switch e := e.(type) {
		case memory.GameInitialized:
			logger.Debug("game started", "rows", e.Rows, "cols", e.Cols, "run", game.Session().RunID())
		case memory.GameWon:
			logger.Info("game won", "score", e.Score, "turns", e.Turns, "run", game.Session().RunID())
			// A finished game cannot be continued.
			if env.Saves != nil {
				if err := env.Saves.Remove(); err != nil {
					logger.Warn("could not remove save", "error", err)
				}
			}
		case memory.ProgressLoaded:
			logger.Debug("progress loaded", "score", e.Score, "turns", e.Turns)
		case memory.LoadFailed:
			logger.Warn("could not load progress", "error", e.Err)
		case memory.RecordFailed:
			logger.Error("could not record result", "run", e.RunID, "error", e.Err)
		}
	})

	switch start {
	case StartLoad:
		//nolint:errcheck // Shown in the status line
		game.Resume(cfg)
	default:
		game.Reset(cfg)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		env:        env,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, nil
	}

	if m.confirmQuit {
		return m.handleConfirm(msg)
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		// Leaving a game in progress asks whether to keep it.
		if m.game.InProgress() && m.env.Saves != nil {
			m.confirmQuit = true
			return m, nil
		}
		m.backToMenu = true
	}

	return m, nil
}

// handleConfirm answers the save prompt: y saves and leaves, n leaves, esc stays.
func (m GameModel) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.confirmQuit = false
		if err := m.game.SaveAndQuit(); err != nil {
			m.logger.Error("could not save progress", "error", err)
			return m, nil
		}
		m.logger.Info("progress saved", "path", m.env.Saves.Path())
		m.backToMenu = true
	case "n", "N":
		m.confirmQuit = false
		m.backToMenu = true
	case "esc":
		m.confirmQuit = false
	}
	return m, nil
}

// handleResize keeps the game running; the board is scaled to the new size.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(m.config)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	// The game clock stops while the save prompt is open.
	if !m.confirmQuit {
		result := m.game.Step(m.inputFrame)
		if result.Left {
			m.logger.Info("progress saved", "path", m.env.Saves.Path())
			m.inputFrame.Clear()
			m.backToMenu = true
			return m, nil
		}
	}
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.confirmQuit {
		drawPrompt(m.screen, "Save progress before leaving?", "Y: save  N: discard  Esc: keep playing")
	}
	return RenderScreen(m.screen)
}

// drawPrompt draws a boxed two-line dialog in the middle of the screen.
func drawPrompt(s *core.Screen, title, hint string) {
	w := max(len(title), len(hint)) + 4
	h := 5
	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2
	box := core.NewRect(x, y, w, h)

	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorBrightYellow)
	s.DrawTextCentered(y+1, title, core.ColorBrightYellow)
	s.DrawTextCentered(y+3, hint, core.ColorWhite)
}

// Game returns the game being played.
func (m GameModel) Game() *memory.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Config returns the current runtime config (may have been updated by resize).
func (m GameModel) Config() core.RuntimeConfig {
	return m.config
}
