package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/memory"
)

// gridErrorDuration is how long an invalid grid message stays on screen.
const gridErrorDuration = 1500 * time.Millisecond

// MenuChoice is what the player picked in the menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceContinue
	MenuChoiceScoreboard
	MenuChoiceQuit
)

type menuItem int

const (
	itemNewGame menuItem = iota
	itemContinue
	itemRows
	itemCols
	itemDifficulty
	itemScores
	itemQuit
)

var menuItems = []menuItem{itemNewGame, itemContinue, itemRows, itemCols, itemDifficulty, itemScores, itemQuit}

var presets = []config.DifficultyPreset{config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard}

// clearGridErrorMsg hides the grid error shown by the menu with the same id.
type clearGridErrorMsg struct {
	id int
}

// MenuModel is the Bubble Tea model for the start menu and grid size picker.
type MenuModel struct {
	cursor    int
	rows      int
	cols      int
	maxRows   int
	maxCols   int
	hasSave   bool
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	choice    MenuChoice
	gridErr   string
	gridErrID int
}

// NewMenuModel creates a new menu model with the grid preselected.
func NewMenuModel(env Env, cfg core.RuntimeConfig, rows, cols int) MenuModel {
	maxRows, maxCols := env.Settings.MaxRows, env.Settings.MaxCols
	if maxRows < memory.MinGridDim {
		maxRows = 8
	}
	if maxCols < memory.MinGridDim {
		maxCols = 8
	}

	return MenuModel{
		rows:      core.Clamp(rows, memory.MinGridDim, maxRows),
		cols:      core.Clamp(cols, memory.MinGridDim, maxCols),
		maxRows:   maxRows,
		maxCols:   maxCols,
		hasSave:   env.hasSave(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case clearGridErrorMsg:
		if msg.id == m.gridErrID {
			m.gridErr = ""
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = MenuChoiceQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.adjust(-1)

	case MenuActionRight:
		m.adjust(1)

	case MenuActionScoreboard:
		m.choice = MenuChoiceScoreboard

	case MenuActionSelect:
		return m.selectItem()
	}

	return m, nil
}

// selectItem activates the item under the cursor.
func (m MenuModel) selectItem() (tea.Model, tea.Cmd) {
	switch menuItems[m.cursor] {
	case itemNewGame:
		if err := memory.ValidateGrid(m.rows, m.cols); err != nil {
			m.gridErrID++
			m.gridErr = memory.ErrorMessage(err)
			id := m.gridErrID
			return m, tea.Tick(gridErrorDuration, func(time.Time) tea.Msg {
				return clearGridErrorMsg{id: id}
			})
		}
		m.choice = MenuChoicePlay
	case itemContinue:
		if m.hasSave {
			m.choice = MenuChoiceContinue
		}
	case itemScores:
		m.choice = MenuChoiceScoreboard
	case itemQuit:
		m.choice = MenuChoiceQuit
	case itemRows, itemCols, itemDifficulty:
		m.adjust(1)
	}
	return m, nil
}

// adjust changes the grid setting under the cursor by delta.
// Odd grids can be picked; starting one is refused.
func (m *MenuModel) adjust(delta int) {
	switch menuItems[m.cursor] {
	case itemRows:
		m.rows = core.Clamp(m.rows+delta, memory.MinGridDim, m.maxRows)
	case itemCols:
		m.cols = core.Clamp(m.cols+delta, memory.MinGridDim, m.maxCols)
	case itemDifficulty:
		i := m.presetIndex() + delta
		if i < 0 {
			i = len(presets) - 1
		}
		rows, cols, _ := config.GridForPreset(presets[i%len(presets)])
		m.rows = core.Clamp(rows, memory.MinGridDim, m.maxRows)
		m.cols = core.Clamp(cols, memory.MinGridDim, m.maxCols)
	}
}

// presetIndex returns the preset matching the current grid, or -1 for a custom grid.
func (m MenuModel) presetIndex() int {
	for i, p := range presets {
		if rows, cols, ok := config.GridForPreset(p); ok && rows == m.rows && cols == m.cols {
			return i
		}
	}
	return -1
}

func (m MenuModel) itemLabel(item menuItem) string {
	switch item {
	case itemNewGame:
		return "New Game"
	case itemContinue:
		if !m.hasSave {
			return "Continue (no save)"
		}
		return "Continue"
	case itemRows:
		return fmt.Sprintf("Rows     < %d >", m.rows)
	case itemCols:
		return fmt.Sprintf("Columns  < %d >", m.cols)
	case itemDifficulty:
		name := "custom"
		if i := m.presetIndex(); i >= 0 {
			name = string(presets[i])
		}
		return fmt.Sprintf("Preset   < %s >", name)
	case itemScores:
		return "High Scores"
	case itemQuit:
		return "Quit"
	}
	return ""
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == MenuChoiceQuit {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	errStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	b.WriteString("\n")
	b.WriteString(centerStyled(titleStyle, "  M E M O R Y  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Find every pair. Grid %dx%d (%d cards)", m.rows, m.cols, m.rows*m.cols), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = selStyle
		}
		if item == itemContinue && !m.hasSave {
			style = dimStyle
		}
		b.WriteString(centerStyled(style, cursor+m.itemLabel(item), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.gridErr != "" {
		b.WriteString(centerStyled(errStyle, m.gridErr, m.width))
	}
	b.WriteString("\n\n")

	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerStyled(dimStyle, controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the player picked, or MenuChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Grid returns the selected grid size.
func (m MenuModel) Grid() (rows, cols int) {
	return m.rows, m.cols
}

// GridError returns the grid error currently shown, if any.
func (m MenuModel) GridError() string {
	return m.gridErr
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// centerStyled centers text and then applies style to the text only.
func centerStyled(style lipgloss.Style, text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return style.Render(text)
	}
	return strings.Repeat(" ", (width-n)/2) + style.Render(text)
}
