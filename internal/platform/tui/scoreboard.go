package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-memory/internal/storage"
)

const maxScores = 100

// allGrids is the tab that lists games of every grid size.
const allGrids = ""

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Recent key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Recent, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Next, k.Prev}, {k.Recent, k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll")),
		Next:   key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("tab", "next grid")),
		Prev:   key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("S-tab", "prev grid")),
		Recent: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "best/recent")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists won games per grid size, or the most recent games.
type ScoreboardModel struct {
	store      *storage.Store
	grids      []string // allGrids first, then played grids smallest first
	gridCursor int
	recent     bool // Recent games instead of the best ones
	scores     []storage.GameRecord
	stats      *storage.GridStats
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		grids:  playedGrids(store),
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.load()
	return m
}

// playedGrids lists every grid size with recorded games, smallest first.
func playedGrids(store *storage.Store) []string {
	grids := []string{allGrids}
	if store == nil {
		return grids
	}
	stats, err := store.GetAllGridStats()
	if err != nil {
		return grids
	}

	type sized struct {
		label string
		cells int
	}
	played := make([]sized, 0, len(stats))
	for label := range stats {
		var rows, cols int
		fmt.Sscanf(label, "%dx%d", &rows, &cols)
		played = append(played, sized{label, rows * cols})
	}
	sort.Slice(played, func(i, j int) bool {
		if played[i].cells != played[j].cells {
			return played[i].cells < played[j].cells
		}
		return played[i].label < played[j].label
	})
	for _, p := range played {
		grids = append(grids, p.label)
	}
	return grids
}

func gridTitle(grid string) string {
	if grid == allGrids {
		return "All grids"
	}
	return grid
}

func (m ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Turns", Width: 6},
		{Title: "Grid", Width: 6},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
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

// load fills the table for the current tab and mode.
func (m *ScoreboardModel) load() {
	m.scores = nil
	m.stats = nil
	grid := m.Grid()

	if m.store != nil {
		var scores []storage.GameRecord
		var err error
		if m.recent {
			scores, err = m.store.RecentGames(maxScores)
			if err == nil && grid != allGrids {
				scores = filterGrid(scores, grid)
			}
		} else {
			scores, err = m.store.TopScores(grid, maxScores)
		}
		if err == nil {
			m.scores = scores
		}
		if grid != allGrids {
			if stats, err := m.store.GetGridStats(grid); err == nil {
				m.stats = stats
			}
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Turns),
			s.Grid(),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func filterGrid(games []storage.GameRecord, grid string) []storage.GameRecord {
	out := games[:0]
	for _, g := range games {
		if g.Grid() == grid {
			out = append(out, g)
		}
	}
	return out
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			// tea.Quit ends a standalone scoreboard; the session drops it.
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.gridCursor = (m.gridCursor + 1) % len(m.grids)
			m.load()
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.gridCursor = (m.gridCursor + len(m.grids) - 1) % len(m.grids)
			m.load()
			return m, nil
		case key.Matches(msg, m.keys.Recent):
			m.recent = !m.recent
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	boxStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)

	mode := "BEST GAMES"
	if m.recent {
		mode = "RECENT GAMES"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(titleStyle, mode+" - "+gridTitle(m.Grid()), m.width))
	b.WriteString("\n")

	if m.stats != nil && m.stats.GamesCount > 0 {
		line := fmt.Sprintf("Played %d  Won %d  Best %d  Avg %.0f  Fewest turns %d",
			m.stats.GamesCount, m.stats.WonCount, m.stats.HighScore, m.stats.AvgScore, m.stats.BestTurns)
		b.WriteString(centerStyled(dimStyle, line, m.width))
	}
	b.WriteString("\n\n")

	tabs := make([]string, len(m.grids))
	for i, g := range m.grids {
		if i == m.gridCursor {
			tabs[i] = activeStyle.Render(" " + gridTitle(g) + " ")
		} else {
			tabs[i] = dimStyle.Render(" " + gridTitle(g) + " ")
		}
	}
	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 {
		tabLine = fmt.Sprintf("< %s >", gridTitle(m.Grid()))
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	content := m.table.View()
	if len(m.scores) == 0 {
		content = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 4).
			Render("No games here yet.\nClear a board to set a high score!")
	}
	b.WriteString(centerText(boxStyle.Render(content), m.width))
	b.WriteString("\n")
	b.WriteString(centerStyled(dimStyle, m.help.View(m.keys), m.width))

	return b.String()
}

// Grid returns the grid tab being shown; empty means every grid.
func (m ScoreboardModel) Grid() string {
	return m.grids[m.gridCursor]
}

// Scores returns the records listed in the table.
func (m ScoreboardModel) Scores() []storage.GameRecord {
	return m.scores
}

// Recent reports whether recent games are listed instead of the best ones.
func (m ScoreboardModel) Recent() bool {
	return m.recent
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program.
// Returns true if user wants to go back, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
