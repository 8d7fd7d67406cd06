package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-memory/internal/storage"
)

func windowSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}

func pressSession(t *testing.T, m SessionModel, keys ...string) (SessionModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(SessionModel)
	}
	return m, cmd
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(testEnv(t, false), testConfig(), "tester", Start{Rows: 2, Cols: 2})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu", m.screen)
	}

	m, cmd := pressSession(t, m, "enter")
	if m.screen != screenGame || m.gameModel == nil {
		t.Fatalf("screen = %v, want game", m.screen)
	}
	if cmd == nil {
		t.Error("starting a game should start the tick loop")
	}
	if rows, cols := m.gameModel.Game().Session().Rows(), m.gameModel.Game().Session().Cols(); rows != 2 || cols != 2 {
		t.Errorf("grid = %dx%d, want 2x2", rows, cols)
	}

	m, _ = pressSession(t, m, "q")
	if m.screen != screenMenu {
		t.Errorf("screen = %v, want menu after leaving", m.screen)
	}
	if m.gameModel != nil {
		t.Error("game should be dropped after leaving")
	}
	if rows, cols := m.menu.Grid(); rows != 2 || cols != 2 {
		t.Errorf("menu grid = %dx%d, want 2x2", rows, cols)
	}
}

func TestSessionSkipMenu(t *testing.T) {
	m := NewSessionModel(testEnv(t, false), testConfig(), "tester", Start{Skip: true, Mode: StartNew, Rows: 2, Cols: 4})
	if m.screen != screenGame {
		t.Fatalf("screen = %v, want game", m.screen)
	}
	if m.Init() == nil {
		t.Error("Init should start the tick loop")
	}
}

func TestSessionDefaultsGridFromSettings(t *testing.T) {
	env := testEnv(t, false)
	m := NewSessionModel(env, testConfig(), "tester", Start{})
	if m.rows != env.Settings.Rows || m.cols != env.Settings.Cols {
		t.Errorf("grid = %dx%d, want %dx%d", m.rows, m.cols, env.Settings.Rows, env.Settings.Cols)
	}
}

func TestSessionScoreboard(t *testing.T) {
	env := testEnv(t, false)
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()
	env.Store = store

	if _, err := store.SaveGame(storage.GameRecord{RunID: "a", Score: 40, Turns: 4, Matches: 4, Rows: 2, Cols: 4, Won: true}); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}

	m := NewSessionModel(env, testConfig(), "tester", Start{})
	m, _ = pressSession(t, m, "tab")
	if m.screen != screenScores {
		t.Fatalf("screen = %v, want scores", m.screen)
	}
	if got := len(m.scoreboard.Scores()); got != 1 {
		t.Errorf("scores = %d, want 1", got)
	}

	m, cmd := pressSession(t, m, "esc")
	if m.screen != screenMenu {
		t.Errorf("screen = %v, want menu", m.screen)
	}
	if m.quitting {
		t.Error("going back must not quit the session")
	}
	if cmd != nil {
		t.Error("going back must not forward the scoreboard's quit")
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(testEnv(t, false), testConfig(), "tester", Start{})
	m, cmd := pressSession(t, m, "q")

	if !m.quitting {
		t.Error("q in the menu should quit")
	}
	if cmd == nil {
		t.Error("expected tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestSafeName(t *testing.T) {
	tests := []struct {
		user string
		want string
	}{
		{"alice", "alice"},
		{"bob-2_x", "bob-2_x"},
		{"../etc", "___etc"},
		{"", "anonymous"},
		{"..", "anonymous"},
	}
	for _, tt := range tests {
		if got := safeName(tt.user); got != tt.want {
			t.Errorf("safeName(%q) = %q, want %q", tt.user, got, tt.want)
		}
	}
}
