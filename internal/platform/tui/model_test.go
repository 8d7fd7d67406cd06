package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-memory/internal/memory"
)

func pressGame(t *testing.T, m GameModel, keys ...string) GameModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(GameModel)
	}
	return m
}

func TestGameModelStartsShowing(t *testing.T) {
	m := NewGameModel(testEnv(t, false), testConfig(), 2, 2, StartNew)

	if got := m.Game().Session().Phase(); got != memory.PhaseShowing {
		t.Errorf("Phase() = %v, want showing", got)
	}
	if m.Init() == nil {
		t.Error("Init should start the tick loop")
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("view should show the score")
	}
}

func TestGameModelLeaveWithoutSaves(t *testing.T) {
	m := NewGameModel(testEnv(t, false), testConfig(), 2, 2, StartNew)
	m = pressGame(t, m, "q")

	if !m.BackToMenu() {
		t.Error("q should go back to the menu when saving is disabled")
	}
	if m.confirmQuit {
		t.Error("no prompt without a save store")
	}
}

func TestGameModelQuitPrompt(t *testing.T) {
	tests := []struct {
		name       string
		answer     string
		wantBack   bool
		wantPrompt bool
		wantSave   bool
	}{
		{"save", "y", true, false, true},
		{"enter saves", "enter", true, false, true},
		{"discard", "n", true, false, false},
		{"keep playing", "esc", false, false, false},
		{"other keys wait", "x", false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testEnv(t, true)
			m := NewGameModel(env, testConfig(), 2, 2, StartNew)

			m = pressGame(t, m, "esc")
			if !m.confirmQuit {
				t.Fatal("leaving a game in progress should ask to save")
			}
			if !strings.Contains(m.View(), "Save progress") {
				t.Error("prompt should be drawn")
			}

			m = pressGame(t, m, tt.answer)
			if m.BackToMenu() != tt.wantBack {
				t.Errorf("BackToMenu() = %v, want %v", m.BackToMenu(), tt.wantBack)
			}
			if m.confirmQuit != tt.wantPrompt {
				t.Errorf("prompt open = %v, want %v", m.confirmQuit, tt.wantPrompt)
			}
			if env.Saves.Exists() != tt.wantSave {
				t.Errorf("save file exists = %v, want %v", env.Saves.Exists(), tt.wantSave)
			}
		})
	}
}

func TestGameModelTickPausedByPrompt(t *testing.T) {
	m := NewGameModel(testEnv(t, true), testConfig(), 2, 2, StartNew)
	m = pressGame(t, m, "esc")

	gen := m.Game().Session().Generation()
	pending := m.Game().Session().PendingTimers()
	for i := 0; i < 600; i++ {
		next, _ := m.Update(TickMsg{})
		m = next.(GameModel)
	}
	if got := m.Game().Session().Phase(); got != memory.PhaseShowing {
		t.Errorf("Phase() = %v, clock should stop while the prompt is open", got)
	}
	if m.Game().Session().Generation() != gen || m.Game().Session().PendingTimers() != pending {
		t.Error("session changed while paused")
	}
}

func TestGameModelCtrlCQuits(t *testing.T) {
	m := NewGameModel(testEnv(t, true), testConfig(), 2, 2, StartNew)
	m = pressGame(t, m, "ctrl+c")

	if !m.IsQuitting() {
		t.Error("ctrl+c should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestGameModelResumeSavedGame(t *testing.T) {
	env := testEnv(t, true)

	first := NewGameModel(env, testConfig(), 2, 2, StartNew)
	first = pressGame(t, first, "esc", "y")
	if !env.Saves.Exists() {
		t.Fatal("expected a save file")
	}

	second := NewGameModel(env, testConfig(), 2, 2, StartLoad)
	s := second.Game().Session()
	if got := len(s.Slots()); got != 4 {
		t.Errorf("loaded %d slots, want 4", got)
	}
	if !second.Game().InProgress() {
		t.Error("loaded game should be in progress")
	}
}

func TestGameModelResumeWithoutSave(t *testing.T) {
	m := NewGameModel(testEnv(t, true), testConfig(), 2, 2, StartLoad)

	if m.Game().InProgress() {
		t.Error("nothing to resume")
	}
	if status, isErr := m.Game().Status(); status == "" || !isErr {
		t.Errorf("Status() = %q, %v; want an error", status, isErr)
	}
}

func TestGameModelResize(t *testing.T) {
	m := NewGameModel(testEnv(t, false), testConfig(), 2, 2, StartNew)

	next, _ := m.Update(windowSize(100, 40))
	m = next.(GameModel)
	if cfg := m.Config(); cfg.ScreenW != 100 || cfg.ScreenH != 40 {
		t.Errorf("Config() = %dx%d, want 100x40", cfg.ScreenW, cfg.ScreenH)
	}
	if m.Game().Session().Phase() != memory.PhaseShowing {
		t.Error("resize should not restart the game")
	}
}

func TestGameModelCtrlSSavesAndLeaves(t *testing.T) {
	env := testEnv(t, true)
	m := NewGameModel(env, testConfig(), 2, 2, StartNew)

	m = pressGame(t, m, "ctrl+s")
	next, cmd := m.Update(TickMsg{})
	m = next.(GameModel)

	if !m.BackToMenu() {
		t.Errorf("BackToMenu() = false after ctrl+s, phase %v", m.Game().Session().Phase())
	}
	if cmd != nil {
		t.Error("tick loop should stop after leaving")
	}
	if !env.Saves.Exists() {
		t.Error("ctrl+s should write the save file")
	}
}

func TestGameModelCtrlSWithoutSavesStays(t *testing.T) {
	m := NewGameModel(testEnv(t, false), testConfig(), 2, 2, StartNew)

	m = pressGame(t, m, "ctrl+s")
	next, _ := m.Update(TickMsg{})
	m = next.(GameModel)

	if m.BackToMenu() {
		t.Error("a failed save must not leave the game")
	}
	if !m.Game().InProgress() {
		t.Error("game should keep running")
	}
}
